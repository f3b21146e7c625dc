package discovery

import (
	"log/slog"

	"github.com/1broseidon/tabswitch/internal/platform"
)

// ManagedMarker is the property a window manager sets on every window it
// manages.
const ManagedMarker = "_NET_WM_STATE"

// PropertyChecker reports whether a property is present on a window.
type PropertyChecker interface {
	HasProperty(windowID platform.WindowID, name string) bool
}

// Filter drops windows the window manager does not manage.
type Filter struct {
	Props PropertyChecker
}

// Include reports whether w should be offered, with a short reason for
// the diagnostic log.
func (f Filter) Include(w Window) (bool, string) {
	if f.Props == nil {
		return false, "no property source"
	}
	if !f.Props.HasProperty(w.ID, ManagedMarker) {
		return false, "missing " + ManagedMarker
	}
	return true, "managed"
}

// Dedupe keeps the first window for each title and drops the rest.
func Dedupe(windows []Window) []Window {
	seen := make(map[string]struct{}, len(windows))
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		if _, dup := seen[w.Title]; dup {
			continue
		}
		seen[w.Title] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Source is everything Collect needs from the window system.
type Source interface {
	Tree
	PropertyChecker
	Root() platform.WindowID
}

// Collect runs enumeration, filtering and deduplication in order and
// logs each decision.
func Collect(src Source, logger *slog.Logger) []Window {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	found := Enumerate(src, src.Root())
	logger.Debug("enumerated windows", "count", len(found))

	filter := Filter{Props: src}
	kept := make([]Window, 0, len(found))
	for _, w := range found {
		ok, reason := filter.Include(w)
		logger.Debug("filter",
			"window", w.ID,
			"title", w.Title,
			"include", ok,
			"reason", reason,
		)
		if ok {
			kept = append(kept, w)
		}
	}

	unique := Dedupe(kept)
	if dropped := len(kept) - len(unique); dropped > 0 {
		logger.Debug("dropped duplicate titles", "count", dropped)
	}
	logger.Info("collected windows", "count", len(unique))
	return unique
}
