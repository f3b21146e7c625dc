package switcher

import (
	"log/slog"

	"github.com/1broseidon/tabswitch/internal/discovery"
	"github.com/1broseidon/tabswitch/internal/grid"
	"github.com/1broseidon/tabswitch/internal/icon"
	"github.com/1broseidon/tabswitch/internal/platform"
)

// Candidate is a window offered in the grid.
type Candidate struct {
	ID    platform.WindowID
	Title string
	Icon  icon.Bitmap
	// HasIcon is false when Icon is the placeholder.
	HasIcon bool
}

// Collect discovers the windows to offer and loads an icon for each.
func Collect(b platform.Backend, logger *slog.Logger) []Candidate {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	windows := discovery.Collect(b, logger)
	candidates := make([]Candidate, 0, len(windows))
	for _, w := range windows {
		data, err := b.IconData(w.ID)
		bitmap, ok := icon.ForWindow(data, err, grid.IconSize)
		if !ok {
			logger.Debug("using placeholder icon", "window", w.ID, "error", err)
		}
		candidates = append(candidates, Candidate{
			ID:      w.ID,
			Title:   w.Title,
			Icon:    bitmap,
			HasIcon: ok,
		})
	}
	return candidates
}
