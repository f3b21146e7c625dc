// Package discovery finds the windows a switcher session can offer.
package discovery

import (
	"slices"
	"strings"

	"github.com/1broseidon/tabswitch/internal/platform"
)

// MaxDepth bounds the descendant search below each top-level window.
const MaxDepth = 10

// Window is a titled, viewable window found during enumeration.
type Window struct {
	ID    platform.WindowID
	Title string
}

// Tree is the subset of the window system the enumerator reads.
type Tree interface {
	Children(windowID platform.WindowID) ([]platform.WindowID, error)
	Viewable(windowID platform.WindowID) bool
	Title(windowID platform.WindowID) (string, error)
}

// Enumerate walks the children of root from the top of the stacking
// order down, yielding for each one the first viewable titled window in
// a depth-first search of its subtree. A failed query makes that node
// and its subtree yield nothing.
func Enumerate(tree Tree, root platform.WindowID) []Window {
	children, err := tree.Children(root)
	if err != nil {
		return nil
	}

	top := slices.Clone(children)
	slices.Reverse(top)

	windows := make([]Window, 0, len(top))
	for _, child := range top {
		if w, ok := findTitled(tree, child, 0); ok {
			windows = append(windows, w)
		}
	}
	return windows
}

func findTitled(tree Tree, windowID platform.WindowID, depth int) (Window, bool) {
	if depth > MaxDepth {
		return Window{}, false
	}

	if tree.Viewable(windowID) {
		if title, err := tree.Title(windowID); err == nil && strings.TrimSpace(title) != "" {
			return Window{ID: windowID, Title: title}, true
		}
	}

	children, err := tree.Children(windowID)
	if err != nil {
		return Window{}, false
	}
	for _, child := range children {
		if w, ok := findTitled(tree, child, depth+1); ok {
			return w, true
		}
	}
	return Window{}, false
}
