// Package switcher runs one Alt+Tab session: it collects candidates,
// shows the grid, tracks the selection and activates the chosen window.
package switcher

// Phase is the lifecycle stage of a session.
type Phase int

const (
	// PhaseIdle means the session has not been opened yet.
	PhaseIdle Phase = iota
	// PhaseOpen means the grid is shown and input is being handled.
	PhaseOpen
	// PhaseCommitted means the selected window will be activated.
	PhaseCommitted
	// PhaseCancelled means the session ended without activation.
	PhaseCancelled
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOpen:
		return "open"
	case PhaseCommitted:
		return "committed"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Closed reports whether the session has ended.
func (p Phase) Closed() bool {
	return p == PhaseCommitted || p == PhaseCancelled
}

// Mode selects how a session is committed.
type Mode int

const (
	// ModeHold commits when the trigger modifier is released.
	ModeHold Mode = iota
	// ModeKeyboard commits on the confirm key and ignores modifier release.
	ModeKeyboard
)

func (m Mode) String() string {
	if m == ModeKeyboard {
		return "keyboard"
	}
	return "hold"
}

// Selection is the highlighted index within Count candidates.
type Selection struct {
	Index int
	Count int
}

// InitialSelection picks the starting highlight: the second entry (the
// previously active window) or, when reverse is set, the last one. A
// single candidate is selected directly.
func InitialSelection(count int, reverse bool) Selection {
	switch {
	case count <= 0:
		return Selection{}
	case count == 1:
		return Selection{Index: 0, Count: 1}
	case reverse:
		return Selection{Index: count - 1, Count: count}
	default:
		return Selection{Index: 1, Count: count}
	}
}

// Next moves the highlight one step, wrapping at either end.
func (s Selection) Next(reverse bool) Selection {
	if s.Count <= 0 {
		return s
	}
	if reverse {
		if s.Index == 0 {
			s.Index = s.Count - 1
		} else {
			s.Index--
		}
		return s
	}
	s.Index = (s.Index + 1) % s.Count
	return s
}
