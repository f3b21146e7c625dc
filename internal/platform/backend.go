package platform

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen or surface coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Ink selects one of the two pre-configured drawing contexts of a Surface.
type Ink int

const (
	// InkNormal draws black on white.
	InkNormal Ink = iota
	// InkInverse draws white on black (highlight).
	InkInverse
)

// EventKind classifies input delivered to the switcher.
type EventKind int

const (
	EventOther EventKind = iota
	// EventExpose asks for a repaint of the current state.
	EventExpose
	// EventNavigate is a press of the navigation key (Tab).
	EventNavigate
	// EventCancel is a press of the cancel key (Escape).
	EventCancel
	// EventConfirm is a press of the confirm key (Return).
	EventConfirm
	// EventTriggerReleased is a release of the trigger modifier (Alt).
	EventTriggerReleased
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventExpose:
		return "expose"
	case EventNavigate:
		return "navigate"
	case EventCancel:
		return "cancel"
	case EventConfirm:
		return "confirm"
	case EventTriggerReleased:
		return "trigger-released"
	default:
		return "other"
	}
}

// Event is one input event. Reverse is set when the reverse modifier
// (Shift) was held at the time of a key press.
type Event struct {
	Kind    EventKind
	Reverse bool
}

// Surface is the switcher's own on-screen window together with its two
// drawing contexts.
type Surface interface {
	Fill(ink Ink, rects ...Rect) error
	Line(ink Ink, x1, y1, x2, y2 int) error
	// Text draws Latin-1 encoded text with its baseline at y.
	Text(x, y int, text []byte) error
	Flush() error
	GrabKeyboard() error
	UngrabKeyboard()
	Destroy()
}

// Backend abstracts the window-system operations the switcher needs.
// Query methods degrade to "no information" on failure.
type Backend interface {
	Root() WindowID
	ScreenSize() (width, height int)
	Children(windowID WindowID) ([]WindowID, error)
	Viewable(windowID WindowID) bool
	Title(windowID WindowID) (string, error)
	HasProperty(windowID WindowID, name string) bool
	IconData(windowID WindowID) ([]byte, error)
	OpenSurface(bounds Rect) (Surface, error)
	NextEvent() (Event, error)
	// ModifierHeld reports whether the trigger modifier is currently down.
	ModifierHeld() bool
	// GrabTrigger installs the global Alt+Tab / Alt+Shift+Tab grabs.
	GrabTrigger() error
	Activate(windowID WindowID) error
}
