//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/tabswitch/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh X11 connection.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Root returns the root window of the default screen.
func (b *LinuxBackend) Root() WindowID {
	return WindowID(b.conn.Root)
}

// ScreenSize returns the size of the default screen.
func (b *LinuxBackend) ScreenSize() (width, height int) {
	return b.conn.ScreenSize()
}

// Children lists direct children bottom-to-top.
func (b *LinuxBackend) Children(windowID WindowID) ([]WindowID, error) {
	children, err := b.conn.Children(xproto.Window(windowID))
	if err != nil {
		return nil, err
	}
	ids := make([]WindowID, len(children))
	for i, child := range children {
		ids[i] = WindowID(child)
	}
	return ids, nil
}

// Viewable reports whether the window is mapped and viewable.
func (b *LinuxBackend) Viewable(windowID WindowID) bool {
	return b.conn.IsViewable(xproto.Window(windowID))
}

// Title returns the window's display title.
func (b *LinuxBackend) Title(windowID WindowID) (string, error) {
	return b.conn.Title(xproto.Window(windowID))
}

// HasProperty reports whether the named property exists on the window.
func (b *LinuxBackend) HasProperty(windowID WindowID, name string) bool {
	return b.conn.HasProperty(xproto.Window(windowID), name)
}

// IconData returns the raw _NET_WM_ICON bytes.
func (b *LinuxBackend) IconData(windowID WindowID) ([]byte, error) {
	return b.conn.IconData(xproto.Window(windowID))
}

// OpenSurface creates and maps the switcher window.
func (b *LinuxBackend) OpenSurface(bounds Rect) (Surface, error) {
	s, err := b.conn.NewSurface(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if err != nil {
		return nil, err
	}
	return &linuxSurface{s: s}, nil
}

// NextEvent blocks for the next X event and classifies it.
func (b *LinuxBackend) NextEvent() (Event, error) {
	ev, err := b.conn.WaitForEvent()
	if err != nil {
		return Event{}, err
	}

	switch e := ev.(type) {
	case xproto.ExposeEvent:
		// Only the last event of an expose series triggers a repaint.
		if e.Count == 0 {
			return Event{Kind: EventExpose}, nil
		}
	case xproto.KeyPressEvent:
		reverse := e.State&xproto.KeyButMaskShift != 0
		switch b.conn.Keys.Role(e.Detail) {
		case x11.KeyNavigate:
			return Event{Kind: EventNavigate, Reverse: reverse}, nil
		case x11.KeyCancel:
			return Event{Kind: EventCancel}, nil
		case x11.KeyConfirm:
			return Event{Kind: EventConfirm}, nil
		}
	case xproto.KeyReleaseEvent:
		if b.conn.Keys.Role(e.Detail) == x11.KeyTrigger {
			return Event{Kind: EventTriggerReleased}, nil
		}
	}
	return Event{Kind: EventOther}, nil
}

// ModifierHeld reports whether Alt is currently pressed.
func (b *LinuxBackend) ModifierHeld() bool {
	return b.conn.ModifierHeld()
}

// GrabTrigger installs the global Alt+Tab grabs on the root window.
func (b *LinuxBackend) GrabTrigger() error {
	return b.conn.GrabTrigger()
}

// Activate raises and focuses the window.
func (b *LinuxBackend) Activate(windowID WindowID) error {
	return b.conn.Activate(xproto.Window(windowID))
}

// linuxSurface adapts x11.Surface to the Surface interface.
type linuxSurface struct {
	s *x11.Surface
}

func (l *linuxSurface) Fill(ink Ink, rects ...Rect) error {
	xrects := make([]xproto.Rectangle, 0, len(rects))
	for _, r := range rects {
		if r.Width <= 0 || r.Height <= 0 {
			continue
		}
		xrects = append(xrects, xproto.Rectangle{
			X:      int16(r.X),
			Y:      int16(r.Y),
			Width:  uint16(r.Width),
			Height: uint16(r.Height),
		})
	}
	return l.s.FillRectangles(ink == InkInverse, xrects)
}

func (l *linuxSurface) Line(ink Ink, x1, y1, x2, y2 int) error {
	return l.s.DrawLine(ink == InkInverse, x1, y1, x2, y2)
}

func (l *linuxSurface) Text(x, y int, text []byte) error {
	return l.s.DrawText(x, y, text)
}

func (l *linuxSurface) Flush() error {
	l.s.Flush()
	return nil
}

func (l *linuxSurface) GrabKeyboard() error {
	return l.s.GrabKeyboard()
}

func (l *linuxSurface) UngrabKeyboard() {
	l.s.UngrabKeyboard()
}

func (l *linuxSurface) Destroy() {
	l.s.Destroy()
}
