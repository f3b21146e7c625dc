package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Surface is an override-redirect window with two graphics contexts:
// one drawing black on white and one drawing white on black.
type Surface struct {
	conn *Connection

	Window    xproto.Window
	GC        xproto.Gcontext
	InverseGC xproto.Gcontext
	Font      xproto.Font

	grabbed   bool
	destroyed bool
}

// NewSurface creates and maps the switcher window at the given geometry.
func (c *Connection) NewSurface(x, y, width, height int) (*Surface, error) {
	conn := c.XUtil.Conn()
	screen := c.XUtil.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		c.Root,
		int16(x), int16(y),
		uint16(max(width, 1)), uint16(max(height, 1)),
		2, // border_width
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		// Value list order follows the bit positions of the mask (low -> high).
		[]uint32{
			screen.WhitePixel,
			screen.BlackPixel,
			1, // override_redirect
			xproto.EventMaskExposure | xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease,
		},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create switcher window: %w", err)
	}

	s := &Surface{conn: c, Window: wid}

	s.Font = c.openFont()

	s.GC, err = c.newGC(wid, screen.BlackPixel, screen.WhitePixel, s.Font)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	s.InverseGC, err = c.newGC(wid, screen.WhitePixel, screen.BlackPixel, s.Font)
	if err != nil {
		s.Destroy()
		return nil, err
	}

	_ = icccm.WmNameSet(c.XUtil, wid, "tabswitch")

	xproto.MapWindow(conn, wid)
	c.Sync()

	return s, nil
}

// openFont opens the first available core font. A zero font means the
// server default is used.
func (c *Connection) openFont() xproto.Font {
	conn := c.XUtil.Conn()

	font, err := xproto.NewFontId(conn)
	if err != nil {
		return 0
	}
	for _, name := range []string{"fixed", "6x13", "8x13", "9x15"} {
		if xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check() == nil {
			return font
		}
	}
	return 0
}

func (c *Connection) newGC(wid xproto.Window, fg, bg uint32, font xproto.Font) (xproto.Gcontext, error) {
	conn := c.XUtil.Conn()

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate gc id: %w", err)
	}

	mask := uint32(xproto.GcForeground | xproto.GcBackground)
	values := []uint32{fg, bg}
	if font != 0 {
		mask |= xproto.GcFont
		values = append(values, uint32(font))
	}
	mask |= xproto.GcGraphicsExposures
	values = append(values, 0)

	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(wid), mask, values).Check(); err != nil {
		return 0, fmt.Errorf("failed to create gc: %w", err)
	}
	return gc, nil
}

func (s *Surface) gc(inverse bool) xproto.Gcontext {
	if inverse {
		return s.InverseGC
	}
	return s.GC
}

// FillRectangles fills rects with the normal or the inverse context.
func (s *Surface) FillRectangles(inverse bool, rects []xproto.Rectangle) error {
	if len(rects) == 0 {
		return nil
	}
	return xproto.PolyFillRectangleChecked(
		s.conn.XUtil.Conn(),
		xproto.Drawable(s.Window),
		s.gc(inverse),
		rects,
	).Check()
}

// DrawLine draws a single line segment.
func (s *Surface) DrawLine(inverse bool, x1, y1, x2, y2 int) error {
	return xproto.PolyLineChecked(
		s.conn.XUtil.Conn(),
		xproto.CoordModeOrigin,
		xproto.Drawable(s.Window),
		s.gc(inverse),
		[]xproto.Point{
			{X: int16(x1), Y: int16(y1)},
			{X: int16(x2), Y: int16(y2)},
		},
	).Check()
}

// DrawText draws Latin-1 text with the normal context. ImageText8 carries
// at most 255 bytes.
func (s *Surface) DrawText(x, y int, text []byte) error {
	if len(text) == 0 {
		return nil
	}
	if len(text) > 255 {
		text = text[:255]
	}
	return xproto.ImageText8Checked(
		s.conn.XUtil.Conn(),
		byte(len(text)),
		xproto.Drawable(s.Window),
		s.GC,
		int16(x),
		int16(y),
		string(text),
	).Check()
}

// Flush waits for the server to process pending drawing requests.
func (s *Surface) Flush() {
	s.conn.Sync()
}

// GrabKeyboard routes all keyboard input to the switcher window.
func (s *Surface) GrabKeyboard() error {
	if err := keybind.GrabKeyboard(s.conn.XUtil, s.Window); err != nil {
		return err
	}
	s.grabbed = true
	return nil
}

// UngrabKeyboard releases a grab taken by GrabKeyboard.
func (s *Surface) UngrabKeyboard() {
	if !s.grabbed {
		return
	}
	keybind.UngrabKeyboard(s.conn.XUtil)
	s.grabbed = false
	s.conn.Sync()
}

// Destroy frees the graphics contexts, font and window. It releases a
// keyboard grab still held and is safe to call more than once.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.UngrabKeyboard()

	conn := s.conn.XUtil.Conn()
	if s.GC != 0 {
		xproto.FreeGC(conn, s.GC)
	}
	if s.InverseGC != 0 {
		xproto.FreeGC(conn, s.InverseGC)
	}
	if s.Font != 0 {
		xproto.CloseFont(conn, s.Font)
	}
	if s.Window != 0 {
		xproto.DestroyWindow(conn, s.Window)
	}
	s.conn.Sync()

	s.GC = 0
	s.InverseGC = 0
	s.Font = 0
	s.Window = 0
	s.destroyed = true
}
