package x11

import (
	"errors"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// ErrConnectionClosed is returned by WaitForEvent once the server hangs up.
var ErrConnectionClosed = errors.New("x11 connection closed")

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
	Keys  Keys

	closeOnce sync.Once
}

// NewConnection establishes a connection to the X11 server and resolves
// the keycodes the switcher reacts to.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Loads the keyboard mapping used for keysym -> keycode lookups.
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
		Keys:  lookupKeys(xu),
	}, nil
}

// ScreenSize returns the default screen size in pixels.
func (c *Connection) ScreenSize() (width, height int) {
	screen := c.XUtil.Screen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels)
}

// WaitForEvent blocks until the next event arrives. Protocol errors from
// unchecked requests are skipped; every request the switcher sends that
// way is best-effort.
func (c *Connection) WaitForEvent() (xgb.Event, error) {
	for {
		ev, xerr := c.XUtil.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return nil, ErrConnectionClosed
		}
		if xerr != nil {
			continue
		}
		return ev, nil
	}
}

// Sync waits until the server has processed every request sent so far.
func (c *Connection) Sync() {
	c.XUtil.Sync()
}

// Close cleanly disconnects from the X11 server. It may be called from
// another goroutine to unblock WaitForEvent, and more than once.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		c.XUtil.Conn().Close()
	})
}
