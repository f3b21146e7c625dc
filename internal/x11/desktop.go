package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Activate raises and focuses a window. It first asks the window manager
// via _NET_ACTIVE_WINDOW, then raises and maps the frame and the client
// directly, offers WM_TAKE_FOCUS and finally sets the input focus. Only
// the last step reports an error; the others are best-effort.
func (c *Connection) Activate(windowID xproto.Window) error {
	conn := c.XUtil.Conn()

	_ = c.requestActiveWindow(windowID)

	toplevel := c.ToplevelParent(windowID)
	targets := []xproto.Window{toplevel}
	if toplevel != windowID {
		targets = append(targets, windowID)
	}
	for _, w := range targets {
		xproto.ConfigureWindow(conn, w, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
	}
	for _, w := range targets {
		xproto.MapWindow(conn, w)
	}
	c.Sync()

	c.sendTakeFocus(windowID)

	err := xproto.SetInputFocusChecked(
		conn,
		xproto.InputFocusPointerRoot,
		windowID,
		xproto.TimeCurrentTime,
	).Check()
	if err != nil {
		return fmt.Errorf("failed to focus window %#x: %w", windowID, err)
	}
	return nil
}

// requestActiveWindow sends a _NET_ACTIVE_WINDOW client message to the
// root window per EWMH. The message is built manually because the xgbutil
// ewmh helpers panic on this library version.
func (c *Connection) requestActiveWindow(windowID xproto.Window) error {
	atom, err := xprop.Atm(c.XUtil, "_NET_ACTIVE_WINDOW")
	if err != nil {
		return fmt.Errorf("failed to intern _NET_ACTIVE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// sendTakeFocus delivers WM_PROTOCOLS/WM_TAKE_FOCUS directly to the client.
func (c *Connection) sendTakeFocus(windowID xproto.Window) {
	protocols, err := xprop.Atm(c.XUtil, "WM_PROTOCOLS")
	if err != nil {
		return
	}
	takeFocus, err := xprop.Atm(c.XUtil, "WM_TAKE_FOCUS")
	if err != nil {
		return
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   protocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(takeFocus),
			xproto.TimeCurrentTime,
			0, 0, 0,
		}),
	}

	xproto.SendEvent(
		c.XUtil.Conn(),
		false,
		windowID,
		xproto.EventMaskNoEvent,
		string(ev.Bytes()),
	)
}
