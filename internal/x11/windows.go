package x11

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"golang.org/x/text/encoding/charmap"
)

// Children returns the direct children of a window in bottom-to-top
// stacking order.
func (c *Connection) Children(windowID xproto.Window) ([]xproto.Window, error) {
	tree, err := xproto.QueryTree(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query tree of %#x: %w", windowID, err)
	}
	return tree.Children, nil
}

// IsViewable reports whether a window is mapped and all its ancestors are.
func (c *Connection) IsViewable(windowID xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false
	}
	return attrs.MapState == xproto.MapStateViewable
}

// Title returns _NET_WM_NAME when it holds valid UTF-8, otherwise WM_NAME
// read as UTF-8 or, failing that, as Latin-1.
func (c *Connection) Title(windowID xproto.Window) (string, error) {
	if title, err := ewmh.WmNameGet(c.XUtil, windowID); err == nil {
		if utf8.ValidString(title) && strings.TrimSpace(title) != "" {
			return title, nil
		}
	}

	raw, err := icccm.WmNameGet(c.XUtil, windowID)
	if err != nil {
		return "", err
	}
	title := decodeLegacyName(raw)
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("window %#x has no title", windowID)
	}
	return title, nil
}

// decodeLegacyName interprets WM_NAME bytes. Valid UTF-8 is kept as is;
// anything else is decoded byte-for-byte as ISO 8859-1.
func decodeLegacyName(raw string) string {
	if utf8.ValidString(raw) && strings.TrimSpace(raw) != "" {
		return raw
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(raw)
	if err != nil {
		return ""
	}
	return decoded
}

// HasProperty reports whether the named property is set on the window.
func (c *Connection) HasProperty(windowID xproto.Window, name string) bool {
	_, err := xprop.GetProperty(c.XUtil, windowID, name)
	return err == nil
}

// IconData returns the raw _NET_WM_ICON value of a window.
func (c *Connection) IconData(windowID xproto.Window) ([]byte, error) {
	reply, err := xprop.GetProperty(c.XUtil, windowID, "_NET_WM_ICON")
	if err != nil {
		return nil, err
	}
	if reply.Format != 32 {
		return nil, fmt.Errorf("_NET_WM_ICON on %#x has format %d, want 32", windowID, reply.Format)
	}
	return reply.Value, nil
}

// ToplevelParent walks up the tree until it reaches the direct child of
// the root window (usually the window manager frame). It returns the
// window itself when the walk fails or exceeds the depth limit.
func (c *Connection) ToplevelParent(windowID xproto.Window) xproto.Window {
	const maxDepth = 20

	current := windowID
	for i := 0; i < maxDepth; i++ {
		tree, err := xproto.QueryTree(c.XUtil.Conn(), current).Reply()
		if err != nil {
			return windowID
		}
		if tree.Parent == c.Root || tree.Parent == 0 {
			return current
		}
		current = tree.Parent
	}
	return windowID
}
