package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// KeyRole is what a keycode means to the switcher.
type KeyRole int

const (
	KeyIgnored KeyRole = iota
	KeyNavigate
	KeyCancel
	KeyConfirm
	KeyTrigger
)

// Keys holds the keycodes bound to each role. Keycodes are looked up from
// keysyms at connect time; the evdev defaults are used when the lookup
// finds nothing.
type Keys struct {
	Navigate []xproto.Keycode
	Cancel   []xproto.Keycode
	Confirm  []xproto.Keycode
	Trigger  []xproto.Keycode
}

func lookupKeys(xu *xgbutil.XUtil) Keys {
	return Keys{
		Navigate: keycodesFor(xu, []xproto.Keycode{23}, "Tab"),
		Cancel:   keycodesFor(xu, []xproto.Keycode{9}, "Escape"),
		Confirm:  keycodesFor(xu, []xproto.Keycode{36}, "Return", "KP_Enter"),
		Trigger:  keycodesFor(xu, []xproto.Keycode{64, 108}, "Alt_L", "Alt_R"),
	}
}

func keycodesFor(xu *xgbutil.XUtil, fallback []xproto.Keycode, keysyms ...string) []xproto.Keycode {
	var codes []xproto.Keycode
	for _, keysym := range keysyms {
		codes = append(codes, keybind.StrToKeycodes(xu, keysym)...)
	}
	if len(codes) == 0 {
		return fallback
	}
	return codes
}

// Role classifies a keycode.
func (k Keys) Role(code xproto.Keycode) KeyRole {
	switch {
	case containsKeycode(k.Navigate, code):
		return KeyNavigate
	case containsKeycode(k.Cancel, code):
		return KeyCancel
	case containsKeycode(k.Confirm, code):
		return KeyConfirm
	case containsKeycode(k.Trigger, code):
		return KeyTrigger
	default:
		return KeyIgnored
	}
}

func containsKeycode(codes []xproto.Keycode, code xproto.Keycode) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
