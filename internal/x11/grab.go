package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

var ignoreModsOnce sync.Once

// GrabTrigger installs passive grabs for Alt+Tab and Alt+Shift+Tab on the
// root window. Each grab is repeated for every lock-modifier combination
// in xevent.IgnoreMods so CapsLock/NumLock do not disable the shortcut.
func (c *Connection) GrabTrigger() error {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(c.XUtil)
	})

	chords := []uint16{
		xproto.ModMask1,
		xproto.ModMask1 | xproto.ModMaskShift,
	}
	for _, mods := range chords {
		for _, code := range c.Keys.Navigate {
			if err := keybind.GrabChecked(c.XUtil, c.Root, mods, code); err != nil {
				return fmt.Errorf("failed to grab keycode %d with modifiers %#x: %w", code, mods, err)
			}
		}
	}
	return nil
}

// ModifierHeld reports whether Alt (Mod1) is down right now.
func (c *Connection) ModifierHeld() bool {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		// Unknown: assume held so the session waits for the release event.
		return true
	}
	return pointer.Mask&xproto.KeyButMaskMod1 != 0
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
