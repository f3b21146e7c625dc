package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestKeysRole(t *testing.T) {
	keys := Keys{
		Navigate: []xproto.Keycode{23},
		Cancel:   []xproto.Keycode{9},
		Confirm:  []xproto.Keycode{36, 104},
		Trigger:  []xproto.Keycode{64, 108},
	}

	tests := []struct {
		code xproto.Keycode
		want KeyRole
	}{
		{23, KeyNavigate},
		{9, KeyCancel},
		{36, KeyConfirm},
		{104, KeyConfirm},
		{64, KeyTrigger},
		{108, KeyTrigger},
		{50, KeyIgnored},
	}
	for _, tt := range tests {
		if got := keys.Role(tt.code); got != tt.want {
			t.Errorf("Role(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestDecodeLegacyName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ascii", "xterm", "xterm"},
		{"utf8", "caf\xc3\xa9", "café"},
		{"latin1", "caf\xe9", "café"},
		{"latin1 upper half", "\xc4rger", "Ärger"},
		{"blank", "   ", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeLegacyName(tt.raw); got != tt.want {
				t.Errorf("decodeLegacyName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
