package keymap

import (
	"testing"

	"winject/internal/winapi"
)

func TestResolveKnownKeys(t *testing.T) {
	cases := []struct {
		name    string
		keycode uint16
		want    uint16
	}{
		{"letter A", KeyA, winapi.VK_A},
		{"digit 0", Key0, winapi.VK_0},
		{"escape", KeyEscape, winapi.VK_ESCAPE},
		{"enter", KeyEnter, winapi.VK_RETURN},
		{"up arrow", KeyUp, winapi.VK_UP},
		{"page down", KeyPageDown, winapi.VK_NEXT},
		{"delete", KeyDelete, winapi.VK_DELETE},
		{"left shift", KeyShiftL, winapi.VK_LSHIFT},
		{"right alt", KeyAltR, winapi.VK_RMENU},
		{"numpad 0", KeyKP0, winapi.VK_NUMPAD0},
		{"numpad divide", KeyKPDivide, winapi.VK_DIVIDE},
		{"f12", KeyF12, winapi.VK_F12},
		{"left win", KeyMetaL, winapi.VK_LWIN},
	}
	for _, tc := range cases {
		if got := Resolve(tc.keycode); got != tc.want {
			t.Errorf("%s: Resolve(%#x) = %#x, want %#x", tc.name, tc.keycode, got, tc.want)
		}
	}
}

func TestResolveMissReturnsSentinel(t *testing.T) {
	for _, keycode := range []uint16{0x0000, 0x00FF, 0xBEEF, 0xE0FF} {
		if got := Resolve(keycode); got != VKUndefined {
			t.Errorf("Resolve(%#x) = %#x, want VKUndefined", keycode, got)
		}
	}
}

func TestTableImplementsResolver(t *testing.T) {
	var table Table
	if got := table.Resolve(KeyHome); got != winapi.VK_HOME {
		t.Errorf("Table.Resolve(KeyHome) = %#x, want %#x", got, winapi.VK_HOME)
	}
}
