package event

import "testing"

func TestTypeStringKnown(t *testing.T) {
	cases := map[Type]string{
		KeyPressed:   "key_pressed",
		MouseDragged: "mouse_dragged",
		HookDisabled: "hook_disabled",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestTypeStringUnknown(t *testing.T) {
	if got := Type(0xEE).String(); got != "unknown(0xee)" {
		t.Errorf("unknown type formatted as %q", got)
	}
}

func TestShiftMaskCoversBothSides(t *testing.T) {
	for _, mods := range []uint16{MaskShiftL, MaskShiftR, MaskShiftL | MaskShiftR} {
		if mods&MaskShift == 0 {
			t.Errorf("modifier mask %#x should match MaskShift", mods)
		}
	}
	if MaskCtrlL&MaskShift != 0 || MaskAltR&MaskShift != 0 {
		t.Error("non-shift modifiers must not match MaskShift")
	}
}
