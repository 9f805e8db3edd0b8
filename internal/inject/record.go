package inject

import (
	"winject/internal/event"
	"winject/internal/winapi"
)

// Kind discriminates the two native record shapes.
type Kind uint8

const (
	KindKeyboard Kind = iota + 1
	KindMouse
)

// KeyboardRecord is the keyboard half of a native input record.
type KeyboardRecord struct {
	VK    uint16
	Scan  uint16
	Flags uint32
}

// MouseRecord is the mouse half of a native input record. Data carries the
// wheel delta for scroll events and the extra-button identifier for XDOWN/XUP
// transitions; it is signed here so scroll direction survives until the
// DWORD conversion at submission.
type MouseRecord struct {
	DX    int32
	DY    int32
	Data  int32
	Flags uint32
}

// Record is a fully assembled native input record. It is built in one step
// and submitted in one step; a partially initialized record never reaches
// the OS on any path.
type Record struct {
	Kind     Kind
	Keyboard KeyboardRecord
	Mouse    MouseRecord
}

// maxCoordValue is the exclusive upper bound of the fixed-point absolute
// coordinate space SendInput uses for MOUSEEVENTF_ABSOLUTE.
const maxCoordValue = 1 << 16

// normalize maps an absolute screen coordinate into the 0..65535 fixed-point
// space, scaled against the primary display extent. The ±1 offset compensates
// for integer-division truncation bias: negative coordinates occur on
// multi-monitor setups extending left of or above the primary display, and
// without the offset they land one cell off. The offset is a correctness
// requirement, not rounding polish. See https://stackoverflow.com/a/4555214.
func normalize(coord, size int32) int32 {
	offset := int32(-1)
	if coord > 0 {
		offset = 1
	}
	return coord*maxCoordValue/size + offset
}

// buildKeyboardRecord assembles the keyboard record for a key press or
// release. Exactly one of the key-down/key-up flags is set per event.
//
// Shifted navigation keys need KEYEVENTF_EXTENDEDKEY or SendInput resolves
// them to their numpad twins sharing the same base virtual key; see
// isExtendedKey.
func buildKeyboardRecord(ev event.Event, vk uint16) Record {
	flags := winapi.KEYEVENTF_KEYDOWN
	if ev.Type == event.KeyReleased {
		flags = winapi.KEYEVENTF_KEYUP
	}
	if ev.Modifiers&event.MaskShift != 0 && isExtendedKey(vk) {
		flags |= winapi.KEYEVENTF_EXTENDEDKEY
	}
	return Record{
		Kind:     KindKeyboard,
		Keyboard: KeyboardRecord{VK: vk, Flags: flags},
	}
}

// buildMouseRecord assembles the mouse record for button, wheel and motion
// events. width and height are the primary display extents, already checked
// to be positive.
func buildMouseRecord(ev event.Event, width, height int32) Record {
	m := MouseRecord{
		DX: normalize(ev.X, width),
		DY: normalize(ev.Y, height),
	}

	switch ev.Type {
	case event.MousePressed:
		// The generic X-transition flag stays set alongside the named
		// button flags, matching how hardware drivers report them.
		m.Flags = winapi.MOUSEEVENTF_XDOWN
		switch ev.Button {
		case event.Button1:
			m.Flags |= winapi.MOUSEEVENTF_LEFTDOWN
		case event.Button2:
			m.Flags |= winapi.MOUSEEVENTF_RIGHTDOWN
		case event.Button3:
			m.Flags |= winapi.MOUSEEVENTF_MIDDLEDOWN
		case event.Button4:
			m.Data = winapi.XBUTTON1
		case event.Button5:
			m.Data = winapi.XBUTTON2
		default:
			// Windows names only two extra buttons. Ordinals past 5 fall
			// back to ordinal-3 so button 6 follows XBUTTON2 as 3, 7 as 4,
			// and so on.
			m.Data = int32(ev.Button) - 3
		}

	case event.MouseReleased:
		m.Flags = winapi.MOUSEEVENTF_XUP
		switch ev.Button {
		case event.Button1:
			m.Flags |= winapi.MOUSEEVENTF_LEFTUP
		case event.Button2:
			m.Flags |= winapi.MOUSEEVENTF_RIGHTUP
		case event.Button3:
			m.Flags |= winapi.MOUSEEVENTF_MIDDLEUP
		case event.Button4:
			m.Data = winapi.XBUTTON1
		case event.Button5:
			m.Data = winapi.XBUTTON2
		default:
			m.Data = int32(ev.Button) - 3
		}

	case event.MouseWheel:
		m.Flags = winapi.MOUSEEVENTF_WHEEL
		// Rotation carries the sign, so scroll direction is recoverable
		// from the delta alone.
		m.Data = int32(ev.Amount) * int32(ev.Rotation) * winapi.WHEEL_DELTA

	case event.MouseMoved, event.MouseDragged:
		// A drag is a move with buttons held; the held-button state rides
		// in the event's modifier mask, not in extra flags.
		m.Flags = winapi.MOUSEEVENTF_ABSOLUTE | winapi.MOUSEEVENTF_MOVE
	}

	return Record{Kind: KindMouse, Mouse: m}
}
