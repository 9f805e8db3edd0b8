// Package winapi declares the Windows input-injection surface: the INPUT
// sub-record layouts, the flag constants, and the user32 calls that consume
// them. The declarations compile on every platform so the record builder and
// its tests do not need a Windows host; only the submission bindings are
// build-tagged.
package winapi

// INPUT type discriminators.
const (
	INPUT_MOUSE    uint32 = 0
	INPUT_KEYBOARD uint32 = 1
	INPUT_HARDWARE uint32 = 2
)

// Keyboard event flags (KEYBDINPUT.Flags).
const (
	KEYEVENTF_KEYDOWN     uint32 = 0x0000
	KEYEVENTF_EXTENDEDKEY uint32 = 0x0001
	KEYEVENTF_KEYUP       uint32 = 0x0002
	KEYEVENTF_UNICODE     uint32 = 0x0004
	KEYEVENTF_SCANCODE    uint32 = 0x0008
)

// Mouse event flags (MOUSEINPUT.Flags).
const (
	MOUSEEVENTF_MOVE       uint32 = 0x0001
	MOUSEEVENTF_LEFTDOWN   uint32 = 0x0002
	MOUSEEVENTF_LEFTUP     uint32 = 0x0004
	MOUSEEVENTF_RIGHTDOWN  uint32 = 0x0008
	MOUSEEVENTF_RIGHTUP    uint32 = 0x0010
	MOUSEEVENTF_MIDDLEDOWN uint32 = 0x0020
	MOUSEEVENTF_MIDDLEUP   uint32 = 0x0040
	MOUSEEVENTF_XDOWN      uint32 = 0x0080
	MOUSEEVENTF_XUP        uint32 = 0x0100
	MOUSEEVENTF_WHEEL      uint32 = 0x0800
	MOUSEEVENTF_HWHEEL     uint32 = 0x1000
	MOUSEEVENTF_ABSOLUTE   uint32 = 0x8000
)

// One wheel notch, and the named extra-button identifiers carried in
// MOUSEINPUT.MouseData during XDOWN/XUP transitions.
const (
	WHEEL_DELTA int32 = 120

	XBUTTON1 int32 = 0x0001
	XBUTTON2 int32 = 0x0002
)

// GetSystemMetrics indices.
const (
	SM_CXSCREEN int32 = 0
	SM_CYSCREEN int32 = 1
)

// Virtual-key codes (winuser.h subset used by the key map and the extended
// key set).
const (
	VK_BACK     uint16 = 0x08
	VK_TAB      uint16 = 0x09
	VK_RETURN   uint16 = 0x0D
	VK_SHIFT    uint16 = 0x10
	VK_CONTROL  uint16 = 0x11
	VK_MENU     uint16 = 0x12
	VK_PAUSE    uint16 = 0x13
	VK_CAPITAL  uint16 = 0x14
	VK_ESCAPE   uint16 = 0x1B
	VK_SPACE    uint16 = 0x20
	VK_PRIOR    uint16 = 0x21 // Page Up
	VK_NEXT     uint16 = 0x22 // Page Down
	VK_END      uint16 = 0x23
	VK_HOME     uint16 = 0x24
	VK_LEFT     uint16 = 0x25
	VK_UP       uint16 = 0x26
	VK_RIGHT    uint16 = 0x27
	VK_DOWN     uint16 = 0x28
	VK_SNAPSHOT uint16 = 0x2C
	VK_INSERT   uint16 = 0x2D
	VK_DELETE   uint16 = 0x2E

	// 0-9 and A-Z match ASCII: VK_0..VK_9 = 0x30..0x39, VK_A..VK_Z = 0x41..0x5A.
	VK_0 uint16 = 0x30
	VK_9 uint16 = 0x39
	VK_A uint16 = 0x41
	VK_Z uint16 = 0x5A

	VK_LWIN uint16 = 0x5B
	VK_RWIN uint16 = 0x5C

	VK_NUMPAD0   uint16 = 0x60
	VK_NUMPAD9   uint16 = 0x69
	VK_MULTIPLY  uint16 = 0x6A
	VK_ADD       uint16 = 0x6B
	VK_SEPARATOR uint16 = 0x6C
	VK_SUBTRACT  uint16 = 0x6D
	VK_DECIMAL   uint16 = 0x6E
	VK_DIVIDE    uint16 = 0x6F

	VK_F1  uint16 = 0x70
	VK_F12 uint16 = 0x7B

	VK_NUMLOCK uint16 = 0x90
	VK_SCROLL  uint16 = 0x91

	VK_LSHIFT   uint16 = 0xA0
	VK_RSHIFT   uint16 = 0xA1
	VK_LCONTROL uint16 = 0xA2
	VK_RCONTROL uint16 = 0xA3
	VK_LMENU    uint16 = 0xA4
	VK_RMENU    uint16 = 0xA5

	VK_OEM_1      uint16 = 0xBA // ;
	VK_OEM_PLUS   uint16 = 0xBB // =
	VK_OEM_COMMA  uint16 = 0xBC // ,
	VK_OEM_MINUS  uint16 = 0xBD // -
	VK_OEM_PERIOD uint16 = 0xBE // .
	VK_OEM_2      uint16 = 0xBF // /
	VK_OEM_3      uint16 = 0xC0 // `
	VK_OEM_4      uint16 = 0xDB // [
	VK_OEM_5      uint16 = 0xDC // \
	VK_OEM_6      uint16 = 0xDD // ]
	VK_OEM_7      uint16 = 0xDE // '
)

// KEYBDINPUT mirrors the winuser.h struct of the same name.
type KEYBDINPUT struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// MOUSEINPUT mirrors the winuser.h struct of the same name. MouseData is
// declared DWORD in the C headers but carries signed wheel deltas; the
// conversion happens at submission.
type MOUSEINPUT struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}
