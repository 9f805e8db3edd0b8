// Package keymap resolves abstract key codes to Windows virtual-key codes.
//
// The abstract codes are keyboard set-1 make codes, with extended keys
// carried in the 0xE000/0x0E00 ranges, which is how upstream capture layers
// identify keys independently of the host keyboard layout.
package keymap

import "winject/internal/winapi"

// VKUndefined is the resolution-miss sentinel. It is a valid argument to
// SendInput (the call succeeds and injects nothing meaningful), which lets
// callers stay on a best-effort path instead of failing.
const VKUndefined uint16 = 0x0000

// Abstract key codes.
const (
	KeyEscape    uint16 = 0x0001
	Key1         uint16 = 0x0002
	Key2         uint16 = 0x0003
	Key3         uint16 = 0x0004
	Key4         uint16 = 0x0005
	Key5         uint16 = 0x0006
	Key6         uint16 = 0x0007
	Key7         uint16 = 0x0008
	Key8         uint16 = 0x0009
	Key9         uint16 = 0x000A
	Key0         uint16 = 0x000B
	KeyMinus     uint16 = 0x000C
	KeyEquals    uint16 = 0x000D
	KeyBackspace uint16 = 0x000E
	KeyTab       uint16 = 0x000F

	KeyQ            uint16 = 0x0010
	KeyW            uint16 = 0x0011
	KeyE            uint16 = 0x0012
	KeyR            uint16 = 0x0013
	KeyT            uint16 = 0x0014
	KeyY            uint16 = 0x0015
	KeyU            uint16 = 0x0016
	KeyI            uint16 = 0x0017
	KeyO            uint16 = 0x0018
	KeyP            uint16 = 0x0019
	KeyOpenBracket  uint16 = 0x001A
	KeyCloseBracket uint16 = 0x001B
	KeyEnter        uint16 = 0x001C
	KeyControlL     uint16 = 0x001D

	KeyA         uint16 = 0x001E
	KeyS         uint16 = 0x001F
	KeyD         uint16 = 0x0020
	KeyF         uint16 = 0x0021
	KeyG         uint16 = 0x0022
	KeyH         uint16 = 0x0023
	KeyJ         uint16 = 0x0024
	KeyK         uint16 = 0x0025
	KeyL         uint16 = 0x0026
	KeySemicolon uint16 = 0x0027
	KeyQuote     uint16 = 0x0028
	KeyBackquote uint16 = 0x0029
	KeyShiftL    uint16 = 0x002A
	KeyBackSlash uint16 = 0x002B

	KeyZ      uint16 = 0x002C
	KeyX      uint16 = 0x002D
	KeyC      uint16 = 0x002E
	KeyV      uint16 = 0x002F
	KeyB      uint16 = 0x0030
	KeyN      uint16 = 0x0031
	KeyM      uint16 = 0x0032
	KeyComma  uint16 = 0x0033
	KeyPeriod uint16 = 0x0034
	KeySlash  uint16 = 0x0035
	KeyShiftR uint16 = 0x0036

	KeyKPMultiply uint16 = 0x0037
	KeyAltL       uint16 = 0x0038
	KeySpace      uint16 = 0x0039
	KeyCapsLock   uint16 = 0x003A

	KeyF1  uint16 = 0x003B
	KeyF2  uint16 = 0x003C
	KeyF3  uint16 = 0x003D
	KeyF4  uint16 = 0x003E
	KeyF5  uint16 = 0x003F
	KeyF6  uint16 = 0x0040
	KeyF7  uint16 = 0x0041
	KeyF8  uint16 = 0x0042
	KeyF9  uint16 = 0x0043
	KeyF10 uint16 = 0x0044

	KeyNumLock    uint16 = 0x0045
	KeyScrollLock uint16 = 0x0046

	KeyKP7        uint16 = 0x0047
	KeyKP8        uint16 = 0x0048
	KeyKP9        uint16 = 0x0049
	KeyKPSubtract uint16 = 0x004A
	KeyKP4        uint16 = 0x004B
	KeyKP5        uint16 = 0x004C
	KeyKP6        uint16 = 0x004D
	KeyKPAdd      uint16 = 0x004E
	KeyKP1        uint16 = 0x004F
	KeyKP2        uint16 = 0x0050
	KeyKP3        uint16 = 0x0051
	KeyKP0        uint16 = 0x0052
	KeyKPDecimal  uint16 = 0x0053

	KeyF11 uint16 = 0x0057
	KeyF12 uint16 = 0x0058

	// Extended cluster.
	KeyKPEnter     uint16 = 0x0E1C
	KeyControlR    uint16 = 0x0E1D
	KeyKPDivide    uint16 = 0x0E35
	KeyPrintScreen uint16 = 0x0E37
	KeyAltR        uint16 = 0x0E38
	KeyPause       uint16 = 0x0E45
	KeyHome        uint16 = 0xE047
	KeyUp          uint16 = 0xE048
	KeyPageUp      uint16 = 0xE049
	KeyLeft        uint16 = 0xE04B
	KeyRight       uint16 = 0xE04D
	KeyEnd         uint16 = 0xE04F
	KeyDown        uint16 = 0xE050
	KeyPageDown    uint16 = 0xE051
	KeyInsert      uint16 = 0xE052
	KeyDelete      uint16 = 0xE053
	KeyMetaL       uint16 = 0x0E5B
	KeyMetaR       uint16 = 0x0E5C
)

var virtualKeys = map[uint16]uint16{
	KeyEscape:    winapi.VK_ESCAPE,
	Key1:         0x31,
	Key2:         0x32,
	Key3:         0x33,
	Key4:         0x34,
	Key5:         0x35,
	Key6:         0x36,
	Key7:         0x37,
	Key8:         0x38,
	Key9:         0x39,
	Key0:         winapi.VK_0,
	KeyMinus:     winapi.VK_OEM_MINUS,
	KeyEquals:    winapi.VK_OEM_PLUS,
	KeyBackspace: winapi.VK_BACK,
	KeyTab:       winapi.VK_TAB,

	KeyQ:            0x51,
	KeyW:            0x57,
	KeyE:            0x45,
	KeyR:            0x52,
	KeyT:            0x54,
	KeyY:            0x59,
	KeyU:            0x55,
	KeyI:            0x49,
	KeyO:            0x4F,
	KeyP:            0x50,
	KeyOpenBracket:  winapi.VK_OEM_4,
	KeyCloseBracket: winapi.VK_OEM_6,
	KeyEnter:        winapi.VK_RETURN,
	KeyControlL:     winapi.VK_LCONTROL,

	KeyA:         winapi.VK_A,
	KeyS:         0x53,
	KeyD:         0x44,
	KeyF:         0x46,
	KeyG:         0x47,
	KeyH:         0x48,
	KeyJ:         0x4A,
	KeyK:         0x4B,
	KeyL:         0x4C,
	KeySemicolon: winapi.VK_OEM_1,
	KeyQuote:     winapi.VK_OEM_7,
	KeyBackquote: winapi.VK_OEM_3,
	KeyShiftL:    winapi.VK_LSHIFT,
	KeyBackSlash: winapi.VK_OEM_5,

	KeyZ:      winapi.VK_Z,
	KeyX:      0x58,
	KeyC:      0x43,
	KeyV:      0x56,
	KeyB:      0x42,
	KeyN:      0x4E,
	KeyM:      0x4D,
	KeyComma:  winapi.VK_OEM_COMMA,
	KeyPeriod: winapi.VK_OEM_PERIOD,
	KeySlash:  winapi.VK_OEM_2,
	KeyShiftR: winapi.VK_RSHIFT,

	KeyKPMultiply: winapi.VK_MULTIPLY,
	KeyAltL:       winapi.VK_LMENU,
	KeySpace:      winapi.VK_SPACE,
	KeyCapsLock:   winapi.VK_CAPITAL,

	KeyF1:  winapi.VK_F1,
	KeyF2:  0x71,
	KeyF3:  0x72,
	KeyF4:  0x73,
	KeyF5:  0x74,
	KeyF6:  0x75,
	KeyF7:  0x76,
	KeyF8:  0x77,
	KeyF9:  0x78,
	KeyF10: 0x79,
	KeyF11: 0x7A,
	KeyF12: winapi.VK_F12,

	KeyNumLock:    winapi.VK_NUMLOCK,
	KeyScrollLock: winapi.VK_SCROLL,

	KeyKP7:        0x67,
	KeyKP8:        0x68,
	KeyKP9:        0x69,
	KeyKPSubtract: winapi.VK_SUBTRACT,
	KeyKP4:        0x64,
	KeyKP5:        0x65,
	KeyKP6:        0x66,
	KeyKPAdd:      winapi.VK_ADD,
	KeyKP1:        0x61,
	KeyKP2:        0x62,
	KeyKP3:        0x63,
	KeyKP0:        winapi.VK_NUMPAD0,
	KeyKPDecimal:  winapi.VK_DECIMAL,

	KeyKPEnter:     winapi.VK_RETURN,
	KeyControlR:    winapi.VK_RCONTROL,
	KeyKPDivide:    winapi.VK_DIVIDE,
	KeyPrintScreen: winapi.VK_SNAPSHOT,
	KeyAltR:        winapi.VK_RMENU,
	KeyPause:       winapi.VK_PAUSE,
	KeyHome:        winapi.VK_HOME,
	KeyUp:          winapi.VK_UP,
	KeyPageUp:      winapi.VK_PRIOR,
	KeyLeft:        winapi.VK_LEFT,
	KeyRight:       winapi.VK_RIGHT,
	KeyEnd:         winapi.VK_END,
	KeyDown:        winapi.VK_DOWN,
	KeyPageDown:    winapi.VK_NEXT,
	KeyInsert:      winapi.VK_INSERT,
	KeyDelete:      winapi.VK_DELETE,
	KeyMetaL:       winapi.VK_LWIN,
	KeyMetaR:       winapi.VK_RWIN,
}

// Resolve maps an abstract key code to its Windows virtual-key code.
// Unknown codes resolve to VKUndefined.
func Resolve(keycode uint16) uint16 {
	return virtualKeys[keycode]
}

// Table is the default Resolver used by the injector.
type Table struct{}

// Resolve implements inject.Resolver.
func (Table) Resolve(keycode uint16) uint16 { return Resolve(keycode) }
