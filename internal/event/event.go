// Package event defines the platform-independent input event model shared by
// the wire codecs and the injector.
package event

import "fmt"

// Type identifies the kind of input event. The value space is deliberately
// open: events arriving off the wire may carry types this build does not know
// about, and consumers are expected to ignore them rather than fail.
type Type uint8

const (
	HookEnabled Type = iota + 1
	HookDisabled
	KeyTyped
	KeyPressed
	KeyReleased
	MouseClicked
	MousePressed
	MouseReleased
	MouseMoved
	MouseDragged
	MouseWheel
)

var typeNames = map[Type]string{
	HookEnabled:   "hook_enabled",
	HookDisabled:  "hook_disabled",
	KeyTyped:      "key_typed",
	KeyPressed:    "key_pressed",
	KeyReleased:   "key_released",
	MouseClicked:  "mouse_clicked",
	MousePressed:  "mouse_pressed",
	MouseReleased: "mouse_released",
	MouseMoved:    "mouse_moved",
	MouseDragged:  "mouse_dragged",
	MouseWheel:    "mouse_wheel",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%#x)", uint8(t))
}

// Modifier masks. Left and right variants occupy the low byte, button state
// the high byte. Captured drags carry their held button here rather than as a
// separate field.
const (
	MaskShiftL uint16 = 1 << 0
	MaskCtrlL  uint16 = 1 << 1
	MaskMetaL  uint16 = 1 << 2
	MaskAltL   uint16 = 1 << 3
	MaskShiftR uint16 = 1 << 4
	MaskCtrlR  uint16 = 1 << 5
	MaskMetaR  uint16 = 1 << 6
	MaskAltR   uint16 = 1 << 7

	MaskButton1 uint16 = 1 << 8
	MaskButton2 uint16 = 1 << 9
	MaskButton3 uint16 = 1 << 10
	MaskButton4 uint16 = 1 << 11
	MaskButton5 uint16 = 1 << 12

	MaskShift = MaskShiftL | MaskShiftR
	MaskCtrl  = MaskCtrlL | MaskCtrlR
	MaskMeta  = MaskMetaL | MaskMetaR
	MaskAlt   = MaskAltL | MaskAltR
)

// Mouse button ordinals. Buttons beyond 5 are legal; the injector encodes
// them with a fallback scheme.
const (
	Button1 uint16 = 1 // left
	Button2 uint16 = 2 // right
	Button3 uint16 = 3 // middle
	Button4 uint16 = 4 // extra 1
	Button5 uint16 = 5 // extra 2
)

// Event is a single captured or synthetic input event. Which fields are
// meaningful depends on Type: keyboard events use Keycode, mouse events use
// X/Y/Button, wheel events additionally Amount/Rotation. Modifiers applies to
// all of them. The struct is a value type; the injector treats it as
// read-only.
type Event struct {
	Type      Type   `json:"type"`
	Timestamp int64  `json:"ts"` // Unix ms
	Modifiers uint16 `json:"mods,omitempty"`

	// Keyboard
	Keycode uint16 `json:"keycode,omitempty"`

	// Mouse
	X      int32  `json:"x,omitempty"`
	Y      int32  `json:"y,omitempty"`
	Button uint16 `json:"btn,omitempty"`
	Clicks uint16 `json:"clicks,omitempty"`

	// Wheel
	Amount   uint16 `json:"amount,omitempty"`   // scroll magnitude in notches
	Rotation int16  `json:"rotation,omitempty"` // +1 away from user, -1 toward
}
