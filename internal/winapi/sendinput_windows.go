//go:build windows

package winapi

import (
	"syscall"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procSendInput        = user32.NewProc("SendInput")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

// input is the 64-bit INPUT layout: a 4-byte type tag, 4 bytes of alignment
// padding, then the union sized to its largest member (MOUSEINPUT).
// KEYBDINPUT submissions overlay the same union space.
type input struct {
	Type uint32
	_    uint32
	Mi   MOUSEINPUT
}

// SendMouseInput submits a single mouse event via SendInput. On failure the
// returned error is the syscall.Errno from GetLastError.
func SendMouseInput(mi MOUSEINPUT) error {
	inp := input{Type: INPUT_MOUSE, Mi: mi}
	ret, _, err := procSendInput.Call(
		1,
		uintptr(unsafe.Pointer(&inp)),
		unsafe.Sizeof(inp),
	)
	if ret != 1 {
		return err
	}
	return nil
}

// SendKeyboardInput submits a single keyboard event via SendInput.
func SendKeyboardInput(ki KEYBDINPUT) error {
	inp := input{Type: INPUT_KEYBOARD}
	*(*KEYBDINPUT)(unsafe.Pointer(&inp.Mi)) = ki
	ret, _, err := procSendInput.Call(
		1,
		uintptr(unsafe.Pointer(&inp)),
		unsafe.Sizeof(inp),
	)
	if ret != 1 {
		return err
	}
	return nil
}

// GetSystemMetrics wraps the user32 call of the same name.
func GetSystemMetrics(index int32) int32 {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int32(ret)
}
