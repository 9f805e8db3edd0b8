//go:build windows

package osutils

import "winject/internal/winapi"

// WakeUp simulates a one-pixel mouse wiggle to keep the system from engaging
// the screensaver or sleeping while a remote session is active. Injection-
// only machines see no physical input, so the idle timer never resets on its
// own.
func WakeUp() {
	winapi.SendMouseInput(winapi.MOUSEINPUT{
		Dx: 1, Dy: 1, Flags: winapi.MOUSEEVENTF_MOVE,
	})
	winapi.SendMouseInput(winapi.MOUSEINPUT{
		Dx: -1, Dy: -1, Flags: winapi.MOUSEEVENTF_MOVE,
	})
}
