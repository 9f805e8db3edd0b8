//go:build windows

package inject

import (
	"log/slog"

	"winject/internal/keymap"
	"winject/internal/winapi"
)

// systemScreen reads the primary display extents via GetSystemMetrics.
// TODO: multi-monitor support; the virtual desktop metrics
// (SM_CX/CYVIRTUALSCREEN) plus per-monitor offsets would be needed for
// correct normalization of secondary-monitor coordinates.
type systemScreen struct{}

func (systemScreen) PrimarySize() (int32, int32) {
	return winapi.GetSystemMetrics(winapi.SM_CXSCREEN),
		winapi.GetSystemMetrics(winapi.SM_CYSCREEN)
}

// systemSubmitter forwards assembled records to SendInput.
type systemSubmitter struct{}

func (systemSubmitter) Submit(rec Record) error {
	switch rec.Kind {
	case KindKeyboard:
		return winapi.SendKeyboardInput(winapi.KEYBDINPUT{
			Vk:    rec.Keyboard.VK,
			Scan:  rec.Keyboard.Scan,
			Flags: rec.Keyboard.Flags,
		})
	default:
		return winapi.SendMouseInput(winapi.MOUSEINPUT{
			Dx:        rec.Mouse.DX,
			Dy:        rec.Mouse.DY,
			MouseData: uint32(rec.Mouse.Data),
			Flags:     rec.Mouse.Flags,
		})
	}
}

// NewSystem creates an injector backed by the live OS: the built-in key map,
// GetSystemMetrics geometry, and SendInput submission.
func NewSystem(logger *slog.Logger) *Injector {
	return New(keymap.Table{}, systemScreen{}, systemSubmitter{}, logger)
}
