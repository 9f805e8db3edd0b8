//go:build !windows

package inject

import (
	"errors"
	"log/slog"

	"winject/internal/keymap"
)

// Stub collaborators for non-Windows platforms: every submission fails and
// is logged, geometry reports no display so mouse events drop early.

type systemScreen struct{}

func (systemScreen) PrimarySize() (int32, int32) { return 0, 0 }

type systemSubmitter struct{}

func (systemSubmitter) Submit(rec Record) error {
	return errors.New("input injection not supported on this platform")
}

// NewSystem creates an injector whose submissions always fail; useful only
// so the agent binary builds and runs (with logging) off Windows.
func NewSystem(logger *slog.Logger) *Injector {
	return New(keymap.Table{}, systemScreen{}, systemSubmitter{}, logger)
}
