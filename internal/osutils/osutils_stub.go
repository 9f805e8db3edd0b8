//go:build !windows

package osutils

import "log/slog"

// IsAdmin is a stub for non-Windows platforms
func IsAdmin() bool {
	return false
}

// EnsureFirewallRule is a stub for non-Windows platforms
func EnsureFirewallRule(port int) error {
	slog.Info("firewall: automatic rule management is only supported on Windows")
	return nil
}

// WakeUp is a no-op stub for non-Windows platforms
func WakeUp() {}
