//go:build windows

package osutils

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsAdmin checks if the current process has administrative privileges
func IsAdmin() bool {
	var token windows.Token
	h, _ := windows.GetCurrentProcess()
	err := windows.OpenProcessToken(h, windows.TOKEN_QUERY, &token)
	if err != nil {
		return false
	}
	defer token.Close()

	var sid *windows.SID
	err = windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	member, err := token.IsMember(sid)
	if err != nil {
		return false
	}

	return member
}

// EnsureFirewallRule checks if an inbound rule for the agent's event stream
// port exists, and if not, attempts to create it using PowerShell with admin
// elevation.
func EnsureFirewallRule(port int) error {
	ruleName := "WInject Agent"

	slog.Info("firewall: checking rule", "rule", ruleName, "port", port)

	// 1. Check if rule already exists AND matches the port. netsh output is
	// checked for the port string rather than parsed.
	checkCmd := exec.Command("netsh", "advfirewall", "firewall", "show", "rule", "name="+ruleName)
	output, err := checkCmd.CombinedOutput()
	outputStr := string(output)

	if err == nil && strings.Contains(outputStr, ruleName) {
		portStr := fmt.Sprintf("%d", port)
		if strings.Contains(outputStr, portStr) && strings.Contains(outputStr, "Allow") {
			slog.Info("firewall: rule already matches", "rule", ruleName, "port", port)
			return nil
		}
		slog.Info("firewall: rule exists but port/action mismatch, updating", "rule", ruleName)
	} else {
		slog.Info("firewall: rule not found, creating", "rule", ruleName)
	}

	// 2. Port-based rule without a -Program restriction, so a moved binary
	// keeps its open port.
	psCommand := fmt.Sprintf(
		"Remove-NetFirewallRule -DisplayName '%s' -ErrorAction SilentlyContinue; New-NetFirewallRule -DisplayName '%s' -Direction Inbound -LocalPort %d -Protocol UDP -Action Allow -Profile Any",
		ruleName, ruleName, port,
	)

	// 3. Execute with RunAs verb to trigger UAC if not already admin
	if !IsAdmin() {
		slog.Info("firewall: not elevated, requesting UAC via ShellExecute")

		verbPtr, _ := syscall.UTF16PtrFromString("runas")
		exePtr, _ := syscall.UTF16PtrFromString("powershell.exe")
		argPtr, _ := syscall.UTF16PtrFromString(fmt.Sprintf("-NoProfile -WindowStyle Hidden -Command \"%s\"", psCommand))

		var showCmd int32 = 0 // SW_HIDE

		err := windows.ShellExecute(0, verbPtr, exePtr, argPtr, nil, showCmd)
		if err != nil {
			return fmt.Errorf("failed to launch elevated powershell via ShellExecute: %w", err)
		}
		slog.Info("firewall: UAC prompt requested")
	} else {
		cmd := exec.Command("powershell", "-NoProfile", "-Command", psCommand)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("failed to create firewall rule: %w (output: %s)", err, string(output))
		}
		slog.Info("firewall: rule applied", "port", port)
	}

	return nil
}
