//go:build windows

package firewall

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// RuleExists reports whether a firewall rule with the given name exists.
// netsh exits non-zero when no rules match the name.
func (m *Manager) RuleExists(ctx context.Context, name string) (bool, error) {
	cmd := exec.CommandContext(ctx, "netsh", "advfirewall", "firewall", "show", "rule", "name="+name)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query firewall rule %s: %w", name, err)
	}
	return true, nil
}

// AddInboundTCPRule creates an inbound-allow TCP rule for the given port.
func (m *Manager) AddInboundTCPRule(ctx context.Context, name string, port int) error {
	cmd := exec.CommandContext(ctx, "netsh", "advfirewall", "firewall", "add", "rule",
		"name="+name,
		"dir=in",
		"action=allow",
		"protocol=TCP",
		"localport="+strconv.Itoa(port))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to add firewall rule %s for port %d: %w (output: %s)", name, port, err, out)
	}
	return nil
}
