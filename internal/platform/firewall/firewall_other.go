//go:build !windows

package firewall

import (
	"context"
	"fmt"
	"runtime"
)

func errUnsupported() error {
	return fmt.Errorf("windows firewall management is not supported on %s", runtime.GOOS)
}

// RuleExists is unavailable off Windows.
func (m *Manager) RuleExists(context.Context, string) (bool, error) {
	return false, errUnsupported()
}

// AddInboundTCPRule is unavailable off Windows.
func (m *Manager) AddInboundTCPRule(context.Context, string, int) error {
	return errUnsupported()
}
