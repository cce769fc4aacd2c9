//go:build !windows

package winsvc

import (
	"context"
	"fmt"
	"runtime"
)

func errUnsupported() error {
	return fmt.Errorf("windows service management is not supported on %s", runtime.GOOS)
}

// Exists is unavailable off Windows.
func (m *Manager) Exists(string) (bool, error) { return false, errUnsupported() }

// Register is unavailable off Windows.
func (m *Manager) Register(string, string, []string, string, []string) error {
	return errUnsupported()
}

// RegisterSelf is unavailable off Windows.
func (m *Manager) RegisterSelf(context.Context, string, []string) error {
	return errUnsupported()
}

// Start is unavailable off Windows.
func (m *Manager) Start(context.Context, string) error { return errUnsupported() }
