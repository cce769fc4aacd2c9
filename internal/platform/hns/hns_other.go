//go:build !windows

package hns

import (
	"context"
	"fmt"
	"runtime"
)

func errUnsupported() error {
	return fmt.Errorf("HNS networking is not supported on %s", runtime.GOOS)
}

// NetworkExists is unavailable off Windows.
func (m *Manager) NetworkExists(context.Context, string) (bool, error) {
	return false, errUnsupported()
}

// CreateNATNetwork is unavailable off Windows.
func (m *Manager) CreateNATNetwork(context.Context, string) error {
	return errUnsupported()
}
