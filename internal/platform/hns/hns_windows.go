//go:build windows

package hns

import (
	"context"
	"fmt"

	"github.com/Microsoft/hcsshim/hcn"
)

// NetworkExists reports whether an HNS network with exactly this name exists.
func (m *Manager) NetworkExists(_ context.Context, name string) (bool, error) {
	_, err := hcn.GetNetworkByName(name)
	if err != nil {
		if hcn.IsNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query HNS network %s: %w", name, err)
	}
	return true, nil
}

// CreateNATNetwork creates a NAT-mode HNS network with the given name.
func (m *Manager) CreateNATNetwork(_ context.Context, name string) error {
	network := &hcn.HostComputeNetwork{
		Name:          name,
		Type:          hcn.NAT,
		SchemaVersion: hcn.V2SchemaVersion(),
	}
	if _, err := network.Create(); err != nil {
		return fmt.Errorf("failed to create HNS network %s: %w", name, err)
	}
	return nil
}
