// Package dockernet manages host-mode container networks through the Docker
// Engine API. It is the network-creation mechanism for the Docker runtime
// family; containerd nodes use internal/platform/hns instead.
package dockernet

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
)

// apiClient is the slice of the Docker client this package uses.
type apiClient interface {
	NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
	NetworkCreate(ctx context.Context, name string, options network.CreateOptions) (network.CreateResponse, error)
}

// Manager queries and creates Docker networks.
type Manager struct {
	client apiClient
}

// New creates a manager connected to the local Docker Engine. The engine
// endpoint comes from the standard DOCKER_HOST environment (the Windows
// named pipe by default).
func New() (*Manager, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Manager{client: cli}, nil
}

// NetworkExists reports whether a Docker network with exactly this name
// exists. The engine's name filter matches substrings, so the result list is
// re-checked for an exact match.
func (m *Manager) NetworkExists(ctx context.Context, name string) (bool, error) {
	summaries, err := m.client.NetworkList(ctx, network.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list docker networks: %w", err)
	}
	for _, summary := range summaries {
		if summary.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// CreateNATNetwork creates a NAT-driver Docker network with the given name.
func (m *Manager) CreateNATNetwork(ctx context.Context, name string) error {
	if _, err := m.client.NetworkCreate(ctx, name, network.CreateOptions{Driver: "nat"}); err != nil {
		return fmt.Errorf("failed to create docker network %s: %w", name, err)
	}
	return nil
}
