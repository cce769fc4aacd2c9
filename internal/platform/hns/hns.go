// Package hns manages host-mode container networks through the Windows Host
// Network Service. It is the network-creation mechanism for the containerd
// runtime family; Docker nodes use internal/platform/dockernet instead.
package hns

// Manager queries and creates HNS networks.
type Manager struct{}

// New creates an HNS network manager.
func New() *Manager {
	return &Manager{}
}
