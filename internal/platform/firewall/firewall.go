// Package firewall manages Windows firewall rules by name through netsh.
// Rules are checked before creation so the provisioning pipeline can apply
// the same presence-check-or-create treatment it uses everywhere else.
package firewall

// Manager manages host firewall rules.
type Manager struct{}

// New creates a firewall manager.
func New() *Manager {
	return &Manager{}
}
