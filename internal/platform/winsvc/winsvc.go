// Package winsvc registers and starts Windows services through the service
// control manager. It implements the provisioning.ServiceManager contract:
// lookup by name (not-found counts as not installed), registration with
// start-order dependencies, the self-registering agent invocation, and a
// start call that waits for the service to reach running.
package winsvc

import (
	"time"

	"github.com/imamik/nodeprep/internal/config"
)

// Manager talks to the local service control manager. Connections are made
// per call; the SCM handle is not held across the run.
type Manager struct {
	startTimeout      time.Duration
	retryMaxAttempts  int
	retryInitialDelay time.Duration
}

// New creates a service manager using the configured wait budgets.
func New(timeouts *config.Timeouts) *Manager {
	return &Manager{
		startTimeout:      timeouts.ServiceStart,
		retryMaxAttempts:  timeouts.RetryMaxAttempts,
		retryInitialDelay: timeouts.RetryInitialDelay,
	}
}
