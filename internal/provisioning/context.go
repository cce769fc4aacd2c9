package provisioning

import (
	"context"

	"github.com/imamik/nodeprep/internal/config"
)

// State holds the shared results of provisioning steps. It is progressively
// populated as each step completes and feeds the final summary. It is built
// fresh each run and never persisted; durable state lives in the OS.
type State struct {
	// Fetched lists destination paths written by this run.
	Fetched []string

	// RegisteredServices lists services installed by this run.
	RegisteredServices []string

	// NetworkCreated records whether the host network was created (as
	// opposed to already present).
	NetworkCreated bool

	// FirewallRuleCreated records whether the kubelet rule was added.
	FirewallRuleCreated bool

	// StartupScript is the generated kubelet startup script path.
	StartupScript string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Context wraps all dependencies and state needed for a provisioning step.
type Context struct {
	context.Context
	Config   *config.Config
	Env      HostEnvironment
	State    *State
	Host     Collaborators
	Observer Observer
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, cfg *config.Config, env HostEnvironment, host Collaborators) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Env:      env,
		State:    NewState(),
		Host:     host,
		Observer: NewConsoleObserver(),
		Timeouts: config.LoadTimeouts(),
	}
}
