package provisioning

import "context"

// Step defines the interface for one provisioning step.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Provision executes the provisioning logic for this step.
	Provision(ctx *Context) error
}

// Resource is one provisionable unit: a binary file, directory, symbolic
// link, service, network, or firewall rule. Exists must be side-effect free;
// Install is only invoked by [Ensure] when Exists reported false.
type Resource interface {
	// Kind names the resource kind for diagnostics ("directory", "service", ...).
	Kind() string

	// Name identifies the resource (path, service name, or network name).
	Name() string

	// Exists reports whether the resource is already present on the host.
	Exists(ctx context.Context) (bool, error)

	// Install creates the resource. Not guaranteed safe to call when the
	// resource is already present; Ensure never does.
	Install(ctx context.Context) error
}

// Downloader retrieves a remote artifact to a local path.
// Implemented by internal/fetch.Client.
type Downloader interface {
	Fetch(ctx context.Context, destPath, url string) error
}

// ServiceManager manages Windows service registration and startup.
// Implemented by internal/platform/winsvc.
type ServiceManager interface {
	// Exists reports whether a service with the given name is registered.
	// "Not found" lookup errors count as not installed.
	Exists(name string) (bool, error)

	// Register installs a supervised, start-on-boot service. When
	// dependencies is non-empty the service starts only after them.
	Register(name, exePath string, args []string, displayName string, dependencies []string) error

	// RegisterSelf runs a downloaded executable's own registration
	// invocation (the self-registering agent pattern).
	RegisterSelf(ctx context.Context, exePath string, registerArgs []string) error

	// Start starts a registered service and waits for it to reach running.
	Start(ctx context.Context, name string) error
}

// NetworkManager queries and creates host-mode container networks.
// Implemented by internal/platform/hns (containerd) and
// internal/platform/dockernet (Docker).
type NetworkManager interface {
	// NetworkExists reports whether a network with exactly this name exists.
	NetworkExists(ctx context.Context, name string) (bool, error)

	// CreateNATNetwork creates a NAT-mode network with the given name.
	CreateNATNetwork(ctx context.Context, name string) error
}

// FirewallManager manages host firewall rules by name.
// Implemented by internal/platform/firewall.
type FirewallManager interface {
	RuleExists(ctx context.Context, name string) (bool, error)
	AddInboundTCPRule(ctx context.Context, name string, port int) error
}

// EndpointChecker probes for a runtime control endpoint (a named pipe).
// Implemented by internal/platform/pipe.
type EndpointChecker interface {
	Present(ctx context.Context, pipePath string) (bool, error)
}

// PathPersister updates the process search path. Both calls are idempotent.
// Implemented by internal/platform/hostpath.
type PathPersister interface {
	// AppendSessionPath adds dir to the current process PATH.
	AppendSessionPath(dir string) error

	// PersistMachinePath adds dir to the machine-wide PATH.
	PersistMachinePath(dir string) error
}

// Collaborators bundles the external interfaces a run operates through.
type Collaborators struct {
	Downloader Downloader
	Services   ServiceManager
	Network    NetworkManager
	Firewall   FirewallManager
	Endpoint   EndpointChecker
	Paths      PathPersister
}
