package provisioning

import (
	"context"
	"os"
)

// pathPresent is the shared filesystem existence test. Lstat so that a
// symbolic link counts even when its target is gone.
func pathPresent(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// dirResource is a directory created with all parents.
type dirResource struct {
	path string
}

func (r dirResource) Kind() string { return "directory" }
func (r dirResource) Name() string { return r.path }

func (r dirResource) Exists(context.Context) (bool, error) {
	return pathPresent(r.path)
}

func (r dirResource) Install(context.Context) error {
	return os.MkdirAll(r.path, 0o755)
}

// symlinkResource is a symbolic link joining two directory trees.
type symlinkResource struct {
	path   string
	target string
}

func (r symlinkResource) Kind() string { return "symbolic link" }
func (r symlinkResource) Name() string { return r.path }

func (r symlinkResource) Exists(context.Context) (bool, error) {
	return pathPresent(r.path)
}

func (r symlinkResource) Install(context.Context) error {
	return os.Symlink(r.target, r.path)
}

// binaryResource is an executable downloaded to a local path.
type binaryResource struct {
	path       string
	url        string
	downloader Downloader
}

func (r binaryResource) Kind() string { return "binary" }
func (r binaryResource) Name() string { return r.path }

func (r binaryResource) Exists(context.Context) (bool, error) {
	return pathPresent(r.path)
}

func (r binaryResource) Install(ctx context.Context) error {
	return r.downloader.Fetch(ctx, r.path, r.url)
}

// serviceResource is a supervised service registered by this tool.
type serviceResource struct {
	services     ServiceManager
	name         string
	exePath      string
	args         []string
	displayName  string
	dependencies []string
}

func (r serviceResource) Kind() string { return "service" }
func (r serviceResource) Name() string { return r.name }

func (r serviceResource) Exists(context.Context) (bool, error) {
	return r.services.Exists(r.name)
}

func (r serviceResource) Install(context.Context) error {
	return r.services.Register(r.name, r.exePath, r.args, r.displayName, r.dependencies)
}

// selfRegisteringService is a downloaded executable that installs itself as
// a service via its own registration invocation and is then started
// explicitly: Downloaded -> Registered -> Started.
type selfRegisteringService struct {
	services     ServiceManager
	serviceName  string
	exePath      string
	registerArgs []string
}

func (r selfRegisteringService) Kind() string { return "service" }
func (r selfRegisteringService) Name() string { return r.serviceName }

func (r selfRegisteringService) Exists(context.Context) (bool, error) {
	return r.services.Exists(r.serviceName)
}

func (r selfRegisteringService) Install(ctx context.Context) error {
	if err := r.services.RegisterSelf(ctx, r.exePath, r.registerArgs); err != nil {
		return err
	}
	return r.services.Start(ctx, r.serviceName)
}

// networkResource is the host-mode NAT network, created through whichever
// mechanism fits the selected runtime.
type networkResource struct {
	network NetworkManager
	name    string
}

func (r networkResource) Kind() string { return "network" }
func (r networkResource) Name() string { return r.name }

func (r networkResource) Exists(ctx context.Context) (bool, error) {
	return r.network.NetworkExists(ctx, r.name)
}

func (r networkResource) Install(ctx context.Context) error {
	return r.network.CreateNATNetwork(ctx, r.name)
}

// firewallRuleResource is the inbound-allow rule for the kubelet API port.
type firewallRuleResource struct {
	firewall FirewallManager
	name     string
	port     int
}

func (r firewallRuleResource) Kind() string { return "firewall rule" }
func (r firewallRuleResource) Name() string { return r.name }

func (r firewallRuleResource) Exists(ctx context.Context) (bool, error) {
	return r.firewall.RuleExists(ctx, r.name)
}

func (r firewallRuleResource) Install(ctx context.Context) error {
	return r.firewall.AddInboundTCPRule(ctx, r.name, r.port)
}
