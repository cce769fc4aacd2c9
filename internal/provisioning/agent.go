package provisioning

import "github.com/imamik/nodeprep/internal/config"

// winsRegisterArgs is the wins agent's own service registration invocation.
var winsRegisterArgs = []string{"srv", "app", "run", "--register"}

// AgentDownloadStep fetches the pinned wins agent executable into the
// install directory.
type AgentDownloadStep struct{}

// Name implements Step.
func (AgentDownloadStep) Name() string { return "wins-download" }

// Provision implements Step.
func (AgentDownloadStep) Provision(ctx *Context) error {
	dest := ctx.Env.BinaryPath("wins.exe")

	fetched, err := Ensure(ctx, binaryResource{
		path:       dest,
		url:        ctx.Config.WinsURL(),
		downloader: ctx.Host.Downloader,
	})
	if err != nil {
		return err
	}

	if fetched {
		ctx.State.Fetched = append(ctx.State.Fetched, dest)
	}
	return nil
}

// AgentServiceStep installs the wins agent as a supervised service through
// its own registration invocation and then starts it: the downloaded binary
// moves through Downloaded -> Registered -> Started.
type AgentServiceStep struct{}

// Name implements Step.
func (AgentServiceStep) Name() string { return "wins-service" }

// Provision implements Step.
func (AgentServiceStep) Provision(ctx *Context) error {
	registered, err := Ensure(ctx, selfRegisteringService{
		services:     ctx.Host.Services,
		serviceName:  config.WinsServiceName,
		exePath:      ctx.Env.BinaryPath("wins.exe"),
		registerArgs: winsRegisterArgs,
	})
	if err != nil {
		return err
	}

	if registered {
		ctx.State.RegisteredServices = append(ctx.State.RegisteredServices, config.WinsServiceName)
	}
	return nil
}
