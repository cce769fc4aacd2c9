package provisioning

import "fmt"

// PreconditionStep verifies the selected container runtime is running before
// any provisioning happens. Nothing downstream can succeed without it, so a
// missing endpoint is fatal and never retried.
type PreconditionStep struct{}

// Name implements Step.
func (PreconditionStep) Name() string { return "runtime-check" }

// Provision implements Step.
func (PreconditionStep) Provision(ctx *Context) error {
	runtime := ctx.Config.Runtime
	pipePath := runtime.ControlPipe()

	present, err := ctx.Host.Endpoint.Present(ctx, pipePath)
	if err != nil {
		return fmt.Errorf("failed to probe %s control endpoint %s: %w", runtime, pipePath, err)
	}
	if !present {
		return fmt.Errorf("%s is not running: control endpoint %s not found; install and start %s on this machine, then re-run",
			runtime, pipePath, runtime)
	}

	ctx.Observer.Printf("Detected running %s at %s", runtime, pipePath)
	return nil
}
