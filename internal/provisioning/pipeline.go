package provisioning

import (
	"fmt"
	"time"
)

// RunSteps executes all provisioning steps sequentially.
//
// Any step failure aborts the run immediately; later steps are not attempted
// and earlier ones are not undone. Re-running after fixing the cause resumes
// correctly because already-satisfied resources are skipped.
func RunSteps(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Observer.Printf("Starting node preparation with %d steps...", len(steps))

	for i, step := range steps {
		stepStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", step.Name(), i+1, len(steps))

		LogStepStart(ctx.Observer, name)

		if err := step.Provision(ctx); err != nil {
			LogStepFailed(ctx.Observer, name, err)
			return fmt.Errorf("%s step failed: %w", step.Name(), err)
		}

		LogStepComplete(ctx.Observer, name, time.Since(stepStart))
	}

	ctx.Observer.Printf("Node preparation completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// DefaultSteps returns the canonical step order. The runtime probe comes
// first, the network before the worker service, binaries before the service
// that references them, and the best-effort firewall rule last.
func DefaultSteps() []Step {
	return []Step{
		PreconditionStep{},
		PathsStep{},
		NetworkStep{},
		AgentDownloadStep{},
		AgentServiceStep{},
		BinariesStep{},
		KubeletServiceStep{},
		FirewallStep{},
	}
}
