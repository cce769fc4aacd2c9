package provisioning

import "fmt"

// Ensure is the idempotency gate: it installs the resource only when the
// presence check reports it missing. It returns whether an install ran so
// callers can record what this run actually changed.
func Ensure(ctx *Context, res Resource) (bool, error) {
	present, err := res.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check %s %s: %w", res.Kind(), res.Name(), err)
	}

	if present {
		LogResourceExists(ctx.Observer, res.Kind(), res.Name())
		return false, nil
	}

	LogResourceCreating(ctx.Observer, res.Kind(), res.Name())
	if err := res.Install(ctx); err != nil {
		LogResourceFailed(ctx.Observer, res.Kind(), res.Name(), err)
		return false, fmt.Errorf("failed to install %s %s: %w", res.Kind(), res.Name(), err)
	}

	LogResourceCreated(ctx.Observer, res.Kind(), res.Name())
	return true, nil
}
