package provisioning

import "fmt"

// PathsStep lays out the filesystem the rest of the run depends on: the
// install directory, log and PKI directories, the symbolic link joining the
// kubelet state tree to the Kubernetes configuration tree, and the search
// path update (session plus persisted machine-wide).
type PathsStep struct{}

// Name implements Step.
func (PathsStep) Name() string { return "host-paths" }

// Provision implements Step.
func (PathsStep) Provision(ctx *Context) error {
	for _, dir := range ctx.Env.Directories() {
		if _, err := Ensure(ctx, dirResource{path: dir}); err != nil {
			return err
		}
	}

	link := symlinkResource{
		path:   ctx.Env.ConfigMirror(),
		target: ctx.Env.KubernetesDir,
	}
	if _, err := Ensure(ctx, link); err != nil {
		return err
	}

	// One explicit, logged search-path update; the persister skips entries
	// that are already present.
	if err := ctx.Host.Paths.AppendSessionPath(ctx.Env.InstallDir); err != nil {
		return fmt.Errorf("failed to add %s to the session PATH: %w", ctx.Env.InstallDir, err)
	}
	if err := ctx.Host.Paths.PersistMachinePath(ctx.Env.InstallDir); err != nil {
		return fmt.Errorf("failed to persist %s on the machine PATH: %w", ctx.Env.InstallDir, err)
	}
	ctx.Observer.Printf("Search path includes %s (session and machine)", ctx.Env.InstallDir)

	return nil
}
