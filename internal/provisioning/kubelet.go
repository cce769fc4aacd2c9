package provisioning

import (
	"fmt"
	"os"

	"github.com/imamik/nodeprep/internal/config"
)

// powershellPath launches the generated startup script as the service entry.
const powershellPath = `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`

// KubeletServiceStep renders the kubelet startup script and registers the
// kubelet as a supervised, start-on-boot service constrained to start after
// the selected container runtime's service.
type KubeletServiceStep struct{}

// Name implements Step.
func (KubeletServiceStep) Name() string { return "kubelet-service" }

// Provision implements Step.
func (s KubeletServiceStep) Provision(ctx *Context) error {
	command := KubeletCommand{
		Runtime:    ctx.Config.Runtime,
		Env:        ctx.Env,
		PauseImage: ctx.Config.PauseImage,
	}

	// The script is regenerated every run so runtime or flag changes take
	// effect; registration below stays idempotent.
	scriptPath := ctx.Env.StartupScriptPath()
	if err := os.WriteFile(scriptPath, []byte(command.Script()), 0o644); err != nil {
		return fmt.Errorf("failed to write startup script %s: %w", scriptPath, err)
	}
	ctx.State.StartupScript = scriptPath
	ctx.Observer.Printf("Wrote kubelet startup script to %s", scriptPath)

	registered, err := Ensure(ctx, serviceResource{
		services:    ctx.Host.Services,
		name:        config.KubeletServiceName,
		exePath:     powershellPath,
		args:        []string{"-ExecutionPolicy", "Bypass", "-NoProfile", "-File", scriptPath},
		displayName: "kubelet",
		dependencies: []string{
			ctx.Config.Runtime.ServiceName(),
		},
	})
	if err != nil {
		return err
	}

	if registered {
		ctx.State.RegisteredServices = append(ctx.State.RegisteredServices, config.KubeletServiceName)
	}
	return nil
}
