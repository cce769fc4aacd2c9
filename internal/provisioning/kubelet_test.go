package provisioning

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nodeprep/internal/config"
)

func TestKubeletServiceStep_RegistersService(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	require.NoError(t, os.MkdirAll(env.InstallDir, 0o755))
	ctx, mocks, _ := testContext(t, testConfig(), env)

	var gotName, gotExe string
	var gotArgs, gotDeps []string
	mocks.services.RegisterFunc = func(name, exePath string, args []string, _ string, dependencies []string) error {
		gotName, gotExe, gotArgs, gotDeps = name, exePath, args, dependencies
		return nil
	}

	require.NoError(t, KubeletServiceStep{}.Provision(ctx))

	assert.Equal(t, config.KubeletServiceName, gotName)
	assert.Equal(t, powershellPath, gotExe)
	assert.Equal(t, []string{"-ExecutionPolicy", "Bypass", "-NoProfile", "-File", env.StartupScriptPath()}, gotArgs)
	assert.Equal(t, []string{"containerd"}, gotDeps, "kubelet starts after the runtime service")
	assert.Equal(t, []string{config.KubeletServiceName}, ctx.State.RegisteredServices)
}

func TestKubeletServiceStep_DockerDependency(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	require.NoError(t, os.MkdirAll(env.InstallDir, 0o755))
	cfg := testConfig()
	cfg.Runtime = config.RuntimeDocker
	ctx, mocks, _ := testContext(t, cfg, env)

	var gotDeps []string
	mocks.services.RegisterFunc = func(_, _ string, _ []string, _ string, dependencies []string) error {
		gotDeps = dependencies
		return nil
	}

	require.NoError(t, KubeletServiceStep{}.Provision(ctx))
	assert.Equal(t, []string{"docker"}, gotDeps)
}

func TestKubeletServiceStep_WritesStartupScript(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	require.NoError(t, os.MkdirAll(env.InstallDir, 0o755))
	ctx, _, _ := testContext(t, testConfig(), env)

	require.NoError(t, KubeletServiceStep{}.Provision(ctx))

	assert.Equal(t, env.StartupScriptPath(), ctx.State.StartupScript)

	script, err := os.ReadFile(env.StartupScriptPath())
	require.NoError(t, err)
	assert.Contains(t, string(script), env.BinaryPath("kubelet.exe"))
	assert.Contains(t, string(script), "--pod-infra-container-image="+config.DefaultPauseImage)
	assert.Contains(t, string(script), "--container-runtime-endpoint=npipe:////./pipe/containerd-containerd")
}

func TestKubeletServiceStep_RewritesScriptForExistingService(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	require.NoError(t, os.MkdirAll(env.InstallDir, 0o755))
	require.NoError(t, os.WriteFile(env.StartupScriptPath(), []byte("stale"), 0o644))

	ctx, mocks, _ := testContext(t, testConfig(), env)
	mocks.services.ExistsFunc = func(name string) (bool, error) {
		return name == config.KubeletServiceName, nil
	}
	mocks.services.RegisterFunc = func(string, string, []string, string, []string) error {
		t.Fatal("no registration for a present service")
		return nil
	}

	require.NoError(t, KubeletServiceStep{}.Provision(ctx))

	script, err := os.ReadFile(env.StartupScriptPath())
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(script), "script is regenerated every run")
	assert.Empty(t, ctx.State.RegisteredServices)
}
