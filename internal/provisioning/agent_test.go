package provisioning

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nodeprep/internal/config"
)

func TestAgentDownloadStep_FetchesPinnedRelease(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	ctx, mocks, _ := testContext(t, testConfig(), env)

	var gotDest, gotURL string
	mocks.downloader.FetchFunc = func(_ context.Context, destPath, url string) error {
		gotDest, gotURL = destPath, url
		return nil
	}

	require.NoError(t, AgentDownloadStep{}.Provision(ctx))

	assert.Equal(t, env.BinaryPath("wins.exe"), gotDest)
	assert.Equal(t, "https://github.com/rancher/wins/releases/download/v0.4.20/wins.exe", gotURL)
	assert.Equal(t, []string{gotDest}, ctx.State.Fetched)
}

func TestAgentDownloadStep_SkipsExistingBinary(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	require.NoError(t, os.MkdirAll(env.InstallDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.InstallDir, "wins.exe"), []byte("agent"), 0o755))

	ctx, mocks, _ := testContext(t, testConfig(), env)
	mocks.downloader.FetchFunc = func(context.Context, string, string) error {
		t.Fatal("no download for a present binary")
		return nil
	}

	require.NoError(t, AgentDownloadStep{}.Provision(ctx))
	assert.Empty(t, ctx.State.Fetched)
}

func TestAgentServiceStep_RegistersAndStarts(t *testing.T) {
	t.Parallel()

	env := tempEnvironment(t)
	ctx, mocks, _ := testContext(t, testConfig(), env)

	var calls []string
	mocks.services.RegisterSelfFunc = func(_ context.Context, exePath string, registerArgs []string) error {
		calls = append(calls, "register")
		assert.Equal(t, env.BinaryPath("wins.exe"), exePath)
		assert.Equal(t, []string{"srv", "app", "run", "--register"}, registerArgs)
		return nil
	}
	mocks.services.StartFunc = func(_ context.Context, name string) error {
		calls = append(calls, "start")
		assert.Equal(t, config.WinsServiceName, name)
		return nil
	}

	require.NoError(t, AgentServiceStep{}.Provision(ctx))

	assert.Equal(t, []string{"register", "start"}, calls, "registration precedes the start")
	assert.Equal(t, []string{config.WinsServiceName}, ctx.State.RegisteredServices)
}

func TestAgentServiceStep_SkipsRegisteredService(t *testing.T) {
	t.Parallel()

	ctx, mocks, _ := testContext(t, testConfig(), tempEnvironment(t))
	mocks.services.ExistsFunc = func(name string) (bool, error) {
		return name == config.WinsServiceName, nil
	}
	mocks.services.RegisterSelfFunc = func(context.Context, string, []string) error {
		t.Fatal("no registration for a present service")
		return nil
	}
	mocks.services.StartFunc = func(context.Context, string) error {
		t.Fatal("no start for a present service")
		return nil
	}

	require.NoError(t, AgentServiceStep{}.Provision(ctx))
	assert.Empty(t, ctx.State.RegisteredServices)
}

func TestAgentServiceStep_RegistrationFailureSkipsStart(t *testing.T) {
	t.Parallel()

	ctx, mocks, _ := testContext(t, testConfig(), tempEnvironment(t))
	mocks.services.RegisterSelfFunc = func(context.Context, string, []string) error {
		return errors.New("exit status 1")
	}
	mocks.services.StartFunc = func(context.Context, string) error {
		t.Fatal("start must not run after failed registration")
		return nil
	}

	err := AgentServiceStep{}.Provision(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to install service rancher-wins")
}
