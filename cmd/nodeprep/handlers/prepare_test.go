package handlers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/nodeprep/internal/config"
	"github.com/imamik/nodeprep/internal/provisioning"
)

// saveAndRestorePrepareFactories saves and restores prepare factory functions.
func saveAndRestorePrepareFactories(t *testing.T) {
	origCollaborators := newCollaborators
	origHostEnvironment := newHostEnvironment
	origLoadConfigFile := loadConfigFile

	t.Cleanup(func() {
		newCollaborators = origCollaborators
		newHostEnvironment = origHostEnvironment
		loadConfigFile = origLoadConfigFile
	})
}

// tempHostEnvironment redirects the host layout into a throwaway directory.
func tempHostEnvironment(t *testing.T) func(string) provisioning.HostEnvironment {
	t.Helper()
	root := t.TempDir()
	return func(installDir string) provisioning.HostEnvironment {
		return provisioning.HostEnvironment{
			InstallDir:    filepath.Join(root, "k"),
			LogDir:        filepath.Join(root, "var", "log", "kubelet"),
			KubernetesDir: filepath.Join(root, "etc", "kubernetes"),
			PKIDir:        filepath.Join(root, "etc", "kubernetes", "pki"),
			KubeletRoot:   filepath.Join(root, "var", "lib", "kubelet"),
		}
	}
}

func TestPrepare_FullRun(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	var gotConfig *config.Config
	newCollaborators = func(cfg *config.Config) (provisioning.Collaborators, error) {
		gotConfig = cfg
		host, _, _, _, _, _, _ := provisioning.MockCollaborators()
		return host, nil
	}
	newHostEnvironment = tempHostEnvironment(t)

	_ = captureOutput(func() {
		err := Prepare(context.Background(), "", "1.29.2", "")
		require.NoError(t, err)
	})

	require.NotNil(t, gotConfig)
	assert.Equal(t, "v1.29.2", gotConfig.KubernetesVersion, "flag version is normalized")
	assert.Equal(t, config.RuntimeContainerd, gotConfig.Runtime)
}

func TestPrepare_FlagOverridesConfigFile(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	loadConfigFile = func(path string) (*config.Config, error) {
		assert.Equal(t, "node.yaml", path)
		cfg := config.New()
		cfg.KubernetesVersion = "v1.28.0"
		return cfg, nil
	}

	var gotConfig *config.Config
	newCollaborators = func(cfg *config.Config) (provisioning.Collaborators, error) {
		gotConfig = cfg
		host, _, _, _, _, _, _ := provisioning.MockCollaborators()
		return host, nil
	}
	newHostEnvironment = tempHostEnvironment(t)

	_ = captureOutput(func() {
		err := Prepare(context.Background(), "node.yaml", "1.30.0", "docker")
		require.NoError(t, err)
	})

	require.NotNil(t, gotConfig)
	assert.Equal(t, "v1.30.0", gotConfig.KubernetesVersion)
	assert.Equal(t, config.RuntimeDocker, gotConfig.Runtime)
}

func TestPrepare_MissingVersion(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	newCollaborators = func(*config.Config) (provisioning.Collaborators, error) {
		t.Fatal("no collaborators for an invalid config")
		return provisioning.Collaborators{}, nil
	}

	err := Prepare(context.Background(), "", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kubernetes version is required")
}

func TestPrepare_InvalidRuntime(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	err := Prepare(context.Background(), "", "1.29.2", "cri-o")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported container runtime")
}

func TestPrepare_ConfigFileError(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	loadConfigFile = func(string) (*config.Config, error) {
		return nil, errors.New("failed to read config file")
	}

	err := Prepare(context.Background(), "missing.yaml", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestPrepare_CollaboratorFailure(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	newCollaborators = func(*config.Config) (provisioning.Collaborators, error) {
		return provisioning.Collaborators{}, errors.New("failed to connect to docker")
	}

	err := Prepare(context.Background(), "", "1.29.2", "docker")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to docker")
}

func TestPrepare_StepFailureSurfaces(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	newCollaborators = func(*config.Config) (provisioning.Collaborators, error) {
		host, _, _, _, _, ep, _ := provisioning.MockCollaborators()
		ep.PresentFunc = func(context.Context, string) (bool, error) {
			return false, nil
		}
		return host, nil
	}
	newHostEnvironment = tempHostEnvironment(t)

	err := Prepare(context.Background(), "", "1.29.2", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime-check step failed")
	assert.Contains(t, err.Error(), "containerd is not running")
}

func TestResolveConfig_Defaults(t *testing.T) {
	saveAndRestorePrepareFactories(t)

	cfg, err := resolveConfig("", "1.29.2", "")
	require.NoError(t, err)

	assert.Equal(t, "v1.29.2", cfg.KubernetesVersion)
	assert.Equal(t, config.RuntimeContainerd, cfg.Runtime)
	assert.Equal(t, config.DefaultInstallDir, cfg.InstallDir)
}
