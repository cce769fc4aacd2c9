package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := New()

	assert.Equal(t, RuntimeContainerd, cfg.Runtime)
	assert.Equal(t, DefaultInstallDir, cfg.InstallDir)
	assert.Equal(t, DefaultPauseImage, cfg.PauseImage)
	assert.Equal(t, DefaultWinsVersion, cfg.WinsVersion)
	assert.Equal(t, DefaultDownloadBase, cfg.DownloadBase)
	assert.Equal(t, DefaultWinsDownloadBase, cfg.WinsDownloadBase)
	assert.Empty(t, cfg.KubernetesVersion, "version has no default")
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Runtime:    RuntimeDocker,
		InstallDir: `D:\kube`,
	}
	cfg.ApplyDefaults()

	assert.Equal(t, RuntimeDocker, cfg.Runtime)
	assert.Equal(t, `D:\kube`, cfg.InstallDir)
	assert.Equal(t, DefaultPauseImage, cfg.PauseImage)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.KubernetesVersion = "" },
			wantErr: "kubernetes version is required",
		},
		{
			name:    "unnormalized version",
			mutate:  func(c *Config) { c.KubernetesVersion = "1.29.2" },
			wantErr: "not normalized",
		},
		{
			name:    "unsupported runtime",
			mutate:  func(c *Config) { c.Runtime = "cri-o" },
			wantErr: "unsupported container runtime",
		},
		{
			name:    "empty install dir",
			mutate:  func(c *Config) { c.InstallDir = "" },
			wantErr: "install directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := New()
			cfg.KubernetesVersion = "v1.29.2"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.KubernetesVersion = "1.29.2"
	cfg.WinsVersion = "0.4.20"
	cfg.Normalize()

	assert.Equal(t, "v1.29.2", cfg.KubernetesVersion)
	assert.Equal(t, "v0.4.20", cfg.WinsVersion)
}

func TestBinaryURL(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.KubernetesVersion = "v1.29.2"

	assert.Equal(t,
		"https://dl.k8s.io/v1.29.2/bin/windows/amd64/kubelet.exe",
		cfg.BinaryURL("kubelet.exe"))
}

func TestBinaryURL_CustomBase(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.KubernetesVersion = "v1.30.1"
	cfg.DownloadBase = "https://mirror.example.com/kubernetes"

	assert.Equal(t,
		"https://mirror.example.com/kubernetes/v1.30.1/bin/windows/amd64/kubeadm.exe",
		cfg.BinaryURL("kubeadm.exe"))
}

func TestWinsURL(t *testing.T) {
	t.Parallel()

	cfg := New()

	assert.Equal(t,
		"https://github.com/rancher/wins/releases/download/v0.4.20/wins.exe",
		cfg.WinsURL())
}

func TestParseRuntime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected RuntimeSelection
		wantErr  bool
	}{
		{name: "containerd", input: "containerd", expected: RuntimeContainerd},
		{name: "docker", input: "docker", expected: RuntimeDocker},
		{name: "unknown", input: "cri-o", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Docker", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRuntime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRuntimeSelection_ControlPipe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ContainerdPipe, RuntimeContainerd.ControlPipe())
	assert.Equal(t, DockerPipe, RuntimeDocker.ControlPipe())
}

func TestRuntimeSelection_ServiceName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "containerd", RuntimeContainerd.ServiceName())
	assert.Equal(t, "docker", RuntimeDocker.ServiceName())
}

func TestRuntimeSelection_CRIEndpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "npipe:////./pipe/containerd-containerd", RuntimeContainerd.CRIEndpoint())
	assert.Empty(t, RuntimeDocker.CRIEndpoint(), "docker uses the built-in shim")
}
