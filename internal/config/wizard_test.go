package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "bare version", input: "1.29.2"},
		{name: "marked version", input: "v1.29.2"},
		{name: "with whitespace", input: " 1.29.2 "},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "not a version", input: "latest", wantErr: true},
		{name: "major minor only", input: "1.29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInstallDir(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateInstallDir(`C:\k`))
	assert.Error(t, validateInstallDir(""))
	assert.Error(t, validateInstallDir("  "))
}

func TestWizardResult_ToConfig(t *testing.T) {
	t.Parallel()

	result := &WizardResult{
		KubernetesVersion: "1.29.2",
		Runtime:           RuntimeDocker,
		InstallDir:        `D:\kube`,
	}

	cfg := result.ToConfig()

	assert.Equal(t, "v1.29.2", cfg.KubernetesVersion, "version is normalized")
	assert.Equal(t, RuntimeDocker, cfg.Runtime)
	assert.Equal(t, `D:\kube`, cfg.InstallDir)
	assert.Equal(t, DefaultPauseImage, cfg.PauseImage, "remaining fields get defaults")
	assert.Equal(t, DefaultWinsVersion, cfg.WinsVersion)

	require.NoError(t, cfg.Validate())
}
