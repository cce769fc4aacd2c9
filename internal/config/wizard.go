package config

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the answers collected by the interactive wizard.
type WizardResult struct {
	KubernetesVersion string
	Runtime           RuntimeSelection
	InstallDir        string
}

// versionPattern accepts release versions with or without the leading marker.
var versionPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+`)

// RunWizard collects a node preparation configuration interactively.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Runtime:    RuntimeContainerd,
		InstallDir: DefaultInstallDir,
	}

	// Build the form
	form := huh.NewForm(
		// Kubernetes release
		huh.NewGroup(
			huh.NewInput().
				Title("Kubernetes version").
				Description("The release whose node binaries will be installed").
				Placeholder("1.29.2").
				Value(&result.KubernetesVersion).
				Validate(validateVersion),
		),

		// Runtime selection
		huh.NewGroup(
			huh.NewSelect[RuntimeSelection]().
				Title("Container runtime").
				Description("Must already be installed and running on this machine").
				Options(
					huh.NewOption("containerd (recommended)", RuntimeContainerd),
					huh.NewOption("Docker Engine", RuntimeDocker),
				).
				Value(&result.Runtime),
		),

		// Install directory
		huh.NewGroup(
			huh.NewInput().
				Title("Install directory").
				Description("Receives kubeadm, kubelet, kube-proxy and the startup script").
				Value(&result.InstallDir).
				Validate(validateInstallDir),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	result.KubernetesVersion = NormalizeVersion(result.KubernetesVersion)
	return result, nil
}

// ToConfig converts the wizard answers into a full configuration.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		KubernetesVersion: NormalizeVersion(r.KubernetesVersion),
		Runtime:           r.Runtime,
		InstallDir:        r.InstallDir,
	}
	cfg.ApplyDefaults()
	return cfg
}

func validateVersion(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("version is required")
	}
	if !versionPattern.MatchString(s) {
		return fmt.Errorf("expected a release version like 1.29.2")
	}
	return nil
}

func validateInstallDir(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("install directory is required")
	}
	return nil
}
