package config

import (
	"fmt"
	"strings"
)

// Config holds everything a preparation run needs to know. Values are
// resolved from flags and an optional YAML file, defaulted, normalized, and
// validated before any provisioning step runs.
type Config struct {
	// KubernetesVersion is the release whose node binaries are fetched.
	// Always normalized to carry the leading "v" marker.
	KubernetesVersion string `yaml:"kubernetesVersion" mapstructure:"kubernetesVersion"`

	// Runtime selects the container runtime family.
	Runtime RuntimeSelection `yaml:"cri" mapstructure:"cri"`

	// InstallDir receives the downloaded binaries and the startup script.
	InstallDir string `yaml:"installDir" mapstructure:"installDir"`

	// PauseImage is passed to the kubelet as the pod sandbox image.
	PauseImage string `yaml:"pauseImage" mapstructure:"pauseImage"`

	// WinsVersion is the pinned wins agent release to install.
	WinsVersion string `yaml:"winsVersion" mapstructure:"winsVersion"`

	// DownloadBase overrides the Kubernetes release endpoint (tests, mirrors).
	DownloadBase string `yaml:"downloadBase" mapstructure:"downloadBase"`

	// WinsDownloadBase overrides the wins release endpoint.
	WinsDownloadBase string `yaml:"winsDownloadBase" mapstructure:"winsDownloadBase"`
}

// New returns a Config with all defaults applied and no version set.
func New() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their defaults. The Kubernetes
// version has no default; it must be supplied by the operator.
func (c *Config) ApplyDefaults() {
	if c.Runtime == "" {
		c.Runtime = RuntimeContainerd
	}
	if c.InstallDir == "" {
		c.InstallDir = DefaultInstallDir
	}
	if c.PauseImage == "" {
		c.PauseImage = DefaultPauseImage
	}
	if c.WinsVersion == "" {
		c.WinsVersion = DefaultWinsVersion
	}
	if c.DownloadBase == "" {
		c.DownloadBase = DefaultDownloadBase
	}
	if c.WinsDownloadBase == "" {
		c.WinsDownloadBase = DefaultWinsDownloadBase
	}
}

// Normalize applies the one-time input normalizations (version marker).
func (c *Config) Normalize() {
	c.KubernetesVersion = NormalizeVersion(c.KubernetesVersion)
	c.WinsVersion = NormalizeVersion(c.WinsVersion)
}

// Validate checks the configuration before a run starts.
func (c *Config) Validate() error {
	if c.KubernetesVersion == "" {
		return fmt.Errorf("kubernetes version is required (set --kubernetes-version or kubernetesVersion in the config file)")
	}
	if !strings.HasPrefix(c.KubernetesVersion, "v") {
		return fmt.Errorf("kubernetes version %q is not normalized", c.KubernetesVersion)
	}
	if !c.Runtime.Valid() {
		return fmt.Errorf("unsupported container runtime %q (expected %q or %q)",
			c.Runtime, RuntimeContainerd, RuntimeDocker)
	}
	if c.InstallDir == "" {
		return fmt.Errorf("install directory must not be empty")
	}
	return nil
}

// BinaryURL returns the download URL for a named node binary, constructed
// from the normalized version and the release path template.
func (c *Config) BinaryURL(name string) string {
	return fmt.Sprintf("%s/%s/bin/windows/amd64/%s", c.DownloadBase, c.KubernetesVersion, name)
}

// WinsURL returns the download URL of the pinned wins agent executable.
func (c *Config) WinsURL() string {
	return fmt.Sprintf("%s/%s/wins.exe", c.WinsDownloadBase, c.WinsVersion)
}
