package provisioning

import "path/filepath"

// HostEnvironment is the explicit filesystem layout a run produces. It is
// threaded through the pipeline instead of mutating ambient global state;
// the machine-wide PATH update is one explicit, logged call.
type HostEnvironment struct {
	// InstallDir holds the downloaded binaries and the startup script.
	InstallDir string

	// LogDir receives kubelet logs.
	LogDir string

	// KubernetesDir is the canonical configuration tree (credentials, PKI).
	KubernetesDir string

	// PKIDir holds the node certificates under KubernetesDir.
	PKIDir string

	// KubeletRoot is the kubelet state directory.
	KubeletRoot string
}

// NewHostEnvironment returns the standard layout rooted at the OS locations
// the rest of the cluster tooling expects, with a configurable install dir.
func NewHostEnvironment(installDir string) HostEnvironment {
	return HostEnvironment{
		InstallDir:    installDir,
		LogDir:        `C:\var\log\kubelet`,
		KubernetesDir: `C:\etc\kubernetes`,
		PKIDir:        `C:\etc\kubernetes\pki`,
		KubeletRoot:   `C:\var\lib\kubelet`,
	}
}

// ConfigMirror is the symbolic link joining the kubelet state tree to the
// canonical Kubernetes configuration tree.
func (e HostEnvironment) ConfigMirror() string {
	return filepath.Join(e.KubeletRoot, "etc", "kubernetes")
}

// BinaryPath returns the install path of a named executable.
func (e HostEnvironment) BinaryPath(name string) string {
	return filepath.Join(e.InstallDir, name)
}

// StartupScriptPath is the generated kubelet startup script location.
func (e HostEnvironment) StartupScriptPath() string {
	return filepath.Join(e.InstallDir, "StartKubelet.ps1")
}

// Directories lists every directory the paths step must create.
func (e HostEnvironment) Directories() []string {
	return []string{
		e.InstallDir,
		e.LogDir,
		e.PKIDir,
		filepath.Dir(e.ConfigMirror()),
	}
}
