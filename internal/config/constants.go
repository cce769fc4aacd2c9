package config

// Well-known names and locations used throughout the application.
const (
	// DefaultInstallDir is the directory holding the downloaded node binaries
	// and the generated kubelet startup script. It is added to the machine PATH.
	DefaultInstallDir = `C:\k`

	// KubeletPort is the kubelet API port opened in the Windows firewall.
	KubeletPort = 10250

	// HostNetworkName is the NAT network shared by pods that need host networking.
	// Both runtime branches converge on a single network with this name.
	HostNetworkName = "host"

	// KubeletServiceName is the Windows service wrapping the kubelet startup script.
	KubeletServiceName = "kubelet"

	// WinsServiceName is the service name the wins agent registers itself under.
	WinsServiceName = "rancher-wins"

	// FirewallRuleName is the inbound-allow rule for the kubelet API port.
	FirewallRuleName = "kubelet"

	// DefaultWinsVersion is the pinned wins agent release.
	DefaultWinsVersion = "v0.4.20"

	// DefaultDownloadBase serves the versioned Kubernetes node binaries.
	DefaultDownloadBase = "https://dl.k8s.io"

	// DefaultWinsDownloadBase serves the wins agent release artifacts.
	DefaultWinsDownloadBase = "https://github.com/rancher/wins/releases/download"

	// DefaultPauseImage is the pod sandbox image passed to the kubelet.
	DefaultPauseImage = "registry.k8s.io/pause:3.9"
)

// Named pipes exposed by the supported container runtimes. Their presence is
// the precondition for any provisioning work.
const (
	ContainerdPipe = `\\.\pipe\containerd-containerd`
	DockerPipe     = `\\.\pipe\docker_engine`
)
