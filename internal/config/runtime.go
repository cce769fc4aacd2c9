package config

import "fmt"

// RuntimeSelection identifies the container runtime the node is prepared for.
// It is immutable for the duration of a run and determines which control
// endpoint is probed, which network-creation mechanism is used, and which
// service the kubelet service depends on.
type RuntimeSelection string

const (
	// RuntimeContainerd is the default runtime.
	RuntimeContainerd RuntimeSelection = "containerd"
	// RuntimeDocker selects Docker Engine (Mirantis Container Runtime).
	RuntimeDocker RuntimeSelection = "docker"
)

// ParseRuntime validates and converts a user-supplied runtime name.
func ParseRuntime(name string) (RuntimeSelection, error) {
	switch RuntimeSelection(name) {
	case RuntimeContainerd, RuntimeDocker:
		return RuntimeSelection(name), nil
	default:
		return "", fmt.Errorf("unsupported container runtime %q (expected %q or %q)",
			name, RuntimeContainerd, RuntimeDocker)
	}
}

// String implements fmt.Stringer.
func (r RuntimeSelection) String() string { return string(r) }

// Valid reports whether the selection is one of the supported runtimes.
func (r RuntimeSelection) Valid() bool {
	return r == RuntimeContainerd || r == RuntimeDocker
}

// ControlPipe returns the named pipe the runtime exposes when it is running.
func (r RuntimeSelection) ControlPipe() string {
	if r == RuntimeDocker {
		return DockerPipe
	}
	return ContainerdPipe
}

// ServiceName returns the Windows service name of the runtime. The kubelet
// service declares a start-order dependency on it.
func (r RuntimeSelection) ServiceName() string {
	if r == RuntimeDocker {
		return "docker"
	}
	return "containerd"
}

// CRIEndpoint returns the kubelet --container-runtime-endpoint value, or the
// empty string when the runtime does not take one (Docker's legacy shim).
func (r RuntimeSelection) CRIEndpoint() string {
	if r == RuntimeDocker {
		return ""
	}
	return "npipe:////./pipe/containerd-containerd"
}
