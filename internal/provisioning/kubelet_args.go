package provisioning

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/imamik/nodeprep/internal/config"
)

// KubeletCommand is the typed input for rendering the kubelet invocation.
// Rendering is a pure function of this struct; no string-splice templating.
type KubeletCommand struct {
	Runtime    config.RuntimeSelection
	Env        HostEnvironment
	PauseImage string
}

// Args returns the fully-formed kubelet argument list.
func (c KubeletCommand) Args() []string {
	args := []string{
		"--cert-dir=" + filepath.Join(c.Env.KubeletRoot, "pki"),
		"--config=" + filepath.Join(c.Env.KubeletRoot, "config.yaml"),
		"--bootstrap-kubeconfig=" + filepath.Join(c.Env.KubernetesDir, "bootstrap-kubelet.conf"),
		"--kubeconfig=" + filepath.Join(c.Env.KubernetesDir, "kubelet.conf"),
		"--log-dir=" + c.Env.LogDir,
		"--pod-infra-container-image=" + c.PauseImage,
		"--enable-debugging-handlers",
		"--cgroups-per-qos=false",
		`--enforce-node-allocatable=""`,
		`--resolv-conf=""`,
	}
	if endpoint := c.Runtime.CRIEndpoint(); endpoint != "" {
		args = append(args, "--container-runtime-endpoint="+endpoint)
	}
	return args
}

// Script renders the PowerShell startup script that the kubelet service
// executes. The argument list comes from Args verbatim.
func (c KubeletCommand) Script() string {
	var b strings.Builder
	b.WriteString("$ErrorActionPreference = 'Stop'\n")
	b.WriteString("$global:KubeletArgs = @(\n")
	for _, arg := range c.Args() {
		fmt.Fprintf(&b, "    '%s'\n", arg)
	}
	b.WriteString(")\n")
	fmt.Fprintf(&b, "& '%s' $global:KubeletArgs\n", c.Env.BinaryPath("kubelet.exe"))
	return b.String()
}
