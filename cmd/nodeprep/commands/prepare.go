package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nodeprep/cmd/nodeprep/handlers"
)

// Prepare returns the command that runs the full node preparation.
//
// Required input (flag or config file):
//
//	--kubernetes-version: the release whose node binaries are installed
//
// Optional flags:
//
//	--cri: container runtime, containerd (default) or docker
//	--config, -c: path to a nodeprep YAML file (see 'nodeprep init')
func Prepare() *cobra.Command {
	var (
		configPath        string
		kubernetesVersion string
		criName           string
	)

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Prepare this machine as a Kubernetes worker node",
		Long: `Prepare this machine as a Kubernetes worker node.

The selected container runtime must already be installed and running. The
command then downloads kubeadm, kubelet and kube-proxy for the requested
release, installs the wins agent, ensures the host NAT network exists, and
registers the kubelet as a boot-time service that starts after the runtime.

Re-running is safe: already-provisioned resources are detected and skipped.

Examples:
  # Prepare for Kubernetes 1.29.2 on containerd
  nodeprep prepare --kubernetes-version 1.29.2

  # Prepare a Docker Engine node
  nodeprep prepare --kubernetes-version 1.29.2 --cri docker

  # Use a config file created with 'nodeprep init'
  nodeprep prepare -c nodeprep.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Prepare(cmd.Context(), configPath, kubernetesVersion, criName)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&kubernetesVersion, "kubernetes-version", "", "Kubernetes release to install (e.g. 1.29.2)")
	cmd.Flags().StringVar(&criName, "cri", "", "Container runtime: containerd or docker (default containerd)")

	return cmd
}
