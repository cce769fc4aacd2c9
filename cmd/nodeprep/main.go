// Package main is the entry point for the nodeprep CLI.
//
// nodeprep prepares a Windows machine to join a Kubernetes cluster as a
// worker node: it downloads the node binaries, installs the wins agent,
// ensures a host-mode NAT network for the selected container runtime, and
// registers the kubelet as a boot-time service that starts after the
// runtime. Running kubeadm join afterwards is the operator's job.
//
// Commands: prepare, init, version, completion.
//
// For detailed usage information, run:
//
//	nodeprep --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/nodeprep/cmd/nodeprep/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
