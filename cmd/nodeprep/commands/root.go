// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the nodeprep CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodeprep",
		Short: "Prepare Windows machines to join a Kubernetes cluster as worker nodes",
	}

	cmd.AddCommand(Prepare())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
