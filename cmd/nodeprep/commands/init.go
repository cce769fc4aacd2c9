package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nodeprep/cmd/nodeprep/handlers"
)

// Init returns the command for interactively creating a node configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "nodeprep.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a node preparation configuration",
		Long: `Interactively create a node preparation configuration file.

This command asks for the Kubernetes version, the container runtime, and
the install directory, and writes the result as YAML. Pass the file to
'nodeprep prepare -c'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "nodeprep.yaml", "Output file path")

	return cmd
}
