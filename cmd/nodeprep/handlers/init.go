package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/nodeprep/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteYAML
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("nodeprep - Windows worker node preparation")
	fmt.Println("==========================================")
	fmt.Println()
	fmt.Println("This wizard creates a node configuration with sensible defaults.")
	fmt.Println("Just answer 3 simple questions.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Node Summary")
	fmt.Println("------------")
	fmt.Printf("  Kubernetes:  %s\n", cfg.KubernetesVersion)
	fmt.Printf("  Runtime:     %s\n", cfg.Runtime)
	fmt.Printf("  Install dir: %s\n", cfg.InstallDir)
	fmt.Printf("  Wins agent:  %s\n", cfg.WinsVersion)
	fmt.Println()

	fmt.Println("Next steps")
	fmt.Println("----------")
	fmt.Printf("  nodeprep prepare -c %s\n", outputPath)
	fmt.Println()
}
