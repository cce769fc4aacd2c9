// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/nodeprep/internal/config"
	"github.com/imamik/nodeprep/internal/fetch"
	"github.com/imamik/nodeprep/internal/platform/dockernet"
	"github.com/imamik/nodeprep/internal/platform/firewall"
	"github.com/imamik/nodeprep/internal/platform/hns"
	"github.com/imamik/nodeprep/internal/platform/hostpath"
	"github.com/imamik/nodeprep/internal/platform/pipe"
	"github.com/imamik/nodeprep/internal/platform/winsvc"
	"github.com/imamik/nodeprep/internal/provisioning"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newCollaborators builds the real host collaborators for the run.
	newCollaborators = defaultCollaborators

	// newHostEnvironment derives the filesystem layout from the install dir.
	newHostEnvironment = provisioning.NewHostEnvironment

	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile
)

// Prepare runs the full node preparation for the resolved configuration.
//
// The flow is strictly sequential with early abort: probe the container
// runtime, lay out directories and PATH, ensure the host NAT network,
// install and start the wins agent, fetch the node binaries, register the
// kubelet service with a dependency on the runtime service, and open the
// kubelet firewall port. Nothing is rolled back on failure; re-running
// skips everything already in place.
func Prepare(ctx context.Context, configPath, kubernetesVersion, criName string) error {
	cfg, err := resolveConfig(configPath, kubernetesVersion, criName)
	if err != nil {
		return err
	}

	host, err := newCollaborators(cfg)
	if err != nil {
		return err
	}

	env := newHostEnvironment(cfg.InstallDir)
	pCtx := provisioning.NewContext(ctx, cfg, env, host)

	pCtx.Observer.Printf("Preparing node for Kubernetes %s (%s runtime)", cfg.KubernetesVersion, cfg.Runtime)

	if err := provisioning.RunSteps(pCtx, provisioning.DefaultSteps()); err != nil {
		return err
	}

	printPrepareSuccess(cfg, env, pCtx.State)
	return nil
}

// resolveConfig merges the optional config file with flag overrides,
// normalizes the version once, and validates the result.
func resolveConfig(configPath, kubernetesVersion, criName string) (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.New()
	}

	if kubernetesVersion != "" {
		cfg.KubernetesVersion = kubernetesVersion
	}
	if criName != "" {
		runtime, err := config.ParseRuntime(criName)
		if err != nil {
			return nil, err
		}
		cfg.Runtime = runtime
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultCollaborators wires the real platform implementations. The network
// manager is runtime-specific: HNS for containerd, the Docker Engine API for
// Docker nodes.
func defaultCollaborators(cfg *config.Config) (provisioning.Collaborators, error) {
	timeouts := config.LoadTimeouts()

	var network provisioning.NetworkManager
	if cfg.Runtime == config.RuntimeDocker {
		manager, err := dockernet.New()
		if err != nil {
			return provisioning.Collaborators{}, fmt.Errorf("failed to connect to docker: %w", err)
		}
		network = manager
	} else {
		network = hns.New()
	}

	return provisioning.Collaborators{
		Downloader: fetch.NewClient(timeouts.Download),
		Services:   winsvc.New(timeouts),
		Network:    network,
		Firewall:   firewall.New(),
		Endpoint:   pipe.NewChecker(timeouts.PipeDial),
		Paths:      hostpath.New(),
	}, nil
}
