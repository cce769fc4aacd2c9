//go:build windows

package winsvc

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/imamik/nodeprep/internal/util/retry"
)

// Exists reports whether a service with the given name is registered.
// A not-found open error counts as not installed.
func (m *Manager) Exists(name string) (bool, error) {
	scm, err := mgr.Connect()
	if err != nil {
		return false, fmt.Errorf("failed to connect to the service manager: %w", err)
	}
	defer func() { _ = scm.Disconnect() }()

	s, err := scm.OpenService(name)
	if err != nil {
		if errors.Is(err, windows.ERROR_SERVICE_DOES_NOT_EXIST) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up service %s: %w", name, err)
	}
	_ = s.Close()
	return true, nil
}

// Register installs a start-on-boot service. Dependencies constrain the
// service to start only after the named services have started.
func (m *Manager) Register(name, exePath string, args []string, displayName string, dependencies []string) error {
	scm, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to the service manager: %w", err)
	}
	defer func() { _ = scm.Disconnect() }()

	s, err := scm.CreateService(name, exePath, mgr.Config{
		DisplayName:  displayName,
		StartType:    mgr.StartAutomatic,
		Dependencies: dependencies,
	}, args...)
	if err != nil {
		return fmt.Errorf("failed to register service %s: %w", name, err)
	}
	_ = s.Close()
	return nil
}

// RegisterSelf runs a downloaded executable's own registration invocation.
func (m *Manager) RegisterSelf(ctx context.Context, exePath string, registerArgs []string) error {
	cmd := exec.CommandContext(ctx, exePath, registerArgs...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("self-registration %s %v failed: %w (output: %s)", exePath, registerArgs, err, out)
	}
	return nil
}

// Start starts a registered service and polls until it reports running.
func (m *Manager) Start(ctx context.Context, name string) error {
	scm, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to the service manager: %w", err)
	}
	defer func() { _ = scm.Disconnect() }()

	s, err := scm.OpenService(name)
	if err != nil {
		return fmt.Errorf("failed to open service %s: %w", name, err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Start(); err != nil && !errors.Is(err, windows.ERROR_SERVICE_ALREADY_RUNNING) {
		return fmt.Errorf("failed to start service %s: %w", name, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, m.startTimeout)
	defer cancel()

	return retry.WithExponentialBackoff(waitCtx, func() error {
		status, err := s.Query()
		if err != nil {
			return retry.Fatal(fmt.Errorf("failed to query service %s: %w", name, err))
		}
		switch status.State {
		case svc.Running:
			return nil
		case svc.Stopped:
			return retry.Fatal(fmt.Errorf("service %s stopped after start (exit code %d)", name, status.Win32ExitCode))
		default:
			return fmt.Errorf("service %s not running yet (state %d)", name, status.State)
		}
	},
		retry.WithMaxRetries(m.retryMaxAttempts),
		retry.WithInitialDelay(m.retryInitialDelay))
}
