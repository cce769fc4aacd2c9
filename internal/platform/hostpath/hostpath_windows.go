//go:build windows

package hostpath

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const environmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// PersistMachinePath adds dir to the machine-wide PATH in the registry
// unless it is already listed. The change applies to processes started after
// the update (and to services after a reboot).
func (p *Persister) PersistMachinePath(dir string) error {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open machine environment key: %w", err)
	}
	defer func() { _ = key.Close() }()

	current, _, err := key.GetStringValue("Path")
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to read machine PATH: %w", err)
	}

	if containsPathEntry(current, dir) {
		return nil
	}

	if err := key.SetStringValue("Path", joinPath(current, dir)); err != nil {
		return fmt.Errorf("failed to persist machine PATH: %w", err)
	}
	return nil
}
