//go:build !windows

package hostpath

import (
	"fmt"
	"runtime"
)

// PersistMachinePath is unavailable off Windows.
func (p *Persister) PersistMachinePath(string) error {
	return fmt.Errorf("machine PATH persistence is not supported on %s", runtime.GOOS)
}
