//go:build !windows

package pipe

import (
	"context"
	"fmt"
	"runtime"
)

// Present is unavailable off Windows; node preparation targets Windows hosts.
func (c *Checker) Present(context.Context, string) (bool, error) {
	return false, fmt.Errorf("named pipe probing is not supported on %s", runtime.GOOS)
}
