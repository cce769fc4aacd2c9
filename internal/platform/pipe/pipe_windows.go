//go:build windows

package pipe

import (
	"context"
	"errors"
	"os"

	"github.com/Microsoft/go-winio"
)

// Present reports whether the named pipe exists by dialing it. A busy pipe
// (dial timeout) still counts as present: the runtime owns the pipe, it is
// just not accepting this connection right now.
func (c *Checker) Present(ctx context.Context, pipePath string) (bool, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	conn, err := winio.DialPipeContext(dialCtx, pipePath)
	if err == nil {
		_ = conn.Close()
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	if errors.Is(err, winio.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true, nil
	}
	return false, err
}
