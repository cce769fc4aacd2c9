// Package fetch downloads remote release artifacts to local paths. A download
// either produces a complete file under the final name or nothing at all:
// the body is written to a temporary file in the destination directory and
// renamed into place only after a complete transfer.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client performs HTTP(S) downloads with a finite transfer timeout.
// Downloads are never retried automatically: the sources are versioned,
// immutable release artifacts, so re-running the preparation is the retry.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a download client. The timeout bounds the whole transfer,
// not only the connection attempt.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads url to destPath. It fails on connection errors, non-2xx
// responses, and truncated bodies, and never leaves a partial file visible
// under destPath.
func (c *Client) Fetch(ctx context.Context, destPath, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s to %s: %w", url, destPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to download %s to %s: unexpected status %s", url, destPath, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), "."+filepath.Base(destPath)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", destPath, err)
	}

	written, err := io.Copy(tmp, resp.Body)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to download %s to %s: %w", url, destPath, err)
	}
	if resp.ContentLength >= 0 && written != resp.ContentLength {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to download %s to %s: truncated transfer (%d of %d bytes)",
			url, destPath, written, resp.ContentLength)
	}

	// Downloaded artifacts are executables.
	if err := tmp.Chmod(0o755); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize %s: %w", destPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize %s: %w", destPath, err)
	}

	if err := os.Rename(tmp.Name(), destPath); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to move download into place at %s: %w", destPath, err)
	}

	return nil
}
