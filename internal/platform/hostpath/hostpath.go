// Package hostpath updates the process search path, both for the current
// session and persisted machine-wide, so the installed binaries are
// resolvable by later tooling. Both updates are idempotent.
package hostpath

import (
	"os"
	"strings"
)

// Persister applies search-path updates.
type Persister struct{}

// New creates a path persister.
func New() *Persister {
	return &Persister{}
}

// AppendSessionPath adds dir to the current process PATH unless it is
// already listed.
func (p *Persister) AppendSessionPath(dir string) error {
	current := os.Getenv("PATH")
	if containsPathEntry(current, dir) {
		return nil
	}
	return os.Setenv("PATH", joinPath(current, dir))
}

// containsPathEntry reports whether a semicolon-separated PATH value already
// lists dir. Windows path comparison is case-insensitive.
func containsPathEntry(pathValue, dir string) bool {
	for _, entry := range strings.Split(pathValue, ";") {
		if strings.EqualFold(strings.TrimSpace(entry), dir) {
			return true
		}
	}
	return false
}

func joinPath(pathValue, dir string) string {
	if pathValue == "" {
		return dir
	}
	return strings.TrimRight(pathValue, ";") + ";" + dir
}
