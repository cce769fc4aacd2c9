// Package pipe probes for the named pipes container runtimes expose while
// running. The probe is the precondition gate for the whole preparation run.
package pipe

import "time"

// Checker probes named pipes with a bounded dial timeout.
type Checker struct {
	dialTimeout time.Duration
}

// NewChecker creates a pipe checker. The timeout bounds a single probe.
func NewChecker(dialTimeout time.Duration) *Checker {
	return &Checker{dialTimeout: dialTimeout}
}
