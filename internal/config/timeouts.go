package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Download          time.Duration // Timeout for a single artifact download
	ServiceStart      time.Duration // Timeout for waiting for a service to reach running
	PipeDial          time.Duration // Timeout for probing a runtime control pipe
	RetryMaxAttempts  int           // Maximum number of retry attempts
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - NODEPREP_TIMEOUT_DOWNLOAD (default: 4m)
//   - NODEPREP_TIMEOUT_SERVICE_START (default: 90s)
//   - NODEPREP_TIMEOUT_PIPE_DIAL (default: 5s)
//   - NODEPREP_RETRY_MAX_ATTEMPTS (default: 5)
//   - NODEPREP_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Download:          parseDuration("NODEPREP_TIMEOUT_DOWNLOAD", 4*time.Minute),
		ServiceStart:      parseDuration("NODEPREP_TIMEOUT_SERVICE_START", 90*time.Second),
		PipeDial:          parseDuration("NODEPREP_TIMEOUT_PIPE_DIAL", 5*time.Second),
		RetryMaxAttempts:  parseInt("NODEPREP_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("NODEPREP_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
