// Package retry provides exponential backoff retry logic for transient failures.
//
// The [WithExponentialBackoff] function retries an operation with configurable
// max attempts, initial delay, and maximum delay. It is used when waiting for
// a Windows service to reach the running state; artifact downloads are
// deliberately not retried.
package retry
