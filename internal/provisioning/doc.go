// Package provisioning implements the ordered, idempotent node preparation
// pipeline.
//
// A run is a strictly sequential list of steps: probe the container runtime,
// lay out directories and the search path, ensure the host NAT network,
// install and start the wins agent, fetch the node binaries, register the
// kubelet service with a start-order dependency on the runtime, and open the
// kubelet firewall port.
//
// Each step gates its work behind the [Ensure] presence check, so re-running
// the pipeline on an already-prepared machine performs no downloads, no
// service installs, and no network creates. The operating system is the only
// source of truth for "already done"; nothing is persisted between runs and
// nothing is rolled back on failure.
package provisioning
