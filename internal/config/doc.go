// Package config defines the node preparation configuration: the Kubernetes
// release to install, the container runtime selection, filesystem locations,
// and download endpoints. Configuration is resolved once at entry (flags plus
// an optional YAML file) and is immutable for the duration of a run.
package config
