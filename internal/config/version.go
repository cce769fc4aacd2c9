package config

import "strings"

// NormalizeVersion ensures a Kubernetes version string carries the leading
// "v" release marker. The transform is idempotent: inputs that already carry
// the marker are returned unchanged. Empty input stays empty so that required
// validation can report it.
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
