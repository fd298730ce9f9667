package environment

import "strings"

// Environment names the deployment stage the decoder runs in.
type Environment string

const (
	// Development enables verbose, human-readable defaults.
	Development Environment = "development"
	// Staging mirrors production defaults.
	Staging Environment = "staging"
	// Production uses structured, quieter defaults.
	Production Environment = "production"
)

// Parse normalizes an environment name, accepting the short aliases
// "dev", "stage" and "prod". Unknown or empty names map to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
