package common

const (
	major = 0
	minor = 1
	patch = 0

	// Version is the version of all contracts in this repository, it's
	// returned by their `version` methods.
	Version = major*1_000_000 + minor*1_000 + patch
)
