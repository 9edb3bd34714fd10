// Package autogen provides the version information for the module.
package autogen

// Version is the current version of the module.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
