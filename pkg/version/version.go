// Package version exposes the build version of the tradesense binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/tarigelamin1997/tradesense-sub009/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
