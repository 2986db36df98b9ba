// Package version holds the version of the Heat CLI.
package version

// version is set at build time through:
//
//	go build -ldflags "-X github.com/openstack-go/heat-cli/pkg/cli/version.version=<version>"
var version = "SNAPSHOT"

// Version returns the version of the Heat CLI.
func Version() string {
	return version
}
