// Package version exposes the build-time version string, injected via
// -ldflags by the magefile the way the teacher repo injects its own.
package version

// version is set at build time with:
//
//	-X github.com/trueflow-dev/trueflow/internal/version.version=<tag>
var version = "v0.0.0-dev"

// Value returns the running binary's version.
func Value() string {
	return version
}
