// Package version provides version information and build metadata for dhelpers.
//
// Version details come from compile-time variables (Version, Commit, Date)
// set via -ldflags, falling back to the module and VCS data the Go toolchain
// records in the binary, and finally to development defaults:
//
//	-ldflags "-X github.com/dendrascience/dendra-helpers/version.Version=v1.0.0 -X github.com/dendrascience/dendra-helpers/version.Commit=abc1234"
package version
