// Package version provides build version information embedding for
// the automation platform binaries.
//
// Version, git commit and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/Garrettc123/ai-business-automation-tree/version.Version=1.0.0"
package version
