// Package buildinfo holds version metadata injected at build time.
package buildinfo

// Set via -ldflags at release build; defaults cover local builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
