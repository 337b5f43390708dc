// Package env holds build-time metadata overridable via -ldflags, in the
// form cmd/main.go and cmd/cmd/root.go expect from it.
package env

// AppName is the program name used in the CLI's usage text.
const AppName = "vfat"

// Version, CommitHash and BuildTime are populated at build time, e.g.:
//
//	go build -ldflags "-X github.com/ostafen/vfat/internal/env.Version=1.2.3"
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
