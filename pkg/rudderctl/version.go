// Package rudderctl exposes build-time metadata shared by the CLI commands.
package rudderctl

// Version is the rudderctl version. Release builds override it with
// -ldflags "-X github.com/rudder-desktop/rudderctl/pkg/rudderctl.Version=...".
var Version = "0.1.0-dev"
