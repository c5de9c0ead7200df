// Package paths computes the canonical directories Rudder Desktop uses on
// each supported platform: configuration, caches, logs, bundled resources,
// and the install-time integration locations. The authoritative source is the
// desktop application itself (`rudder-desktop paths`); everything it does not
// report is derived from the platform's directory conventions.
package paths

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
)

// Platform identifies one of the supported operating systems. The identifiers
// match what the desktop application reports, so Windows is "win32" rather
// than the Go runtime's "windows".
type Platform string

const (
	PlatformDarwin Platform = "darwin"
	PlatformLinux  Platform = "linux"
	PlatformWin32  Platform = "win32"
)

// ErrUnsupportedPlatform is returned for any platform identifier outside the
// supported set. There is no fallback behavior for unknown platforms.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrNotAvailable is returned when a caller asks for a path that does not
// exist on the active platform variant.
var ErrNotAvailable = errors.New("path not available on this platform")

// CurrentPlatform maps the running OS onto a Platform identifier.
func CurrentPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWin32
	}
	return Platform(runtime.GOOS)
}

// UnixPaths holds the directories that only exist on macOS and Linux.
type UnixPaths struct {
	// Integration is where CLI symlinks (docker, kubectl, ...) are placed.
	Integration string
	// DeploymentProfileSystem and DeploymentProfileUser are where admin- and
	// user-level deployment profiles are read from.
	DeploymentProfileSystem string
	DeploymentProfileUser   string
}

// WindowsPaths holds the directories that only exist on Windows, where the
// container engine lives inside dedicated WSL distributions.
type WindowsPaths struct {
	WSLDistro     string
	WSLDistroData string
}

// PathSet is the full set of directories for one platform. Exactly one of the
// two variants is populated; asking for the other variant's fields is an
// error, never an empty string.
type PathSet struct {
	AppHome       string
	AltAppHome    string
	Config        string
	Logs          string
	Cache         string
	Resources     string
	ExtensionRoot string

	platform Platform
	unix     *UnixPaths
	windows  *WindowsPaths
}

// Platform returns the identifier this PathSet was resolved for.
func (s *PathSet) Platform() Platform { return s.platform }

// Unix returns the macOS/Linux-only paths, or ErrNotAvailable on the Windows
// variant.
func (s *PathSet) Unix() (*UnixPaths, error) {
	if s.unix == nil {
		return nil, fmt.Errorf("%w: unix integration paths on %s", ErrNotAvailable, s.platform)
	}
	return s.unix, nil
}

// Windows returns the Windows-only paths, or ErrNotAvailable on the Unix
// variant.
func (s *PathSet) Windows() (*WindowsPaths, error) {
	if s.windows == nil {
		return nil, fmt.Errorf("%w: WSL distro paths on %s", ErrNotAvailable, s.platform)
	}
	return s.windows, nil
}

// MarshalJSON emits the common fields plus whichever variant is active, in
// the same shape the path-discovery helper prints.
func (s *PathSet) MarshalJSON() ([]byte, error) {
	out := helperPaths{
		AppHome:       s.AppHome,
		AltAppHome:    s.AltAppHome,
		Config:        s.Config,
		Logs:          s.Logs,
		Cache:         s.Cache,
		Resources:     s.Resources,
		ExtensionRoot: s.ExtensionRoot,
	}
	if s.unix != nil {
		out.Integration = s.unix.Integration
		out.DeploymentProfileSystem = s.unix.DeploymentProfileSystem
		out.DeploymentProfileUser = s.unix.DeploymentProfileUser
	}
	if s.windows != nil {
		out.WSLDistro = s.windows.WSLDistro
		out.WSLDistroData = s.windows.WSLDistroData
	}
	return json.Marshal(out)
}
