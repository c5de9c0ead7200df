package config

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/rudder-desktop/rudderctl/internal/environment"
	"github.com/rudder-desktop/rudderctl/internal/paths"
)

// DefaultSettingsPath returns the default rd-engine.json location: the
// application home for the current platform. Inside a WSL distribution the
// service runs on the Windows side, so the Windows application directory is
// used instead, seen through wslpath.
func DefaultSettingsPath() (string, error) {
	if runtime.GOOS == "linux" && environment.IsWSLDistro() {
		dir, err := environment.WSLConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get WSL config directory: %w", err)
		}
		return filepath.Join(dir, SettingsFileName), nil
	}
	set, err := paths.Resolve(paths.CurrentPlatform())
	if err != nil {
		return "", err
	}
	return filepath.Join(set.AppHome, SettingsFileName), nil
}
