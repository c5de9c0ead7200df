package environment

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	// wslPathHelper is the path-translation binary WSL installs into every
	// distribution.
	wslPathHelper = "/bin/wslpath"

	// appDirName is the directory the desktop application keeps its state
	// under, on both sides of the WSL boundary.
	appDirName = "rudder-desktop"
)

// IsWSLDistro reports whether the process runs inside a WSL distribution.
// WSL installs wslpath as a symlink; a regular file at the same path is some
// unrelated tool, so both conditions are required.
func (p *Prober) IsWSLDistro() bool {
	fi, err := p.Lstat(wslPathHelper)
	if err != nil {
		return false
	}
	return fi.Mode()&fs.ModeSymlink != 0
}

// TranslatePath converts a Windows path to its view inside the current WSL
// distribution.
func (p *Prober) TranslatePath(windowsPath string) (string, error) {
	out, err := p.Run(wslPathHelper, windowsPath)
	if err != nil {
		return "", fmt.Errorf("failed to translate %q: %w", windowsPath, err)
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

// WSLConfigDir returns the Linux view of the application's per-user Windows
// config directory, i.e. the translated %APPDATA% with the application
// subdirectory appended.
func (p *Prober) WSLConfigDir() (string, error) {
	appData, err := p.windowsAppData()
	if err != nil {
		return "", err
	}
	translated, err := p.TranslatePath(appData)
	if err != nil {
		return "", err
	}
	return filepath.Join(translated, appDirName), nil
}

// windowsAppData asks the Windows side for %APPDATA%. The code page is
// switched to UTF-8 first so non-ASCII user names survive the round trip.
func (p *Prober) windowsAppData() (string, error) {
	out, err := p.Run("cmd.exe", "/c", "chcp 65001 >nul & echo %APPDATA%")
	if err != nil {
		return "", fmt.Errorf("failed to query %%APPDATA%%: %w", err)
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}
