// Package environment probes the host the CLI is running on: whether it was
// launched from a source checkout ("development mode") and whether it runs
// inside a WSL distribution that needs path translation to reach the Windows
// side of the filesystem.
package environment

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	// EnvDevelopment forces development mode when set to "development",
	// bypassing the executable-location walk entirely.
	EnvDevelopment = "RUDDER_ENV"

	// buildOutputDir is the directory name the packaging step writes the
	// application into. An ancestor with this name means a packaged build.
	buildOutputDir = "dist"
)

// Prober answers questions about the host environment. Answers cannot change
// within a process, so they are computed once and cached; a long-lived host
// such as a test runner should construct a fresh Prober per scenario instead
// of reusing the package-level one.
type Prober struct {
	LookupEnv    func(string) (string, bool)
	Executable   func() (string, error)
	EvalSymlinks func(string) (string, error)
	ReadDir      func(string) ([]os.DirEntry, error)
	Lstat        func(string) (fs.FileInfo, error)
	Run          CommandRunner

	devOnce sync.Once
	devMode bool
	devErr  error
}

// NewProber returns a Prober backed by the real process environment.
func NewProber() *Prober {
	return &Prober{
		LookupEnv:    os.LookupEnv,
		Executable:   os.Executable,
		EvalSymlinks: filepath.EvalSymlinks,
		ReadDir:      os.ReadDir,
		Lstat:        os.Lstat,
		Run:          runCommand,
	}
}

// defaultProber serves the package-level accessors.
var defaultProber = NewProber()

// DevMode reports whether the CLI is running from a source checkout rather
// than an installed build. See Prober.DevMode.
func DevMode() (bool, error) { return defaultProber.DevMode() }

// IsWSLDistro reports whether the process runs inside a WSL distribution.
func IsWSLDistro() bool { return defaultProber.IsWSLDistro() }

// WSLConfigDir returns the Linux view of the application's Windows config
// directory. See Prober.WSLConfigDir.
func WSLConfigDir() (string, error) { return defaultProber.WSLConfigDir() }

// DevMode reports whether the CLI is running from a source checkout rather
// than an installed build. The RUDDER_ENV=development marker is authoritative
// and short-circuits every other check. Otherwise the symlink-resolved
// executable path is walked upward: an ancestor named "dist" means a packaged
// build, an ancestor containing a .git directory means a checkout, and
// reaching the filesystem root without either means an installed build.
func (p *Prober) DevMode() (bool, error) {
	p.devOnce.Do(func() {
		p.devMode, p.devErr = p.computeDevMode()
	})
	return p.devMode, p.devErr
}

func (p *Prober) computeDevMode() (bool, error) {
	if value, ok := p.LookupEnv(EnvDevelopment); ok && value == "development" {
		return true, nil
	}

	exe, err := p.Executable()
	if err != nil {
		return false, fmt.Errorf("failed to locate the running executable: %w", err)
	}
	resolved, err := p.EvalSymlinks(exe)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %q: %w", exe, err)
	}

	for dir := filepath.Dir(resolved); dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
		// The "dist" check comes first: a packaged build living inside a
		// checkout is still a packaged build.
		if filepath.Base(dir) == buildOutputDir {
			return false, nil
		}
		entries, err := p.ReadDir(dir)
		if err != nil {
			return false, fmt.Errorf("failed to read directory %q: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.Name() == ".git" && entry.IsDir() {
				return true, nil
			}
		}
	}
	return false, nil
}
