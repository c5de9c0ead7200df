package paths

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/rudder-desktop/rudderctl/internal/environment"
)

const (
	// helperBinary is the desktop application; its `paths` subcommand prints
	// the authoritative JSON path description for the installation.
	helperBinary = "rudder-desktop"

	// appDirName is the directory name the application uses under each
	// platform's conventional locations.
	appDirName = "rudder-desktop"
)

// helperPaths mirrors the JSON object `rudder-desktop paths` prints. Fields
// the helper leaves empty keep their derived values.
type helperPaths struct {
	AppHome       string `json:"appHome"`
	AltAppHome    string `json:"altAppHome"`
	Config        string `json:"config"`
	Logs          string `json:"logs"`
	Cache         string `json:"cache"`
	Resources     string `json:"resources"`
	ExtensionRoot string `json:"extensionRoot"`

	Integration             string `json:"integration,omitempty"`
	DeploymentProfileSystem string `json:"deploymentProfileSystem,omitempty"`
	DeploymentProfileUser   string `json:"deploymentProfileUser,omitempty"`

	WSLDistro     string `json:"wslDistro,omitempty"`
	WSLDistroData string `json:"wslDistroData,omitempty"`
}

// Resolver computes PathSets. The function fields default to the real host
// environment; tests replace them to simulate any platform or helper outcome
// without touching the filesystem or spawning processes.
type Resolver struct {
	Run         environment.CommandRunner
	LookPath    func(string) (string, error)
	Getenv      func(string) string
	UserHomeDir func() (string, error)
	Getwd       func() (string, error)
}

// NewResolver returns a Resolver backed by the real host environment.
func NewResolver() *Resolver {
	return &Resolver{
		Run:         func(name string, args ...string) ([]byte, error) { return exec.Command(name, args...).Output() },
		LookPath:    exec.LookPath,
		Getenv:      os.Getenv,
		UserHomeDir: os.UserHomeDir,
		Getwd:       os.Getwd,
	}
}

var defaultResolver = NewResolver()

// Resolve returns the PathSet for the given platform using the process-wide
// Resolver.
func Resolve(platform Platform) (*PathSet, error) {
	return defaultResolver.Resolve(platform)
}

// Resolve derives the platform's conventional directories, then overlays
// whatever the path-discovery helper reports. A missing or broken helper is
// not an error: the CLI must work before the application is installed, so it
// degrades to a minimal working-directory layout.
func (r *Resolver) Resolve(platform Platform) (*PathSet, error) {
	set, err := r.derive(platform)
	if err != nil {
		return nil, err
	}
	r.overlay(set, r.discover())
	return set, nil
}

// discover runs the helper and parses its output, falling back to the
// working-directory layout on any failure.
func (r *Resolver) discover() helperPaths {
	helper, err := r.LookPath(helperBinary)
	if err != nil {
		logrus.Debugf("%s not found, using fallback paths", helperBinary)
		return r.fallback()
	}
	out, err := r.Run(helper, "paths")
	if err != nil {
		logrus.Debugf("%s paths failed (%v), using fallback paths", helperBinary, err)
		return r.fallback()
	}
	var discovered helperPaths
	if err := json.Unmarshal(out, &discovered); err != nil {
		logrus.Debugf("cannot parse %s paths output (%v), using fallback paths", helperBinary, err)
		return r.fallback()
	}
	return discovered
}

// fallback is the minimal set used when the helper is unavailable: bundled
// resources and logs relative to the working directory.
func (r *Resolver) fallback() helperPaths {
	cwd, err := r.Getwd()
	if err != nil {
		return helperPaths{}
	}
	return helperPaths{
		Resources: filepath.Join(cwd, "resources"),
		Logs:      filepath.Join(cwd, "logs"),
	}
}

// overlay applies non-empty discovered fields on top of the derived set.
func (r *Resolver) overlay(set *PathSet, discovered helperPaths) {
	apply := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	apply(&set.AppHome, discovered.AppHome)
	apply(&set.AltAppHome, discovered.AltAppHome)
	apply(&set.Config, discovered.Config)
	apply(&set.Logs, discovered.Logs)
	apply(&set.Cache, discovered.Cache)
	apply(&set.Resources, discovered.Resources)
	apply(&set.ExtensionRoot, discovered.ExtensionRoot)
	if set.unix != nil {
		apply(&set.unix.Integration, discovered.Integration)
		apply(&set.unix.DeploymentProfileSystem, discovered.DeploymentProfileSystem)
		apply(&set.unix.DeploymentProfileUser, discovered.DeploymentProfileUser)
	}
	if set.windows != nil {
		apply(&set.windows.WSLDistro, discovered.WSLDistro)
		apply(&set.windows.WSLDistroData, discovered.WSLDistroData)
	}
}

func (r *Resolver) derive(platform Platform) (*PathSet, error) {
	switch platform {
	case PlatformDarwin:
		return r.deriveDarwin()
	case PlatformLinux:
		return r.deriveLinux()
	case PlatformWin32:
		return r.deriveWindows()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, platform)
	}
}

func (r *Resolver) deriveDarwin() (*PathSet, error) {
	home, err := r.UserHomeDir()
	if err != nil {
		return nil, err
	}
	appHome := filepath.Join(home, "Library", "Application Support", appDirName)
	return &PathSet{
		AppHome:       appHome,
		AltAppHome:    filepath.Join(home, ".rd"),
		Config:        filepath.Join(home, "Library", "Preferences", appDirName),
		Logs:          filepath.Join(home, "Library", "Logs", appDirName),
		Cache:         filepath.Join(home, "Library", "Caches", appDirName),
		ExtensionRoot: filepath.Join(appHome, "extensions"),
		platform:      PlatformDarwin,
		unix: &UnixPaths{
			Integration:             "/usr/local/bin",
			DeploymentProfileSystem: "/Library/Preferences",
			DeploymentProfileUser:   filepath.Join(home, "Library", "Preferences"),
		},
	}, nil
}

func (r *Resolver) deriveLinux() (*PathSet, error) {
	home, err := r.UserHomeDir()
	if err != nil {
		return nil, err
	}
	configHome := r.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	dataHome := r.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	cacheHome := r.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}
	appHome := filepath.Join(configHome, appDirName)
	return &PathSet{
		AppHome:       appHome,
		AltAppHome:    filepath.Join(home, ".rd"),
		Config:        appHome,
		Logs:          filepath.Join(dataHome, appDirName, "logs"),
		Cache:         filepath.Join(cacheHome, appDirName),
		ExtensionRoot: filepath.Join(dataHome, appDirName, "extensions"),
		platform:      PlatformLinux,
		unix: &UnixPaths{
			Integration:             filepath.Join(home, ".rd", "bin"),
			DeploymentProfileSystem: filepath.Join("/etc", appDirName),
			DeploymentProfileUser:   configHome,
		},
	}, nil
}

func (r *Resolver) deriveWindows() (*PathSet, error) {
	appData := r.Getenv("APPDATA")
	localAppData := r.Getenv("LOCALAPPDATA")
	if appData == "" || localAppData == "" {
		return nil, errors.New("APPDATA and LOCALAPPDATA must both be set")
	}
	appHome := filepath.Join(appData, appDirName)
	local := filepath.Join(localAppData, appDirName)
	return &PathSet{
		AppHome:       appHome,
		AltAppHome:    appHome,
		Config:        appHome,
		Logs:          filepath.Join(local, "logs"),
		Cache:         filepath.Join(local, "cache"),
		ExtensionRoot: filepath.Join(local, "extensions"),
		platform:      PlatformWin32,
		windows: &WindowsPaths{
			WSLDistro:     filepath.Join(local, "distro"),
			WSLDistroData: filepath.Join(local, "distro-data"),
		},
	}, nil
}
