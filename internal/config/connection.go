package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// defaultHost is used unless a host override is supplied. The service only
// listens on the loopback interface; overriding the host is mostly useful
// from inside a WSL distribution.
const defaultHost = "127.0.0.1"

// ErrServiceNotRunning means no connection info could be assembled because
// the settings file has never been written, i.e. the background service has
// not been started on this machine. The CLI layer turns this into a friendly
// hint instead of a raw file error.
var ErrServiceNotRunning = errors.New("the Rudder Desktop background service is not running")

// ConnectionInfo holds the resolved parameters for reaching the background
// service. It is assembled once per invocation and not mutated afterwards.
type ConnectionInfo struct {
	Host     string
	Port     string
	User     string
	Password string
}

// Overrides carries the user-supplied values that beat the settings file.
// Empty fields mean "not overridden". ConfigPath replaces the default
// settings file location; unlike the default, a path given here must be
// readable.
type Overrides struct {
	ConnectionInfo
	ConfigPath string
}

// Resolver assembles a ConnectionInfo from overrides, the settings file, and
// built-in defaults, in that order of precedence. DefaultPath locates the
// settings file when no ConfigPath override is given; it defaults to
// DefaultSettingsPath and is only consulted in that case.
type Resolver struct {
	Overrides   Overrides
	DefaultPath func() (string, error)
}

// Resolve merges the three sources and checks that user, password, and port
// all ended up set. When they did not, the error depends on why: a default
// settings file that simply does not exist yields ErrServiceNotRunning, while
// everything else surfaces the underlying condition.
func (r *Resolver) Resolve() (*ConnectionInfo, error) {
	info := &ConnectionInfo{
		Host:     r.Overrides.Host,
		Port:     r.Overrides.Port,
		User:     r.Overrides.User,
		Password: r.Overrides.Password,
	}
	if info.Host == "" {
		info.Host = defaultHost
	}

	soft, err := r.fill(info)
	if err != nil {
		return nil, err
	}
	missing := info.missing()
	if len(missing) == 0 {
		return info, nil
	}
	if soft != nil {
		return nil, soft
	}
	return nil, fmt.Errorf("incomplete connection info: missing %s", strings.Join(missing, ", "))
}

// fill overlays the settings file onto info. The returned soft error is the
// deferred "settings file absent at its default location" condition, which
// only matters if the merge turns out to be insufficient; every other failure
// comes back as a hard error.
func (r *Resolver) fill(info *ConnectionInfo) (soft, hard error) {
	path := r.Overrides.ConfigPath
	isDefault := path == ""
	if isDefault {
		defaultPath := r.DefaultPath
		if defaultPath == nil {
			defaultPath = DefaultSettingsPath
		}
		resolved, err := defaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	settings, present, err := readSettings(path)
	if err != nil {
		return nil, err
	}
	if !present {
		if !isDefault {
			// The user pointed at this file; its absence is reported right
			// away, even if overrides could have carried the resolution.
			return nil, fmt.Errorf("failed to read config file %q: %w", path, fs.ErrNotExist)
		}
		// The service writes the default file on startup, so its absence
		// usually just means the service has never run. Only complain if the
		// merge cannot succeed without it.
		return fmt.Errorf("%w (%s does not exist)", ErrServiceNotRunning, path), nil
	}

	if info.User == "" && settings.User != nil {
		info.User = *settings.User
	}
	if info.Password == "" && settings.Password != nil {
		info.Password = *settings.Password
	}
	if info.Port == "" && settings.Port != nil {
		if *settings.Port <= 0 {
			return nil, fmt.Errorf("error in config file %q: port must be a positive integer, got %d", path, *settings.Port)
		}
		info.Port = strconv.Itoa(*settings.Port)
	}
	return nil, nil
}

// missing lists the required fields that have no value yet. Host is excluded
// because it always has a default.
func (info *ConnectionInfo) missing() []string {
	var fields []string
	if info.User == "" {
		fields = append(fields, "user")
	}
	if info.Password == "" {
		fields = append(fields, "password")
	}
	if info.Port == "" {
		fields = append(fields, "port")
	}
	return fields
}
