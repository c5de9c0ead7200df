// Package config resolves the connection parameters rudderctl needs to reach
// the background service over HTTP: explicit overrides first, then the
// rd-engine.json file the service writes when it starts, then built-in
// defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// SettingsFileName is the file the background service writes its listening
// port and credentials into on startup.
const SettingsFileName = "rd-engine.json"

// fileSettings mirrors rd-engine.json. Pointer fields keep "key absent" and
// "explicitly zero" distinguishable, so a literal `"Port": 0` can be rejected
// instead of being silently treated as unset.
type fileSettings struct {
	User     *string
	Password *string
	Port     *int
}

// readSettings loads the settings file at path. A missing file is an expected
// outcome reported through present, not err; the caller decides whether it
// matters. Any other read or parse failure is hard and names the path.
func readSettings(path string) (settings fileSettings, present bool, err error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return fileSettings{}, false, nil
		}
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return fileSettings{}, true, fmt.Errorf("error in config file %q: %w", path, err)
		}
		return fileSettings{}, true, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	// JSON numbers arrive as float64 and still decode into *int; anything
	// else that does not match the declared shape is rejected.
	strict := func(c *mapstructure.DecoderConfig) { c.WeaklyTypedInput = false }
	if err := v.Unmarshal(&settings, strict); err != nil {
		return fileSettings{}, true, fmt.Errorf("error in config file %q: %w", path, err)
	}
	return settings, true, nil
}
