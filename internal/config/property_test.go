package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/stretchr/testify/require"
)

// TestOverridePrecedenceProperty checks the precedence law over every
// combination of set and unset override fields: a set override always wins,
// an unset one always falls through to the file (or the host default).
func TestOverridePrecedenceProperty(t *testing.T) {
	path := writeSettingsFile(t, `{"User": "admin", "Password": "secret", "Port": 6107}`)

	properties := gopter.NewProperties(nil)
	properties.Property("a set override beats the settings file", prop.ForAll(
		func(setHost, setPort, setUser, setPassword bool) bool {
			overrides := Overrides{}
			if setHost {
				overrides.Host = "10.0.0.5"
			}
			if setPort {
				overrides.Port = "9999"
			}
			if setUser {
				overrides.User = "root"
			}
			if setPassword {
				overrides.Password = "hunter2"
			}

			info, err := newTestResolver(path, overrides).Resolve()
			require.NoError(t, err)

			want := ConnectionInfo{Host: "127.0.0.1", Port: "6107", User: "admin", Password: "secret"}
			if setHost {
				want.Host = "10.0.0.5"
			}
			if setPort {
				want.Port = "9999"
			}
			if setUser {
				want.User = "root"
			}
			if setPassword {
				want.Password = "hunter2"
			}
			return *info == want
		},
		gen.Bool(), gen.Bool(), gen.Bool(), gen.Bool(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
