package config

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResolver returns a Resolver whose default settings path points at
// the given file, which need not exist.
func newTestResolver(defaultPath string, overrides Overrides) *Resolver {
	return &Resolver{
		Overrides:   overrides,
		DefaultPath: func() (string, error) { return defaultPath, nil },
	}
}

func TestResolve_FileOnly(t *testing.T) {
	path := writeSettingsFile(t, `{"User": "admin", "Password": "secret", "Port": 6107}`)

	info, err := newTestResolver(path, Overrides{}).Resolve()
	require.NoError(t, err)
	assert.Equal(t, &ConnectionInfo{
		Host:     "127.0.0.1",
		Port:     "6107",
		User:     "admin",
		Password: "secret",
	}, info)
}

func TestResolve_OverridesBeatFile(t *testing.T) {
	file := `{"User": "admin", "Password": "secret", "Port": 6107}`
	tests := []struct {
		name      string
		overrides ConnectionInfo
		want      ConnectionInfo
	}{
		{
			name:      "host",
			overrides: ConnectionInfo{Host: "10.0.0.5"},
			want:      ConnectionInfo{Host: "10.0.0.5", Port: "6107", User: "admin", Password: "secret"},
		},
		{
			name:      "port",
			overrides: ConnectionInfo{Port: "9999"},
			want:      ConnectionInfo{Host: "127.0.0.1", Port: "9999", User: "admin", Password: "secret"},
		},
		{
			name:      "user",
			overrides: ConnectionInfo{User: "root"},
			want:      ConnectionInfo{Host: "127.0.0.1", Port: "6107", User: "root", Password: "secret"},
		},
		{
			name:      "password",
			overrides: ConnectionInfo{Password: "hunter2"},
			want:      ConnectionInfo{Host: "127.0.0.1", Port: "6107", User: "admin", Password: "hunter2"},
		},
		{
			name:      "all four",
			overrides: ConnectionInfo{Host: "10.0.0.5", Port: "9999", User: "root", Password: "hunter2"},
			want:      ConnectionInfo{Host: "10.0.0.5", Port: "9999", User: "root", Password: "hunter2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettingsFile(t, file)

			info, err := newTestResolver(path, Overrides{ConnectionInfo: tt.overrides}).Resolve()
			require.NoError(t, err)
			assert.Equal(t, &tt.want, info)
		})
	}
}

func TestResolve_DefaultFileAbsent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), SettingsFileName)

	t.Run("without overrides the service is reported as not running", func(t *testing.T) {
		_, err := newTestResolver(missing, Overrides{}).Resolve()
		assert.ErrorIs(t, err, ErrServiceNotRunning)
	})

	t.Run("complete overrides succeed without the file", func(t *testing.T) {
		overrides := Overrides{ConnectionInfo: ConnectionInfo{
			Host: "10.0.0.5", Port: "6107", User: "admin", Password: "secret",
		}}
		info, err := newTestResolver(missing, overrides).Resolve()
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5", info.Host)
	})

	t.Run("partial overrides still report the service as not running", func(t *testing.T) {
		overrides := Overrides{ConnectionInfo: ConnectionInfo{User: "admin"}}
		_, err := newTestResolver(missing, overrides).Resolve()
		assert.ErrorIs(t, err, ErrServiceNotRunning)
	})
}

func TestResolve_UserSpecifiedPathAbsent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "custom.json")

	t.Run("fails immediately", func(t *testing.T) {
		overrides := Overrides{ConfigPath: missing}
		_, err := newTestResolver("unused", overrides).Resolve()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrServiceNotRunning)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorContains(t, err, missing)
	})

	t.Run("fails even when overrides are complete", func(t *testing.T) {
		overrides := Overrides{
			ConnectionInfo: ConnectionInfo{Host: "10.0.0.5", Port: "6107", User: "admin", Password: "secret"},
			ConfigPath:     missing,
		}
		_, err := newTestResolver("unused", overrides).Resolve()
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestResolve_MalformedFile(t *testing.T) {
	t.Run("at the default path", func(t *testing.T) {
		path := writeSettingsFile(t, `{"User": `)
		_, err := newTestResolver(path, Overrides{}).Resolve()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrServiceNotRunning)
		assert.ErrorContains(t, err, path)
	})

	t.Run("at a user-specified path", func(t *testing.T) {
		path := writeSettingsFile(t, `{"User": `)
		_, err := newTestResolver("unused", Overrides{ConfigPath: path}).Resolve()
		require.Error(t, err)
		assert.ErrorContains(t, err, path)
	})
}

func TestResolve_FileMissingFields(t *testing.T) {
	path := writeSettingsFile(t, `{"User": "admin"}`)

	_, err := newTestResolver(path, Overrides{}).Resolve()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrServiceNotRunning, "the file exists; this is not the service-not-running case")
	assert.ErrorContains(t, err, "password")
	assert.ErrorContains(t, err, "port")
}

func TestResolve_ZeroPortInFile(t *testing.T) {
	path := writeSettingsFile(t, `{"User": "admin", "Password": "secret", "Port": 0}`)

	_, err := newTestResolver(path, Overrides{}).Resolve()
	require.Error(t, err)
	assert.ErrorContains(t, err, "port must be a positive integer")
	assert.ErrorContains(t, err, path)
}

func TestResolve_DefaultPathNotConsultedWithOverridePath(t *testing.T) {
	path := writeSettingsFile(t, `{"User": "admin", "Password": "secret", "Port": 6107}`)
	r := &Resolver{
		Overrides: Overrides{ConfigPath: path},
		DefaultPath: func() (string, error) {
			t.Fatal("DefaultPath must not be consulted when --config-path is given")
			return "", nil
		},
	}

	info, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "admin", info.User)
}
