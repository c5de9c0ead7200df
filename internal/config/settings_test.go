package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSettingsFile writes content as rd-engine.json in a fresh directory and
// returns the file path.
func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSettings(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		path := writeSettingsFile(t, `{"User": "admin", "Password": "secret", "Port": 6107}`)

		settings, present, err := readSettings(path)
		require.NoError(t, err)
		require.True(t, present)
		require.NotNil(t, settings.User)
		assert.Equal(t, "admin", *settings.User)
		require.NotNil(t, settings.Password)
		assert.Equal(t, "secret", *settings.Password)
		require.NotNil(t, settings.Port)
		assert.Equal(t, 6107, *settings.Port)
	})

	t.Run("absent keys stay nil", func(t *testing.T) {
		path := writeSettingsFile(t, `{"User": "admin"}`)

		settings, present, err := readSettings(path)
		require.NoError(t, err)
		require.True(t, present)
		require.NotNil(t, settings.User)
		assert.Nil(t, settings.Password)
		assert.Nil(t, settings.Port)
	})

	t.Run("explicit zero port is present, not absent", func(t *testing.T) {
		path := writeSettingsFile(t, `{"Port": 0}`)

		settings, present, err := readSettings(path)
		require.NoError(t, err)
		require.True(t, present)
		require.NotNil(t, settings.Port)
		assert.Equal(t, 0, *settings.Port)
	})

	t.Run("keys are case-insensitive", func(t *testing.T) {
		path := writeSettingsFile(t, `{"user": "admin", "password": "secret", "port": 6107}`)

		settings, _, err := readSettings(path)
		require.NoError(t, err)
		require.NotNil(t, settings.User)
		assert.Equal(t, "admin", *settings.User)
		require.NotNil(t, settings.Port)
		assert.Equal(t, 6107, *settings.Port)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), SettingsFileName)

		_, present, err := readSettings(path)
		require.NoError(t, err)
		assert.False(t, present)
	})

	t.Run("invalid JSON is a hard error naming the path", func(t *testing.T) {
		path := writeSettingsFile(t, `{"User": `)

		_, present, err := readSettings(path)
		require.Error(t, err)
		assert.True(t, present)
		assert.ErrorContains(t, err, path)
	})

	t.Run("wrong field type is a hard error", func(t *testing.T) {
		path := writeSettingsFile(t, `{"Port": "not a number"}`)

		_, _, err := readSettings(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, path)
	})
}
