package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exercised through the win32 paths variant")
	}

	path, err := DefaultSettingsPath()
	require.NoError(t, err)
	assert.Equal(t, SettingsFileName, filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))
}
