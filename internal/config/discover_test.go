package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, ".config/media-ledger/ledger.toml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/media-ledger/ledger.toml", DefaultPath())
}

func TestDefaultLedgerPath_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	assert.Equal(t, "/custom/data/media-ledger/ledger.json", DefaultLedgerPath())
}

func TestDiscover_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "custom.toml")
	err := os.WriteFile(cfgPath, []byte("[ledger]"), 0644)
	require.NoError(t, err, "failed to create test config")

	t.Setenv("MEDIA_LEDGER_CONFIG", cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_EnvOverride_NotFound(t *testing.T) {
	t.Setenv("MEDIA_LEDGER_CONFIG", "/nonexistent/ledger.toml")

	_, err := Discover()
	require.Error(t, err, "expected error for missing MEDIA_LEDGER_CONFIG")
	assert.Contains(t, err.Error(), "MEDIA_LEDGER_CONFIG")
}

func TestDiscover_CurrentDir(t *testing.T) {
	t.Setenv("MEDIA_LEDGER_CONFIG", "")

	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "ledger.toml")
	err := os.WriteFile(cfgPath, []byte("[ledger]"), 0644)
	require.NoError(t, err, "failed to create test config")
	t.Chdir(tmp)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "ledger.toml", filepath.Base(path))
}

func TestDiscover_NotFound(t *testing.T) {
	t.Setenv("MEDIA_LEDGER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
	t.Chdir(t.TempDir())

	_, err := Discover()
	require.Error(t, err, "expected error when no config found")
	assert.ErrorIs(t, err, ErrNotFound)
}
