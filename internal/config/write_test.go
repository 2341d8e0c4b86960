package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "media-ledger", "ledger.toml")

	err := WriteDefault(path)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	assert.Contains(t, string(content), "[ledger]")
	assert.Contains(t, string(content), "[search]")
	assert.Contains(t, string(content), "${MEDIA_LEDGER_PATH:-ledger.json}")
}

func TestWriteDefault_CreatesDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "deep", "ledger.toml")

	require.NoError(t, WriteDefault(path))

	_, err := os.Stat(path)
	assert.False(t, os.IsNotExist(err), "file was not created")
}
