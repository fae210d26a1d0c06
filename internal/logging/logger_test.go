package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud", Console: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestNew_NoSinks(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	logger.Info("dropped")
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ajudaja.log")
	logger, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"timestamp"`)
}
