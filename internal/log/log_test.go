package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninitializedLoggingIsSilent(t *testing.T) {
	// Must not panic or write anywhere before Init.
	Debug(CatStore, "nobody hears this", "k", "v")
	Info(CatWizard, "still silent")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "permitwiz.log")
	require.NoError(t, Init(path, "debug"))
	t.Cleanup(Close)

	Debug(CatStore, "draft saved", "bytes", 42)
	Info(CatWizard, "step advanced", "step", 2)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "draft saved")
	assert.Contains(t, string(data), "step advanced")
	assert.Contains(t, string(data), "session")
}

func TestInit_EmptyPathRejected(t *testing.T) {
	assert.Error(t, Init("", "info"))
}

func TestInit_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "permitwiz.log")
	require.NoError(t, Init(path, "warn"))
	t.Cleanup(Close)

	Debug(CatUI, "filtered out")
	Warn(CatUI, "kept")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered out")
	assert.Contains(t, string(data), "kept")
}
