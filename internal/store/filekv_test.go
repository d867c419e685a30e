package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempKV(t *testing.T) *FileKV {
	t.Helper()
	return NewFileKV(filepath.Join(t.TempDir(), "store.json"))
}

func TestFileKV_MissingFileReadsEmpty(t *testing.T) {
	kv := tempKV(t)

	_, ok, err := kv.Get("anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV_SetGetDelete(t *testing.T) {
	kv := tempKV(t)

	require.NoError(t, kv.Set("alpha", "one"))
	require.NoError(t, kv.Set("beta", "two"))

	v, ok, err := kv.Get("alpha")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	require.NoError(t, kv.Delete("alpha"))
	_, ok, err = kv.Get("alpha")
	require.NoError(t, err)
	assert.False(t, ok)

	// Surviving key untouched.
	v, ok, err = kv.Get("beta")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := NewFileKV(path)
	require.NoError(t, first.Set("draft", `{"applicantName":"Jane"}`))

	second := NewFileKV(path)
	v, ok, err := second.Get("draft")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"applicantName":"Jane"}`, v)
}

func TestFileKV_CorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	kv := NewFileKV(path)
	_, _, err := kv.Get("anything")
	assert.Error(t, err)
}

func TestFileKV_DeleteAbsentKeyIsNoop(t *testing.T) {
	kv := tempKV(t)
	require.NoError(t, kv.Delete("never-set"))

	_, ok, err := kv.Get("never-set")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")
	kv := NewFileKV(path)

	require.NoError(t, kv.Set("k", "v"))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
