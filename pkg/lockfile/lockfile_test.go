package lockfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "icons.lock.toml"))
	require.NoError(t, err)
	assert.Equal(t, Version, f.Version)
	assert.Empty(t, f.Icons)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "icons.lock.toml")

	f := New()
	f.Record("Star", "star.svg", Fingerprint([]byte("star")))
	f.Record("Heart", "heart.svg", Fingerprint([]byte("heart")))
	require.NoError(t, f.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(data), "Heart"), strings.Index(string(data), "Star"),
		"entries should be sorted by name")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, f.Icons, loaded.Icons)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.lock.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.lock.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "newer than supported")
}

func TestStale(t *testing.T) {
	f := New()
	f.Record("Heart", "heart.svg", "aaa")

	assert.False(t, f.Stale("Heart", "aaa"))
	assert.True(t, f.Stale("Heart", "bbb"))
	assert.False(t, f.Stale("Star", "ccc"), "unrecorded names are never stale")
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint([]byte("x")), Fingerprint([]byte("x")))
	assert.NotEqual(t, Fingerprint([]byte("x")), Fingerprint([]byte("y")))
	assert.Len(t, Fingerprint(nil), 64)
}
