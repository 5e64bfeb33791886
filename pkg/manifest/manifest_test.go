package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got := Render([]string{"Star", "Heart", "HeartFilled", "Heart", ""})

	want := `export { Heart } from "./components/icons/Heart";
export { HeartFilled } from "./components/icons/HeartFilled";
export { Star } from "./components/icons/Star";
`
	assert.Equal(t, want, string(got))
}

func TestRender_OrderInsensitive(t *testing.T) {
	a := Render([]string{"B", "A", "C"})
	b := Render([]string{"C", "B", "A", "A"})
	assert.Equal(t, a, b)
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "\n", string(Render(nil)))
}

func TestWrite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "index.ts")
	names := []string{"Heart", "Check", "HeartFilled"}

	require.NoError(t, Write(path, names))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Write(path, names))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Render(names), first)

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.ts")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new manifest\n"), 0644))

	require.NoError(t, Write(path, []string{"X"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export { X } from \"./components/icons/X\";\n", string(got))
}

func TestWrite_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	// The parent "directory" is a regular file.
	err := Write(filepath.Join(blocker, "index.ts"), []string{"A"})
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Heart.tsx", "Star.tsx", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Nested.tsx"), 0755))

	got, err := Collect(dir, ".tsx")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Heart", "Star"}, got)

	missing, err := Collect(filepath.Join(dir, "missing"), ".tsx")
	require.NoError(t, err)
	assert.Empty(t, missing)
}
