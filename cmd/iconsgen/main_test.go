package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/iconsgen"
)

func TestWriteReport(t *testing.T) {
	projectRoot := filepath.Join(t.TempDir(), "acme-icons")
	path := filepath.Join(t.TempDir(), "ICONS.md")

	result := &iconsgen.Result{
		Icons: []iconsgen.Icon{
			{Source: "heart.svg", Name: "Heart", Status: iconsgen.StatusConverted},
		},
		Converted:  []string{"Heart"},
		Components: []string{"Heart"},
	}

	require.NoError(t, writeReport(path, projectRoot, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Icon Catalog - acme-icons")
	assert.Contains(t, string(data), "Heart")
}

func TestWriteReport_Disabled(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeReport("", dir, &iconsgen.Result{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteReport_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ICONS.md")

	err := writeReport(path, ".", &iconsgen.Result{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report")
}
