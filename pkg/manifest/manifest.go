// Package manifest writes the export index that re-exports every icon component.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ComponentsPath is the import path prefix, relative to the manifest, of the component files.
const ComponentsPath = "./components/icons/"

// Names returns names deduplicated and sorted lexicographically. Empty names are dropped.
func Names(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}

// Render returns the manifest content for names: one export statement per
// unique name, sorted, newline terminated.
func Render(names []string) []byte {
	var sb strings.Builder
	for _, name := range Names(names) {
		fmt.Fprintf(&sb, "export { %s } from \"%s%s\";\n", name, ComponentsPath, name)
	}
	if sb.Len() == 0 {
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// Write replaces the manifest at path. The content is written to a temporary
// file in the same directory and renamed over path, so readers never observe
// a partial manifest.
func Write(path string, names []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(Render(names)); err != nil {
		tmp.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close manifest: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod manifest: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace manifest %s: %w", path, err)
	}

	return nil
}

// Collect returns the names of the component files (files ending in ext)
// found directly in dir. A missing dir yields no names.
func Collect(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}

	return names, nil
}
