// Package lockfile records a content fingerprint for each generated icon so
// that stale components can be told apart from up-to-date ones.
package lockfile

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Version is the current lock file format version.
const Version = 1

// Entry is the recorded state of one component.
type Entry struct {
	Source string `toml:"source"`
	Hash   string `toml:"hash"`
}

// File is the in-memory lock file.
type File struct {
	Version int              `toml:"version"`
	Icons   map[string]Entry `toml:"icons"`
}

// New returns an empty lock file.
func New() *File {
	return &File{Version: Version, Icons: make(map[string]Entry)}
}

// Load reads the lock file at path. A missing file yields an empty lock.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("read lock file: %w", err)
	}

	f := New()
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse lock file %s: %w", path, err)
	}
	if f.Version > Version {
		return nil, fmt.Errorf("lock file %s has version %d, newer than supported %d", path, f.Version, Version)
	}
	if f.Icons == nil {
		f.Icons = make(map[string]Entry)
	}
	f.Version = Version

	return f, nil
}

// Save writes the lock file to path. Entries are sorted by component name.
func (f *File) Save(path string) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode lock file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write lock file: %w", err)
	}
	return nil
}

// Fingerprint returns the hex encoded SHA-256 of data.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Stale reports whether name was recorded with a hash other than hash.
// Unrecorded names are never stale.
func (f *File) Stale(name, hash string) bool {
	e, ok := f.Icons[name]
	return ok && e.Hash != hash
}

// Record stores the fingerprint of the source that produced name.
func (f *File) Record(name, source, hash string) {
	f.Icons[name] = Entry{Source: source, Hash: hash}
}
