// Package cache memoizes validation outcomes keyed by file path and content
// hash, persisted as a JSON file under the user cache directory. Cache I/O
// is best-effort: a missing or corrupt cache never fails a run.
package cache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"

	schemax "github.com/schemax/schemax"
)

// Entry stores one memoized outcome with the content hash and the
// configuration scope it was produced under.
type Entry struct {
	Hash    string          `json:"hash"`
	Scope   string          `json:"scope"`
	Outcome schemax.Outcome `json:"outcome"`
}

// Cache is an in-memory view of the persisted result file.
type Cache struct {
	path    string
	entries map[string]Entry
	dirty   bool
}

// DefaultPath returns the per-user cache file location.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "schemax", "results.json")
	}
	return filepath.Join(dir, "schemax", "results.json")
}

// Open loads the cache at path, starting empty when it is missing or
// unreadable.
func Open(path string) *Cache {
	c := &Cache{path: path, entries: map[string]Entry{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		c.entries = map[string]Entry{}
	}
	return c
}

// Get returns the memoized outcome for filePath when the stored hash still
// matches the file's current content and the scope matches.
func (c *Cache) Get(filePath, scope string) (schemax.Outcome, bool) {
	e, ok := c.entries[filePath]
	if !ok || e.Scope != scope {
		return schemax.Outcome{}, false
	}
	h, err := HashFile(filePath)
	if err != nil || h != e.Hash {
		return schemax.Outcome{}, false
	}
	return e.Outcome, true
}

// Put memoizes an outcome under the file's current content hash. Files that
// cannot be hashed (e.g. missing) are not cached.
func (c *Cache) Put(filePath, scope string, o schemax.Outcome) {
	h, err := HashFile(filePath)
	if err != nil {
		return
	}
	c.entries[filePath] = Entry{Hash: h, Scope: scope, Outcome: o}
	c.dirty = true
}

// Save persists the entries when anything changed.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(c.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// Scope fingerprints the configuration a cached outcome depends on. Values
// marshal with sorted map keys, so the fingerprint is deterministic.
func Scope(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// HashFile returns the hex xxhash64 of the file content.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
