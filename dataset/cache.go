package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache stores fetched document bytes between loads. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns the cached bytes for key. The second return is false
	// on a cache miss; an error indicates the backend itself failed.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, replacing any existing entry.
	Set(ctx context.Context, key string, data []byte) error
}

// FSCache caches documents as files in a directory, one file per key.
type FSCache struct {
	dir string
}

// NewFSCache returns a cache rooted at dir. The directory is created on
// first write, not here.
func NewFSCache(dir string) *FSCache {
	return &FSCache{dir: dir}
}

// Dir returns the cache directory.
func (c *FSCache) Dir() string {
	return c.dir
}

// Get reads the cached file for key. A missing file is a miss, not an error.
func (c *FSCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dataset: reading cache file: %w", err)
	}
	return data, true, nil
}

// Set writes data to the cache file for key, creating the cache directory
// if needed.
func (c *FSCache) Set(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("dataset: creating cache dir: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("dataset: writing cache file: %w", err)
	}
	return nil
}

func (c *FSCache) path(key string) string {
	return filepath.Join(c.dir, sanitizeKey(key)+".json")
}

// sanitizeKey flattens a cache key into a safe file name.
func sanitizeKey(key string) string {
	repl := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return repl.Replace(key)
}
