package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration for document locations and
// caching. All fields are optional; zero values fall back to the package
// defaults.
type Config struct {
	// GraphDocument overrides the bundle location (URL or file path).
	GraphDocument string `yaml:"graph_document,omitempty"`

	// EnrichmentDocument overrides the enrichment dataset location.
	EnrichmentDocument string `yaml:"enrichment_document,omitempty"`

	// CacheDir is the on-disk cache directory. Default: ~/.attck.
	CacheDir string `yaml:"cache_dir,omitempty"`

	// RedisURL, when set, selects the Redis cache backend instead of the
	// on-disk one.
	RedisURL string `yaml:"redis_url,omitempty"`
}

// DefaultCacheDir returns the default on-disk cache location, ~/.attck,
// falling back to a relative .attck when the home directory is unknown.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".attck"
	}
	return filepath.Join(home, ".attck")
}

// LoadConfig reads a YAML config file. A missing file is not an error: it
// yields a zero Config so every setting falls back to its default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("dataset: parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("dataset: encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: writing config: %w", err)
	}
	return nil
}

// Provider builds the HTTPProvider described by the config: Redis cache
// when RedisURL is set, otherwise an on-disk cache.
func (c *Config) Provider() (Provider, error) {
	var cache Cache
	if c.RedisURL != "" {
		rc, err := NewRedisCache(RedisOptions{URL: c.RedisURL})
		if err != nil {
			return nil, err
		}
		cache = rc
	} else {
		dir := c.CacheDir
		if dir == "" {
			dir = DefaultCacheDir()
		}
		cache = NewFSCache(dir)
	}

	return NewHTTPProvider(HTTPOptions{
		GraphDocument:      c.GraphDocument,
		EnrichmentDocument: c.EnrichmentDocument,
		Cache:              cache,
	}), nil
}
