// Package config handles workspace configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents workspace configuration stored in
// .impactspark/config.json. Engine functions take all inputs explicitly;
// these values only seed CLI flag defaults.
type Config struct {
	Mailto           string    `json:"mailto,omitempty"`            // OpenAlex polite-pool contact email
	MinAuthorPapers  int       `json:"min_author_papers,omitempty"` // Author significance threshold
	MinKeywordPapers int       `json:"min_keyword_papers,omitempty"`
	TrendTopKeywords int       `json:"trend_top_keywords,omitempty"`
	SimilarCount     int       `json:"similar_count,omitempty"`
	Percentiles      []float64 `json:"percentiles,omitempty"`
}

const (
	SparkDir    = ".impactspark"
	ConfigFile  = "config.json"
	RecordsFile = "records.jsonl"
	CacheDir    = "cache"
	DBFile      = "works.db"
)

// SparkPath returns the path to the .impactspark directory from a root path.
func SparkPath(root string) string {
	return filepath.Join(root, SparkDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, SparkDir, ConfigFile)
}

// RecordsPath returns the path to records.jsonl from a root path.
func RecordsPath(root string) string {
	return filepath.Join(root, SparkDir, RecordsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, SparkDir, CacheDir)
}

// DBPath returns the path to works.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, SparkDir, CacheDir, DBFile)
}

// IsWorkspace checks if the given path contains a spark workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(SparkPath(root))
	return err == nil && info.IsDir()
}

// FindWorkspace walks up from the given path to find a spark workspace.
// Returns the workspace root path or an error if not found.
func FindWorkspace(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a spark workspace (no .impactspark directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the workspace at the given root. A missing
// file yields an empty config. Values the workspace leaves unset stay zero
// here so Effective can fill them from the global config before applying
// the engine defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the workspace at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Default returns a config populated with the engine defaults.
func Default() Config {
	var cfg Config
	cfg.fillDefaults()
	return cfg
}

func (c *Config) fillDefaults() {
	if c.MinAuthorPapers <= 0 {
		c.MinAuthorPapers = 2
	}
	if c.MinKeywordPapers <= 0 {
		c.MinKeywordPapers = 3
	}
	if c.TrendTopKeywords <= 0 {
		c.TrendTopKeywords = 20
	}
	if c.SimilarCount <= 0 {
		c.SimilarCount = 5
	}
	if len(c.Percentiles) == 0 {
		c.Percentiles = []float64{10, 25, 50, 75, 90, 95, 99}
	}
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
