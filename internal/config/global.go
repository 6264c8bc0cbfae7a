// Package config handles workspace and global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/spark/config.yml.
// Workspace config.json values take precedence over these.
type GlobalConfig struct {
	Mailto           string    `yaml:"mailto,omitempty"`
	MinAuthorPapers  int       `yaml:"min_author_papers,omitempty"`
	MinKeywordPapers int       `yaml:"min_keyword_papers,omitempty"`
	TrendTopKeywords int       `yaml:"trend_top_keywords,omitempty"`
	SimilarCount     int       `yaml:"similar_count,omitempty"`
	Percentiles      []float64 `yaml:"percentiles,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "spark"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/spark/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetMailto returns the OpenAlex contact email, preferring the OPENALEX_MAILTO
// environment variable over the global config.
func GetMailto() string {
	if email := os.Getenv("OPENALEX_MAILTO"); email != "" {
		return email
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.Mailto
}

// Effective merges workspace config over global config. Zero-valued
// workspace fields inherit the global value; remaining gaps fall back to
// the engine defaults.
func Effective(workspace *Config) Config {
	global, _ := LoadGlobalConfig()

	merged := Config{}
	if workspace != nil {
		merged = *workspace
	}
	if merged.Mailto == "" {
		merged.Mailto = global.Mailto
	}
	if merged.MinAuthorPapers <= 0 {
		merged.MinAuthorPapers = global.MinAuthorPapers
	}
	if merged.MinKeywordPapers <= 0 {
		merged.MinKeywordPapers = global.MinKeywordPapers
	}
	if merged.TrendTopKeywords <= 0 {
		merged.TrendTopKeywords = global.TrendTopKeywords
	}
	if merged.SimilarCount <= 0 {
		merged.SimilarCount = global.SimilarCount
	}
	if len(merged.Percentiles) == 0 {
		merged.Percentiles = global.Percentiles
	}
	merged.fillDefaults()
	return merged
}
