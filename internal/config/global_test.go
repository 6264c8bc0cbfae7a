package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", orig)

	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := "/custom/config/spark/config.yml"
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}

	os.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	path = GlobalConfigPath()
	want = filepath.Join(home, ".config", "spark", "config.yml")
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		os.Setenv("XDG_CONFIG_HOME", orig)
		ResetGlobalConfigCache()
	}()

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	ResetGlobalConfigCache()

	dir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "mailto: team@example.org\nmin_author_papers: 3\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}
	if cfg.Mailto != "team@example.org" {
		t.Errorf("Mailto = %q", cfg.Mailto)
	}
	if cfg.MinAuthorPapers != 3 {
		t.Errorf("MinAuthorPapers = %d, want 3", cfg.MinAuthorPapers)
	}
}

func TestLoadGlobalConfigMissing(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		os.Setenv("XDG_CONFIG_HOME", orig)
		ResetGlobalConfigCache()
	}()

	os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetGlobalConfigCache()

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig on missing file: %v", err)
	}
	if cfg.Mailto != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestEffectiveMergesGlobalUnderWorkspace(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		os.Setenv("XDG_CONFIG_HOME", orig)
		ResetGlobalConfigCache()
	}()

	tmpDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	ResetGlobalConfigCache()

	dir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "mailto: global@example.org\nsimilar_count: 9\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ws := &Config{Mailto: "ws@example.org"}
	merged := Effective(ws)

	// Workspace value wins, global fills gaps, defaults fill the rest.
	if merged.Mailto != "ws@example.org" {
		t.Errorf("Mailto = %q, want workspace value", merged.Mailto)
	}
	if merged.SimilarCount != 9 {
		t.Errorf("SimilarCount = %d, want global 9", merged.SimilarCount)
	}
	if merged.MinAuthorPapers != 2 {
		t.Errorf("MinAuthorPapers = %d, want default 2", merged.MinAuthorPapers)
	}
}

func TestEffectiveAppliesGlobalToLoadedConfig(t *testing.T) {
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		os.Setenv("XDG_CONFIG_HOME", orig)
		ResetGlobalConfigCache()
	}()

	configHome := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", configHome)
	ResetGlobalConfigCache()

	dir := filepath.Join(configHome, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "min_author_papers: 5\nsimilar_count: 9\n"
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// Workspace without a config.json: everything it leaves unset must
	// come from the global config, then the defaults.
	wsRoot := t.TempDir()
	if err := os.MkdirAll(SparkPath(wsRoot), 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(wsRoot)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	merged := Effective(cfg)

	if merged.MinAuthorPapers != 5 {
		t.Errorf("MinAuthorPapers = %d, want global 5", merged.MinAuthorPapers)
	}
	if merged.SimilarCount != 9 {
		t.Errorf("SimilarCount = %d, want global 9", merged.SimilarCount)
	}
	if merged.MinKeywordPapers != 3 {
		t.Errorf("MinKeywordPapers = %d, want default 3", merged.MinKeywordPapers)
	}
}
