package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Matching.FuzzyThreshold != DefaultFuzzyThreshold {
		t.Errorf("fuzzy threshold = %v, want %v", cfg.Matching.FuzzyThreshold, DefaultFuzzyThreshold)
	}
	if cfg.Matching.LinkFrequencyThreshold != DefaultLinkFrequencyThreshold {
		t.Errorf("link threshold = %d, want %d", cfg.Matching.LinkFrequencyThreshold, DefaultLinkFrequencyThreshold)
	}
	if !filepath.IsAbs(cfg.Master.Path) {
		t.Errorf("master path not absolute: %s", cfg.Master.Path)
	}
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
data_dir = "` + dir + `"

[master]
path = "db/master.json"

[matching]
fuzzy_threshold = 82.5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(dir, "db", "master.json")
	if cfg.Master.Path != want {
		t.Errorf("master path = %s, want %s", cfg.Master.Path, want)
	}
	if cfg.Matching.FuzzyThreshold != 82.5 {
		t.Errorf("threshold = %v, want 82.5", cfg.Matching.FuzzyThreshold)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[matching]\nfuzzy_threshold = 140.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "fuzzy_threshold") {
		t.Fatalf("expected fuzzy_threshold validation error, got %v", err)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("data_dir = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
