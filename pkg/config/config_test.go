package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
strict: true
skipua: false
hidden_reverse: true
norelpeer: [64512, 64513]
max_iterations: 5
usehints: true
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxIterations != 5 {
		t.Errorf("expected max_iterations 5, got %d", cfg.MaxIterations)
	}
	if !cfg.UseHints {
		t.Error("expected usehints true")
	}
	set := cfg.NorelPeerSet()
	if _, ok := set[64512]; !ok {
		t.Error("expected 64512 in norelpeer set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidateRejectsNonPositiveIterations(t *testing.T) {
	cfg := Default()
	cfg.MaxIterations = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation to reject max_iterations=0")
	}
}

func TestDefaultsMatchHeadline(t *testing.T) {
	cfg := Default()
	if !cfg.Strict || !cfg.HiddenReverse || cfg.MaxIterations != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
