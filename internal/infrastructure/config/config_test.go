package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil config for missing file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	input := &UserConfig{Shell: "zsh", Theme: "powerlevel10k", DefaultAuthor: "reviewer"}
	if err := Save(dir, input); err != nil {
		t.Fatalf("save config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected config")
	}
	if cfg.Shell != input.Shell || cfg.Theme != input.Theme || cfg.DefaultAuthor != input.DefaultAuthor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("::bad"), 0600); err != nil {
		t.Fatalf("write bad config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}

func TestSaveNil(t *testing.T) {
	if err := Save(t.TempDir(), nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
