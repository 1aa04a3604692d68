package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wardsec/ward/internal/domain/ward"
)

func TestWardFileRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewWardFileRepository()

	if repo.HasWard(dir) {
		t.Error("empty dir should not be warded")
	}
	if cfg := repo.LoadConfig(dir); cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	cfg := ward.NewConfig()
	cfg.Description = "round trip"
	cfg.Whitelist = []string{"ls", "cat"}
	cfg.Blacklist = []string{"rm -rf"}
	cfg.ProtectedFolders = []string{"services"}
	if err := repo.SaveConfig(dir, cfg); err != nil {
		t.Fatal(err)
	}

	if !repo.HasWard(dir) {
		t.Error("expected warded dir after save")
	}

	loaded := repo.LoadConfig(dir)
	if loaded == nil {
		t.Fatal("expected config after save")
	}
	if loaded.Description != "round trip" || len(loaded.ProtectedFolders) != 1 {
		t.Errorf("unexpected config %+v", loaded)
	}

	policy, err := repo.ReadPolicy(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(policy, "@description: round trip") {
		t.Errorf("unexpected policy text:\n%s", policy)
	}
}

func TestWardFileRepository_Permissions(t *testing.T) {
	dir := t.TempDir()
	repo := NewWardFileRepository()

	if err := repo.SaveConfig(dir, ward.NewConfig()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(repo.WardPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestWardFileRepository_MarkerIsDir(t *testing.T) {
	dir := t.TempDir()
	repo := NewWardFileRepository()

	// a directory named .ward is not a marker file
	if err := os.Mkdir(filepath.Join(dir, ward.MarkerFile), 0700); err != nil {
		t.Fatal(err)
	}
	if repo.HasWard(dir) {
		t.Error("a .ward directory must not count as a marker")
	}
}

func TestWardFileRepository_ReadPolicyMissing(t *testing.T) {
	repo := NewWardFileRepository()
	if _, err := repo.ReadPolicy(t.TempDir()); err == nil {
		t.Error("expected error for missing marker")
	}
}
