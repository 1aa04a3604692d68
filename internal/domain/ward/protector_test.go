package ward_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wardsec/ward/internal/domain/ward"
)

func TestIsProtectedPath_Containment(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "services", "x"), 0o750); err != nil {
		t.Fatal(err)
	}

	p := ward.NewFolderProtector(base, []string{"services"})

	if !p.IsProtectedPath(filepath.Join(base, "services")) {
		t.Error("protected folder itself should match")
	}
	if !p.IsProtectedPath(filepath.Join(base, "services", "x", "y.txt")) {
		t.Error("descendant of protected folder should match")
	}
}

func TestIsProtectedPath_PrefixTrap(t *testing.T) {
	base := t.TempDir()
	p := ward.NewFolderProtector(base, []string{"services"})

	if p.IsProtectedPath(filepath.Join(base, "services2")) {
		t.Error("sibling with string-prefix name must not match")
	}
	if p.IsProtectedPath(base + "/servicesX/file.txt") {
		t.Error("string prefix match must not count as path containment")
	}
}

func TestIsProtectedPath_Sibling(t *testing.T) {
	base := t.TempDir()
	p := ward.NewFolderProtector(base, []string{"services"})

	if p.IsProtectedPath(filepath.Join(base, "other")) {
		t.Error("unrelated sibling should not be protected")
	}
}

func TestIsProtectedPath_AbsentFolder(t *testing.T) {
	// Protection is declarative: the folder need not exist on disk.
	base := t.TempDir()
	p := ward.NewFolderProtector(base, []string{"ghost"})

	if !p.IsProtectedPath(filepath.Join(base, "ghost", "nested.txt")) {
		t.Error("declared but absent folder should still be protected")
	}
}

func TestProtectionInfo_Subfolder(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "services", "sub"), 0o750); err != nil {
		t.Fatal(err)
	}

	p := ward.NewFolderProtector(base, []string{"services"})
	info := p.ProtectionInfo(filepath.Join(base, "services", "sub", "file.txt"))

	if !info.Protected {
		t.Fatal("expected protected")
	}
	if info.Type != ward.MatchSubfolder {
		t.Errorf("Type = %q, want %q", info.Type, ward.MatchSubfolder)
	}
	if info.Folder != "services" {
		t.Errorf("Folder = %q, want services", info.Folder)
	}
	if info.RelativePath != filepath.Join("sub", "file.txt") {
		t.Errorf("RelativePath = %q", info.RelativePath)
	}
}

func TestProtectionInfo_DirectMatch(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "mappers"), 0o750); err != nil {
		t.Fatal(err)
	}

	p := ward.NewFolderProtector(base, []string{"mappers"})
	info := p.ProtectionInfo(filepath.Join(base, "mappers"))

	if !info.Protected || info.Type != ward.MatchDirect {
		t.Errorf("got %+v, want direct match", info)
	}
}

func TestProtectionInfo_FirstDeclaredWins(t *testing.T) {
	base := t.TempDir()
	p := ward.NewFolderProtector(base, []string{"a", "b"})

	info := p.ProtectionInfo(filepath.Join(base, "b", "file"))
	if info.Folder != "b" {
		t.Errorf("Folder = %q, want b", info.Folder)
	}
}

func TestProtectionInfo_Unprotected(t *testing.T) {
	base := t.TempDir()
	p := ward.NewFolderProtector(base, []string{"services"})

	info := p.ProtectionInfo(filepath.Join(base, "docs", "readme.md"))
	if info.Protected || info.Folder != "" || info.Type != "" {
		t.Errorf("got %+v, want unprotected", info)
	}
}

func TestSummary(t *testing.T) {
	base := t.TempDir()
	p := ward.NewFolderProtector(base, []string{"services", "mappers"})

	s := p.Summary()
	if s.TotalProtected != 2 {
		t.Errorf("TotalProtected = %d", s.TotalProtected)
	}
	if len(s.ProtectedPaths) != 2 {
		t.Errorf("ProtectedPaths = %v", s.ProtectedPaths)
	}
	if s.ProtectedFolders[0] != "services" || s.ProtectedFolders[1] != "mappers" {
		t.Errorf("ProtectedFolders = %v", s.ProtectedFolders)
	}
}

func TestProtector_SymlinkedBase(t *testing.T) {
	root := t.TempDir()
	real := filepath.Join(root, "real")
	if err := os.MkdirAll(filepath.Join(real, "services"), 0o750); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	p := ward.NewFolderProtector(link, []string{"services"})
	if !p.IsProtectedPath(filepath.Join(real, "services", "f.txt")) {
		t.Error("real path under symlinked base should be protected")
	}
	if !p.IsProtectedPath(filepath.Join(link, "services", "f.txt")) {
		t.Error("symlinked path should be protected")
	}
}
