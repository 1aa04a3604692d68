package ward

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Match types reported by ProtectionInfo.
const (
	MatchDirect    = "direct_match"
	MatchSubfolder = "subfolder"
)

// ProtectionInfo explains why a path is, or is not, protected.
type ProtectionInfo struct {
	Protected    bool   `json:"protected"`
	Folder       string `json:"folder,omitempty"`
	Type         string `json:"type,omitempty"`
	RelativePath string `json:"relative_path,omitempty"`
	Message      string `json:"message"`
}

// ProtectionSummary is a pure read of the protector's configuration.
type ProtectionSummary struct {
	BasePath         string   `json:"base_path"`
	ProtectedFolders []string `json:"protected_folders"`
	ProtectedPaths   []string `json:"protected_paths"`
	TotalProtected   int      `json:"total_protected"`
}

// FolderProtector classifies paths against a set of declared protected
// sub-folders of a base directory. All paths are canonicalized once at
// construction; the protector holds no other state. Declared folders need
// not exist on disk: protection is declarative.
type FolderProtector struct {
	basePath       string
	folders        []string
	protectedPaths []string
}

// canonicalize resolves p to an absolute, symlink-resolved form. When
// resolution fails (missing path, permission denied) it degrades to the
// best-effort absolute form rather than returning an error.
func canonicalize(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	// Resolve as much of the path as exists so a declared-but-absent folder
	// under a symlinked base still compares correctly.
	dir, base := filepath.Split(abs)
	if dir != "" && dir != abs {
		if resolvedDir, err := filepath.EvalSymlinks(filepath.Clean(dir)); err == nil {
			return filepath.Join(resolvedDir, base)
		}
	}
	return filepath.Clean(abs)
}

// NewFolderProtector builds a protector for basePath and the declared folder
// names, which are resolved relative to basePath. Construction never fails.
func NewFolderProtector(basePath string, folders []string) *FolderProtector {
	base := canonicalize(basePath)
	paths := make([]string, len(folders))
	for i, folder := range folders {
		paths[i] = canonicalize(filepath.Join(base, folder))
	}
	return &FolderProtector{
		basePath:       base,
		folders:        append([]string(nil), folders...),
		protectedPaths: paths,
	}
}

// isWithin reports whether target equals root or lies under it, comparing
// path segments rather than string prefixes.
func isWithin(target, root string) bool {
	if target == root {
		return true
	}
	rel, err := filepath.Rel(root, target)
	if err != nil {
		// Non-relatable (different volume): not protected.
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// IsProtectedPath reports whether path equals, or is a descendant of, any
// declared protected folder.
func (p *FolderProtector) IsProtectedPath(path string) bool {
	target := canonicalize(path)
	for _, protected := range p.protectedPaths {
		if isWithin(target, protected) {
			return true
		}
	}
	return false
}

// ProtectionInfo reports which declared folder matched and how. The first
// declared folder whose resolved path contains the target wins.
func (p *FolderProtector) ProtectionInfo(path string) ProtectionInfo {
	target := canonicalize(path)

	for i, protected := range p.protectedPaths {
		if target == protected {
			return ProtectionInfo{
				Protected: true,
				Folder:    p.folders[i],
				Type:      MatchDirect,
				Message:   fmt.Sprintf("Direct match with protected folder: %s", p.folders[i]),
			}
		}
		if isWithin(target, protected) {
			rel, err := filepath.Rel(protected, target)
			if err != nil {
				continue
			}
			return ProtectionInfo{
				Protected:    true,
				Folder:       p.folders[i],
				Type:         MatchSubfolder,
				RelativePath: rel,
				Message:      fmt.Sprintf("Path is within protected folder: %s/%s", p.folders[i], rel),
			}
		}
	}

	return ProtectionInfo{
		Protected: false,
		Message:   "Path is not within any protected folder",
	}
}

// BasePath returns the canonical base directory.
func (p *FolderProtector) BasePath() string {
	return p.basePath
}

// ProtectedPaths returns the resolved absolute protected paths.
func (p *FolderProtector) ProtectedPaths() []string {
	return append([]string(nil), p.protectedPaths...)
}

// Summary returns the protector's configuration for display.
func (p *FolderProtector) Summary() ProtectionSummary {
	return ProtectionSummary{
		BasePath:         p.basePath,
		ProtectedFolders: append([]string(nil), p.folders...),
		ProtectedPaths:   p.ProtectedPaths(),
		TotalProtected:   len(p.folders),
	}
}
