package watch

import (
	"path/filepath"
	"strings"
)

// IgnoreFilter drops event paths the monitor should never flag: hidden
// entries and editor scratch files.
type IgnoreFilter struct {
	Patterns []string
}

// DefaultIgnores covers common editor and VCS noise.
var DefaultIgnores = []string{"*.swp", "*.swx", "*.tmp", "*~", "4913"}

func NewIgnoreFilter(extra ...string) *IgnoreFilter {
	return &IgnoreFilter{Patterns: append(append([]string{}, DefaultIgnores...), extra...)}
}

// Ignored reports whether path should be dropped.
func (f *IgnoreFilter) Ignored(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, pattern := range f.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}
