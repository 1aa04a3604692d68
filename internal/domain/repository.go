package domain

import "github.com/wardsec/ward/internal/domain/ward"

// WardRepository reads and writes .ward marker files.
type WardRepository interface {
	// HasWard reports whether dir carries a .ward marker file.
	HasWard(dir string) bool

	// LoadConfig parses the marker file in dir. It returns nil when the
	// file is missing or unreadable; callers treat nil as "not warded".
	LoadConfig(dir string) *ward.Config

	// SaveConfig writes the canonical marker file for dir.
	SaveConfig(dir string, cfg ward.Config) error

	// ReadPolicy returns the raw marker text for display.
	ReadPolicy(dir string) (string, error)

	// WardPath returns the marker file path for dir.
	WardPath(dir string) string
}

// PasswordVault stores the informational password tokens recorded at plant
// time. Tokens gate nothing cryptographically; they exist so removal needs
// deliberate manual intervention.
type PasswordVault interface {
	Password(path string) (string, bool)
	SetPassword(path, token string) error
	RemovePassword(path string) error
	VaultPath() string
}

// HomeRepository persists the JSON store documents under ~/.ward.
type HomeRepository interface {
	LoadFavorites() (*FavoritesDocument, error)
	SaveFavorites(doc *FavoritesDocument) error

	LoadIndex() (*IndexDocument, error)
	SaveIndex(doc *IndexDocument) error

	LoadBookmarks() (*BookmarksDocument, error)
	SaveBookmarks(doc *BookmarksDocument) error

	LoadRecent() (*RecentDocument, error)
	SaveRecent(doc *RecentDocument) error
}
