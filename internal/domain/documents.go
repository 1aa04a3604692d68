package domain

// Document types persisted as JSON under ~/.ward. Each store is a single
// document read and rewritten whole; there is no partial update and no
// locking (last writer wins across concurrent CLI runs).

// WardStatus is a snapshot of a directory's protection at the time a
// favorite was recorded or listed.
type WardStatus struct {
	Protected bool   `json:"protected"`
	Policy    string `json:"policy,omitempty"`
	Readable  bool   `json:"readable,omitempty"`
}

// Comment is one annotation attached to a favorite.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"comment"`
	Timestamp string `json:"timestamp"`
}

// FavoriteEntry is one favorited directory with its metadata.
type FavoriteEntry struct {
	Description  string     `json:"description"`
	AddedDate    string     `json:"added_date"`
	LastAccessed string     `json:"last_accessed"`
	AccessCount  int        `json:"access_count"`
	Comments     []Comment  `json:"comments"`
	WardStatus   WardStatus `json:"ward_status"`
}

// FavoritesDocument is the on-disk shape of favorites.json.
type FavoritesDocument struct {
	Favorites map[string]FavoriteEntry `json:"favorites"`
	Metadata  map[string]string        `json:"metadata"`
}

// NewFavoritesDocument returns an empty, usable favorites document.
func NewFavoritesDocument() *FavoritesDocument {
	return &FavoritesDocument{
		Favorites: make(map[string]FavoriteEntry),
		Metadata:  make(map[string]string),
	}
}

// FileInfo is one indexed file.
type FileInfo struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Modified  string `json:"modified"`
	Extension string `json:"extension"`
}

// DirInfo is one indexed sub-directory.
type DirInfo struct {
	Name     string `json:"name"`
	Modified string `json:"modified"`
}

// ContentInfo summarizes a scanned folder.
type ContentInfo struct {
	Files        []FileInfo     `json:"files"`
	Directories  []DirInfo      `json:"directories"`
	FileTypes    map[string]int `json:"file_types"`
	TotalSize    int64          `json:"total_size"`
	LastModified string         `json:"last_modified,omitempty"`
}

// FolderRecord is one indexed folder.
type FolderRecord struct {
	IndexedAt string      `json:"indexed_at"`
	Content   ContentInfo `json:"content"`
}

// LabelEntry holds the labels attached to one folder path.
type LabelEntry struct {
	Labels      []string `json:"labels"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	AISuggested bool     `json:"ai_suggested"`
}

// IndexDocument is the on-disk shape of folder_index.json.
type IndexDocument struct {
	Folders     map[string]FolderRecord `json:"folders"`
	Labels      map[string]LabelEntry   `json:"labels,omitempty"`
	LastUpdated string                  `json:"last_updated,omitempty"`
}

// NewIndexDocument returns an empty, usable index document.
func NewIndexDocument() *IndexDocument {
	return &IndexDocument{
		Folders: make(map[string]FolderRecord),
		Labels:  make(map[string]LabelEntry),
	}
}

// Bookmark is one categorized folder bookmark.
type Bookmark struct {
	Path        string   `json:"path"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	AccessCount int      `json:"access_count"`
}

// BookmarksDocument is the on-disk shape of bookmarks.json.
type BookmarksDocument struct {
	Categories map[string][]string `json:"categories"`
	Bookmarks  map[string]Bookmark `json:"bookmarks"`
}

// NewBookmarksDocument returns an empty, usable bookmarks document.
func NewBookmarksDocument() *BookmarksDocument {
	return &BookmarksDocument{
		Categories: make(map[string][]string),
		Bookmarks:  make(map[string]Bookmark),
	}
}

// AccessEntry is one row of the recent-access log.
type AccessEntry struct {
	Path       string `json:"path"`
	Action     string `json:"action"`
	Timestamp  string `json:"timestamp"`
	FolderName string `json:"folder_name"`
}

// RecentDocument is the on-disk shape of recent_access.json.
type RecentDocument struct {
	AccessLog []AccessEntry `json:"access_log"`
}
