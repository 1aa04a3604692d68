package application

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/wardsec/ward/internal/domain"
)

// maxAccessLog caps the recent-access log so the store cannot grow without
// bound.
const maxAccessLog = 1000

// Search scoring weights. Matches are additive per hit.
const (
	scoreFolderName = 10
	scoreFileName   = 5
	scoreDirName    = 4
	scoreFileType   = 3
)

type IndexService struct {
	home domain.HomeRepository
	repo domain.WardRepository
}

func NewIndexService(home domain.HomeRepository, repo domain.WardRepository) *IndexService {
	return &IndexService{home: home, repo: repo}
}

// SearchResult is one scored hit from Search.
type SearchResult struct {
	Path       string   `json:"path"`
	IndexedAt  string   `json:"indexed_at"`
	Matches    []string `json:"matches"`
	Score      int      `json:"score"`
	TotalFiles int      `json:"total_files"`
	TotalDirs  int      `json:"total_dirs"`
	TotalSize  int64    `json:"total_size"`
}

// BookmarkView is one bookmark with its registry id.
type BookmarkView struct {
	ID string `json:"id"`
	domain.Bookmark
}

// FolderStats summarizes an indexed folder.
type FolderStats struct {
	Path             string         `json:"path"`
	TotalFiles       int            `json:"total_files"`
	TotalDirectories int            `json:"total_directories"`
	TotalSize        int64          `json:"total_size"`
	FileTypes        map[string]int `json:"file_types"`
	LastModified     string         `json:"last_modified,omitempty"`
	IndexedAt        string         `json:"indexed_at"`
}

// LabeledFolder is one path with its attached labels.
type LabeledFolder struct {
	Path        string   `json:"path"`
	Labels      []string `json:"labels"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// LabelSuggestions carries the static label vocabulary plus content-derived
// suggestions for one folder.
type LabelSuggestions struct {
	CommonLabels     []string            `json:"common_labels"`
	SemanticPatterns map[string][]string `json:"semantic_patterns"`
	Suggested        []string            `json:"ai_suggested,omitempty"`
}

var commonLabels = []string{
	"frontend", "backend", "api", "database", "auth", "config",
	"utils", "services", "microservice", "components", "lib",
	"tests", "docs", "scripts", "deploy", "monitoring",
	"cache", "queue", "storage", "security", "logging",
}

var semanticPatterns = map[string][]string{
	"frontend": {"react", "vue", "angular", "svelte", "ui", "css", "scss"},
	"backend":  {"api", "server", "routes", "controllers", "services"},
	"database": {"models", "schema", "migration", "seeds", "queries"},
	"auth":     {"jwt", "oauth", "login", "register", "session", "passport"},
	"config":   {"env", "settings", "constants", "webpack", "babel"},
	"utils":    {"helper", "common", "shared", "core", "base"},
	"tests":    {"spec", "test", "mock", "fixture", "coverage"},
}

func (s *IndexService) requireWarded(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	if !s.repo.HasWard(abs) {
		return "", fmt.Errorf("%s: %w", abs, domain.ErrNotWarded)
	}
	return abs, nil
}

// scanFolder collects the indexable view of one directory. Hidden entries
// are skipped; permission errors truncate the scan silently.
func scanFolder(path string) domain.ContentInfo {
	content := domain.ContentInfo{
		Files:       []domain.FileInfo{},
		Directories: []domain.DirInfo{},
		FileTypes:   map[string]int{},
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return content
	}

	var newest time.Time
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}

		if entry.IsDir() {
			content.Directories = append(content.Directories, domain.DirInfo{
				Name:     entry.Name(),
				Modified: info.ModTime().Format(time.RFC3339),
			})
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		content.Files = append(content.Files, domain.FileInfo{
			Name:      entry.Name(),
			Size:      info.Size(),
			Modified:  info.ModTime().Format(time.RFC3339),
			Extension: ext,
		})
		content.TotalSize += info.Size()
		content.FileTypes[ext]++
	}

	if !newest.IsZero() {
		content.LastModified = newest.Format(time.RFC3339)
	}
	return content
}

// Index scans a warded directory and records it in the folder index.
func (s *IndexService) Index(path string) error {
	abs, err := s.requireWarded(path)
	if err != nil {
		return err
	}
	doc, err := s.home.LoadIndex()
	if err != nil {
		return err
	}
	doc.Folders[abs] = domain.FolderRecord{
		IndexedAt: time.Now().Format(time.RFC3339),
		Content:   scanFolder(abs),
	}
	doc.LastUpdated = time.Now().Format(time.RFC3339)
	return s.home.SaveIndex(doc)
}

// Search scores indexed folders against query. searchIn narrows the match
// surface to name, files, directories, or types; "all" searches everything.
func (s *IndexService) Search(query, searchIn string, limit int) ([]SearchResult, error) {
	if searchIn == "" {
		searchIn = "all"
	}
	if limit <= 0 {
		limit = 20
	}
	doc, err := s.home.LoadIndex()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	ext := q
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	results := []SearchResult{}
	for path, record := range doc.Folders {
		hit := SearchResult{
			Path:      path,
			IndexedAt: record.IndexedAt,
			Matches:   []string{},
		}
		name := filepath.Base(path)
		content := record.Content

		if searchIn == "all" || searchIn == "name" {
			if strings.Contains(strings.ToLower(name), q) {
				hit.Score += scoreFolderName
				hit.Matches = append(hit.Matches, "Folder name: "+name)
			}
		}
		if searchIn == "all" || searchIn == "files" {
			for _, file := range content.Files {
				if strings.Contains(strings.ToLower(file.Name), q) {
					hit.Score += scoreFileName
					hit.Matches = append(hit.Matches, "File: "+file.Name)
				}
			}
		}
		if searchIn == "all" || searchIn == "types" {
			if count, ok := content.FileTypes[ext]; ok {
				hit.Score += scoreFileType
				hit.Matches = append(hit.Matches, fmt.Sprintf("File type: %s (%d files)", ext, count))
			}
		}
		if searchIn == "all" || searchIn == "directories" {
			for _, dir := range content.Directories {
				if strings.Contains(strings.ToLower(dir.Name), q) {
					hit.Score += scoreDirName
					hit.Matches = append(hit.Matches, "Directory: "+dir.Name)
				}
			}
		}

		if hit.Score > 0 {
			hit.TotalFiles = len(content.Files)
			hit.TotalDirs = len(content.Directories)
			hit.TotalSize = content.TotalSize
			results = append(results, hit)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// bookmarkID builds the registry key {category}_{name}, lowercased with
// spaces collapsed to underscores.
func bookmarkID(category, name string) string {
	return strings.ToLower(strings.ReplaceAll(category+"_"+name, " ", "_"))
}

// AddBookmark records a warded directory under a named category.
func (s *IndexService) AddBookmark(path, category, name, description string, tags []string) (string, error) {
	abs, err := s.requireWarded(path)
	if err != nil {
		return "", err
	}
	if category == "" {
		category = "default"
	}
	if name == "" {
		name = filepath.Base(abs)
	}
	if tags == nil {
		tags = []string{}
	}

	doc, err := s.home.LoadBookmarks()
	if err != nil {
		return "", err
	}
	id := bookmarkID(category, name)
	doc.Bookmarks[id] = domain.Bookmark{
		Path:        abs,
		Name:        name,
		Description: description,
		Category:    category,
		Tags:        tags,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	if !slices.Contains(doc.Categories[category], id) {
		doc.Categories[category] = append(doc.Categories[category], id)
	}
	if err := s.home.SaveBookmarks(doc); err != nil {
		return "", err
	}
	return id, nil
}

// Bookmarks lists bookmarks, newest first, optionally filtered by category
// and by a required tag subset.
func (s *IndexService) Bookmarks(category string, tags []string) ([]BookmarkView, error) {
	doc, err := s.home.LoadBookmarks()
	if err != nil {
		return nil, err
	}

	views := []BookmarkView{}
	for id, bm := range doc.Bookmarks {
		if category != "" && bm.Category != category {
			continue
		}
		if !hasAllTags(bm.Tags, tags) {
			continue
		}
		views = append(views, BookmarkView{ID: id, Bookmark: bm})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt > views[j].CreatedAt
	})
	return views, nil
}

// Categories lists the known bookmark categories.
func (s *IndexService) Categories() ([]string, error) {
	doc, err := s.home.LoadBookmarks()
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(doc.Categories))
	for category := range doc.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

// RecordAccess appends to the recent-access log and bumps the matching
// bookmark's counter. The log keeps at most maxAccessLog entries.
func (s *IndexService) RecordAccess(path, action string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if action == "" {
		action = "access"
	}

	recent, err := s.home.LoadRecent()
	if err != nil {
		return err
	}
	recent.AccessLog = append(recent.AccessLog, domain.AccessEntry{
		Path:       abs,
		Action:     action,
		Timestamp:  time.Now().Format(time.RFC3339),
		FolderName: filepath.Base(abs),
	})
	if len(recent.AccessLog) > maxAccessLog {
		recent.AccessLog = recent.AccessLog[len(recent.AccessLog)-maxAccessLog:]
	}
	if err := s.home.SaveRecent(recent); err != nil {
		return err
	}

	bookmarks, err := s.home.LoadBookmarks()
	if err != nil {
		return err
	}
	for id, bm := range bookmarks.Bookmarks {
		if bm.Path == abs {
			bm.AccessCount++
			bookmarks.Bookmarks[id] = bm
			return s.home.SaveBookmarks(bookmarks)
		}
	}
	return nil
}

// Recent returns access entries inside the window, newest first. Entries
// whose directory no longer carries a ward are skipped.
func (s *IndexService) Recent(hours, limit int) ([]domain.AccessEntry, error) {
	if hours <= 0 {
		hours = 24
	}
	if limit <= 0 {
		limit = 20
	}
	recent, err := s.home.LoadRecent()
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	entries := []domain.AccessEntry{}
	for i := len(recent.AccessLog) - 1; i >= 0; i-- {
		entry := recent.AccessLog[i]
		ts, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil || ts.Before(cutoff) {
			break
		}
		if s.repo.HasWard(entry.Path) {
			entries = append(entries, entry)
		}
		if len(entries) >= limit {
			break
		}
	}
	return entries, nil
}

// Stats summarizes a warded folder, indexing it first when it has never
// been indexed.
func (s *IndexService) Stats(path string) (*FolderStats, error) {
	abs, err := s.requireWarded(path)
	if err != nil {
		return nil, err
	}
	doc, err := s.home.LoadIndex()
	if err != nil {
		return nil, err
	}
	record, ok := doc.Folders[abs]
	if !ok {
		if err := s.Index(abs); err != nil {
			return nil, err
		}
		if doc, err = s.home.LoadIndex(); err != nil {
			return nil, err
		}
		record = doc.Folders[abs]
	}

	return &FolderStats{
		Path:             abs,
		TotalFiles:       len(record.Content.Files),
		TotalDirectories: len(record.Content.Directories),
		TotalSize:        record.Content.TotalSize,
		FileTypes:        record.Content.FileTypes,
		LastModified:     record.Content.LastModified,
		IndexedAt:        record.IndexedAt,
	}, nil
}

// AddLabel attaches labels to a warded folder, skipping duplicates, and
// returns the folder's full label set.
func (s *IndexService) AddLabel(path string, labels []string, description string) ([]string, error) {
	abs, err := s.requireWarded(path)
	if err != nil {
		return nil, err
	}
	doc, err := s.home.LoadIndex()
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	entry, ok := doc.Labels[abs]
	if !ok {
		entry = domain.LabelEntry{Labels: []string{}, CreatedAt: now}
	}
	for _, label := range labels {
		if label != "" && !slices.Contains(entry.Labels, label) {
			entry.Labels = append(entry.Labels, label)
		}
	}
	if description != "" {
		entry.Description = description
	}
	entry.UpdatedAt = now
	doc.Labels[abs] = entry

	if err := s.home.SaveIndex(doc); err != nil {
		return nil, err
	}
	return entry.Labels, nil
}

// LabeledFolders lists labeled paths, optionally only those carrying label.
func (s *IndexService) LabeledFolders(label string) ([]LabeledFolder, error) {
	doc, err := s.home.LoadIndex()
	if err != nil {
		return nil, err
	}

	folders := []LabeledFolder{}
	for path, entry := range doc.Labels {
		if label != "" && !slices.Contains(entry.Labels, label) {
			continue
		}
		folders = append(folders, LabeledFolder{
			Path:        path,
			Labels:      entry.Labels,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
			UpdatedAt:   entry.UpdatedAt,
		})
	}
	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Path < folders[j].Path
	})
	return folders, nil
}

// SuggestLabels derives label candidates for a folder from the semantic
// pattern table plus file-extension heuristics over its indexed content.
func (s *IndexService) SuggestLabels(path string) (*LabelSuggestions, error) {
	suggestions := &LabelSuggestions{
		CommonLabels:     commonLabels,
		SemanticPatterns: semanticPatterns,
	}
	if path == "" {
		return suggestions, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	doc, err := s.home.LoadIndex()
	if err != nil {
		return nil, err
	}
	record, ok := doc.Folders[abs]
	if !ok {
		return suggestions, nil
	}

	content := record.Content
	folderName := strings.ToLower(filepath.Base(abs))
	fileNames := make([]string, 0, len(content.Files))
	extensions := map[string]bool{}
	for _, file := range content.Files {
		fileNames = append(fileNames, strings.ToLower(file.Name))
		extensions[file.Extension] = true
	}

	suggested := []string{}
	push := func(label string) {
		if !slices.Contains(suggested, label) {
			suggested = append(suggested, label)
		}
	}

	for _, label := range sortedKeys(semanticPatterns) {
		patterns := semanticPatterns[label]
		matched := false
		for _, pattern := range patterns {
			if strings.Contains(folderName, pattern) {
				matched = true
				break
			}
		}
		if !matched {
		files:
			for _, name := range fileNames {
				for _, pattern := range patterns {
					if strings.Contains(name, pattern) {
						matched = true
						break files
					}
				}
			}
		}
		if matched {
			push(label)
		}
	}

	if extensions[".js"] || extensions[".ts"] {
		if slices.Contains(fileNames, "package.json") {
			push("nodejs")
		}
		for _, name := range fileNames {
			if strings.Contains(name, "react") || strings.Contains(name, "vue") || strings.Contains(name, "angular") {
				push("frontend")
				break
			}
		}
	}
	if extensions[".py"] {
		push("python")
		if slices.Contains(fileNames, "requirements.txt") || slices.Contains(fileNames, "setup.py") {
			push("python-project")
		}
	}
	if extensions[".go"] {
		push("golang")
	}
	if extensions[".rs"] {
		push("rust")
	}

	if len(suggested) > 10 {
		suggested = suggested[:10]
	}
	suggestions.Suggested = suggested
	return suggestions, nil
}

// Cleanup drops access-log entries older than the given number of days.
func (s *IndexService) Cleanup(days int) error {
	if days <= 0 {
		days = 30
	}
	recent, err := s.home.LoadRecent()
	if err != nil {
		return err
	}
	cutoff := time.Now().AddDate(0, 0, -days).Format(time.RFC3339)

	kept := recent.AccessLog[:0]
	for _, entry := range recent.AccessLog {
		if entry.Timestamp > cutoff {
			kept = append(kept, entry)
		}
	}
	recent.AccessLog = kept
	return s.home.SaveRecent(recent)
}

func hasAllTags(have, want []string) bool {
	for _, tag := range want {
		if !slices.Contains(have, tag) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
