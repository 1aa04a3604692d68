package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wardsec/ward/internal/application"
	"github.com/wardsec/ward/internal/domain"
)

func seedFolder(t *testing.T, files map[string]string, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	for _, dir := range dirs {
		if err := os.Mkdir(filepath.Join(root, dir), 0700); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestIndexService_Index(t *testing.T) {
	root := seedFolder(t, map[string]string{
		"main.go":  "package main",
		"util.go":  "package main",
		"notes.md": "# notes",
		".hidden":  "skip me",
		"Makefile": "all:",
	}, "internal", ".git")
	repo := NewMockWardRepo()
	plantMock(t, repo, root)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	if err := service.Index(root); err != nil {
		t.Fatal(err)
	}

	record, ok := home.IndexDoc.Folders[root]
	if !ok {
		t.Fatal("expected folder in index")
	}
	content := record.Content
	if len(content.Files) != 4 {
		t.Errorf("expected 4 files (hidden skipped), got %d", len(content.Files))
	}
	if len(content.Directories) != 1 {
		t.Errorf("expected 1 directory (hidden skipped), got %d", len(content.Directories))
	}
	if content.FileTypes[".go"] != 2 {
		t.Errorf("expected 2 .go files, got %d", content.FileTypes[".go"])
	}
	if content.TotalSize == 0 || content.LastModified == "" {
		t.Errorf("expected size and last modified, got %+v", content)
	}
}

func TestIndexService_Index_RequiresWard(t *testing.T) {
	service := application.NewIndexService(&MockHome{}, NewMockWardRepo())
	if err := service.Index(t.TempDir()); !errors.Is(err, domain.ErrNotWarded) {
		t.Errorf("expected ErrNotWarded, got %v", err)
	}
}

func TestIndexService_Search(t *testing.T) {
	authRoot := seedFolder(t, map[string]string{
		"auth.go":  "package auth",
		"login.go": "package auth",
	}, "sessions")
	docsRoot := seedFolder(t, map[string]string{
		"guide.md": "# guide",
	})

	repo := NewMockWardRepo()
	plantMock(t, repo, authRoot)
	plantMock(t, repo, docsRoot)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	for _, root := range []string{authRoot, docsRoot} {
		if err := service.Index(root); err != nil {
			t.Fatal(err)
		}
	}

	results, err := service.Search("auth", "all", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// file name hit only; the temp dir name does not contain "auth"
	if results[0].Score != 5 {
		t.Errorf("expected file score 5, got %d", results[0].Score)
	}

	results, err = service.Search("go", "types", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Score != 3 {
		t.Errorf("expected one type hit with score 3, got %+v", results)
	}

	results, err = service.Search("sessions", "directories", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Score != 4 {
		t.Errorf("expected one directory hit with score 4, got %+v", results)
	}

	results, err = service.Search("nothing-matches", "all", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestIndexService_Bookmarks(t *testing.T) {
	root := seedFolder(t, map[string]string{"main.go": "package main"})
	repo := NewMockWardRepo()
	plantMock(t, repo, root)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	id, err := service.AddBookmark(root, "Work Projects", "API Server", "primary api", []string{"go", "api"})
	if err != nil {
		t.Fatal(err)
	}
	if id != "work_projects_api_server" {
		t.Errorf("unexpected bookmark id %q", id)
	}

	views, err := service.Bookmarks("Work Projects", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 || views[0].Name != "API Server" {
		t.Errorf("unexpected bookmarks %+v", views)
	}

	// tag filtering requires the full subset
	views, err = service.Bookmarks("", []string{"go", "api"})
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 {
		t.Errorf("expected tag subset match, got %d", len(views))
	}
	views, err = service.Bookmarks("", []string{"go", "rust"})
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 0 {
		t.Errorf("expected no match for missing tag, got %d", len(views))
	}

	categories, err := service.Categories()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 1 || categories[0] != "Work Projects" {
		t.Errorf("unexpected categories %v", categories)
	}
}

func TestIndexService_AddBookmark_RequiresWard(t *testing.T) {
	service := application.NewIndexService(&MockHome{}, NewMockWardRepo())
	if _, err := service.AddBookmark(t.TempDir(), "", "", "", nil); !errors.Is(err, domain.ErrNotWarded) {
		t.Errorf("expected ErrNotWarded, got %v", err)
	}
}

func TestIndexService_RecentAccess(t *testing.T) {
	warded := t.TempDir()
	unwarded := t.TempDir()
	repo := NewMockWardRepo()
	plantMock(t, repo, warded)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	if err := service.RecordAccess(warded, "status"); err != nil {
		t.Fatal(err)
	}
	if err := service.RecordAccess(unwarded, "access"); err != nil {
		t.Fatal(err)
	}

	entries, err := service.Recent(24, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected unwarded entry skipped, got %d entries", len(entries))
	}
	if entries[0].Path != warded || entries[0].Action != "status" {
		t.Errorf("unexpected entry %+v", entries[0])
	}

	// the scan stops at the first entry older than the window
	home.RecentDoc.AccessLog[0].Timestamp = time.Now().Add(-48 * time.Hour).Format(time.RFC3339)
	entries, err = service.Recent(24, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected stale entries dropped, got %+v", entries)
	}
}

func TestIndexService_RecordAccess_BumpsBookmark(t *testing.T) {
	root := seedFolder(t, map[string]string{"main.go": "x"})
	repo := NewMockWardRepo()
	plantMock(t, repo, root)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	id, err := service.AddBookmark(root, "default", "", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := service.RecordAccess(root, "access"); err != nil {
		t.Fatal(err)
	}
	if got := home.BookmarksDoc.Bookmarks[id].AccessCount; got != 1 {
		t.Errorf("expected access count 1, got %d", got)
	}
}

func TestIndexService_Stats_AutoIndexes(t *testing.T) {
	root := seedFolder(t, map[string]string{"a.py": "print()", "b.py": "print()"})
	repo := NewMockWardRepo()
	plantMock(t, repo, root)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	stats, err := service.Stats(root)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalFiles != 2 || stats.FileTypes[".py"] != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.IndexedAt == "" {
		t.Error("expected auto-index to record a timestamp")
	}
}

func TestIndexService_Labels(t *testing.T) {
	root := seedFolder(t, map[string]string{"main.go": "x"})
	repo := NewMockWardRepo()
	plantMock(t, repo, root)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	labels, err := service.AddLabel(root, []string{"backend", "api", "backend"}, "service layer")
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 2 {
		t.Errorf("expected deduplicated labels, got %v", labels)
	}

	folders, err := service.LabeledFolders("backend")
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 1 || folders[0].Description != "service layer" {
		t.Errorf("unexpected labeled folders %+v", folders)
	}

	folders, err = service.LabeledFolders("frontend")
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 0 {
		t.Errorf("expected no frontend folders, got %d", len(folders))
	}
}

func TestIndexService_SuggestLabels(t *testing.T) {
	root := seedFolder(t, map[string]string{
		"server.py":        "print()",
		"requirements.txt": "flask",
	})
	repo := NewMockWardRepo()
	plantMock(t, repo, root)
	home := &MockHome{}
	service := application.NewIndexService(home, repo)

	if err := service.Index(root); err != nil {
		t.Fatal(err)
	}
	suggestions, err := service.SuggestLabels(root)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{}
	for _, label := range suggestions.Suggested {
		want[label] = true
	}
	if !want["python"] || !want["python-project"] {
		t.Errorf("expected python suggestions, got %v", suggestions.Suggested)
	}
	if !want["backend"] {
		// server.py matches the backend pattern "server"
		t.Errorf("expected backend suggestion, got %v", suggestions.Suggested)
	}
	if len(suggestions.CommonLabels) == 0 {
		t.Error("expected the common label vocabulary")
	}
}

func TestIndexService_Cleanup(t *testing.T) {
	home := &MockHome{RecentDoc: &domain.RecentDocument{
		AccessLog: []domain.AccessEntry{
			{Path: "/old", Timestamp: time.Now().AddDate(0, 0, -60).Format(time.RFC3339)},
			{Path: "/new", Timestamp: time.Now().Format(time.RFC3339)},
		},
	}}
	service := application.NewIndexService(home, NewMockWardRepo())

	if err := service.Cleanup(30); err != nil {
		t.Fatal(err)
	}
	if len(home.RecentDoc.AccessLog) != 1 || home.RecentDoc.AccessLog[0].Path != "/new" {
		t.Errorf("unexpected log after cleanup %+v", home.RecentDoc.AccessLog)
	}
}
