package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/wardsec/ward/internal/application"
	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/domain/assistant"
	"github.com/wardsec/ward/internal/domain/ward"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	server, err := NewServer(t.TempDir(), root)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server, root
}

func TestServerWardHandlers(t *testing.T) {
	server, root := newTestServer(t)
	ctx := context.Background()

	out, err := server.handleStatus(ctx, PathArgs{})
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if report := out.(*application.StatusReport); report.Warded {
		t.Fatal("expected unwarded root")
	}

	if _, err := server.handlePlant(ctx, PlantArgs{Description: "Test policy"}); err != nil {
		t.Fatalf("plant: %v", err)
	}
	if _, err := server.handlePlant(ctx, PlantArgs{}); err == nil {
		t.Fatal("expected error on double plant")
	}

	out, err = server.handleStatus(ctx, PathArgs{})
	if err != nil {
		t.Fatalf("status after plant: %v", err)
	}
	if report := out.(*application.StatusReport); !report.Warded {
		t.Fatal("expected warded root after plant")
	}

	if _, err := server.handleValidate(ctx, PathArgs{}); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if _, err := server.handleProtect(ctx, ProtectArgs{Folders: []string{"secrets"}}); err != nil {
		t.Fatalf("protect: %v", err)
	}
	out, err = server.handleCheck(ctx, CheckArgs{Target: filepath.Join(root, "secrets", "key.pem")})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if info := out.(*ward.ProtectionInfo); !info.Protected {
		t.Fatal("expected secrets to be protected")
	}

	if _, err := server.handleLock(ctx, GateArgs{Message: "release freeze"}); err != nil {
		t.Fatalf("lock: %v", err)
	}
	out, err = server.handleStatus(ctx, PathArgs{})
	if err != nil {
		t.Fatalf("status after lock: %v", err)
	}
	if report := out.(*application.StatusReport); report.GateState != "locked" {
		t.Fatalf("gate state = %q, want locked", report.GateState)
	}
	if _, err := server.handleUnlock(ctx, GateArgs{}); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := server.handleUnlock(ctx, GateArgs{}); err == nil {
		t.Fatal("expected error on double unlock")
	}
}

func TestServerFavoritesAndIndexHandlers(t *testing.T) {
	server, root := newTestServer(t)
	ctx := context.Background()

	if _, err := server.handlePlant(ctx, PlantArgs{}); err != nil {
		t.Fatalf("plant: %v", err)
	}

	if _, err := server.handleFavoritesAdd(ctx, FavoriteAddArgs{Path: root, Description: "main repo"}); err != nil {
		t.Fatalf("favorites add: %v", err)
	}
	if _, err := server.handleAddComment(ctx, CommentArgs{Path: root, Comment: "reviewed"}); err != nil {
		t.Fatalf("add comment: %v", err)
	}
	out, err := server.handleFavoritesList(ctx, struct{}{})
	if err != nil {
		t.Fatalf("favorites list: %v", err)
	}
	favorites := out.([]application.FavoriteView)
	if len(favorites) != 1 || len(favorites[0].RecentComments) != 1 {
		t.Fatalf("favorites = %+v, want one entry with one comment", favorites)
	}

	if _, err := server.handleIndex(ctx, PathArgs{}); err != nil {
		t.Fatalf("index: %v", err)
	}
	if _, err := server.handleStats(ctx, PathArgs{}); err != nil {
		t.Fatalf("stats: %v", err)
	}

	if _, err := server.handleBookmarkAdd(ctx, BookmarkAddArgs{Path: root, Category: "work"}); err != nil {
		t.Fatalf("bookmark add: %v", err)
	}
	out, err = server.handleBookmarkList(ctx, BookmarkListArgs{Category: "work"})
	if err != nil {
		t.Fatalf("bookmark list: %v", err)
	}
	if bookmarks := out.([]application.BookmarkView); len(bookmarks) != 1 {
		t.Fatalf("bookmarks = %+v, want one entry", bookmarks)
	}

	if _, err := server.handleLabelAdd(ctx, LabelAddArgs{Path: root, Labels: []string{"backend"}}); err != nil {
		t.Fatalf("label add: %v", err)
	}
	out, err = server.handleLabelList(ctx, LabelListArgs{Label: "backend"})
	if err != nil {
		t.Fatalf("label list: %v", err)
	}
	if folders := out.([]application.LabeledFolder); len(folders) != 1 {
		t.Fatalf("labeled folders = %+v, want one entry", folders)
	}

	// indexing and bookmarking feed the recent-access log
	out, err = server.handleRecent(ctx, RecentArgs{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	actions := map[string]bool{}
	for _, e := range out.([]domain.AccessEntry) {
		actions[e.Action] = true
	}
	if !actions["index"] || !actions["bookmark_add"] {
		t.Fatalf("recent actions = %v, want index and bookmark_add", actions)
	}
}

func TestServerHandlerValidation(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	if _, err := server.handleCheck(ctx, CheckArgs{}); err == nil {
		t.Fatal("expected error for missing target")
	}
	if _, err := server.handleSearch(ctx, SearchArgs{}); err == nil {
		t.Fatal("expected error for empty query")
	}
	if _, err := server.handleProtect(ctx, ProtectArgs{}); err == nil {
		t.Fatal("expected error for empty folder list")
	}
	if _, err := server.handleInterpret(ctx, InterpretArgs{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestServerAssistantHandlers(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	out, err := server.handleAssistants(ctx, struct{}{})
	if err != nil {
		t.Fatalf("assistants: %v", err)
	}
	menu := out.(map[string]any)
	if menu["active"] != "" {
		t.Fatalf("active = %v, want empty", menu["active"])
	}

	out, err = server.handleInterpret(ctx, InterpretArgs{Request: "please lock this directory"})
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	intent := out.(assistant.Intent)
	if intent.Action != "lock" {
		t.Fatalf("action = %q, want lock", intent.Action)
	}
}
