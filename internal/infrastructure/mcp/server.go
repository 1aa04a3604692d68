// Package mcp exposes ward operations to Model Context Protocol clients.
package mcp

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/wardsec/ward/internal/application"
	"github.com/wardsec/ward/internal/infrastructure/wiring"
)

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// Server wires ward's application services behind MCP tools.
type Server struct {
	mcpServer    *mcp.Server
	wardSvc      *application.WardService
	favoritesSvc *application.FavoritesService
	indexSvc     *application.IndexService
	assistantSvc *application.AssistantService
	root         string
}

// mcpErr returns a user-friendly error for MCP clients.
// Internal details are omitted — only the friendly message is returned.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

// NewServer builds a server over the store at homeDir. root is the default
// directory for tools called without an explicit path.
func NewServer(homeDir, root string) (*Server, error) {
	services, err := wiring.BuildAppServices(homeDir)
	if err != nil {
		return nil, fmt.Errorf("build services: %w", err)
	}

	info := mcp.ServerInfo{
		Name:    "ward",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Ward MCP Server"),
			mcp.WithDescription("Ward exposes marker-file directory protection, favorites, and the folder index to MCP clients."),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use tools to inspect ward status, check folder protection before writing, and manage favorites and bookmarks."),
		),
		wardSvc:      services.Ward,
		favoritesSvc: services.Favorites,
		indexSvc:     services.Index,
		assistantSvc: services.Assistant,
		root:         root,
	}

	s.registerTools()
	s.registerResources()
	return s, nil
}

// path resolves a tool argument path, defaulting to the server root.
func (s *Server) path(arg string) string {
	if arg == "" {
		return s.root
	}
	return arg
}

type PathArgs struct {
	Path string `json:"path,omitempty" jsonschema:"description=Directory to operate on (defaults to the server root)"`
}

type PlantArgs struct {
	Path        string `json:"path,omitempty" jsonschema:"description=Directory to plant the ward in"`
	Description string `json:"description,omitempty" jsonschema:"description=Policy description"`
}

type GateArgs struct {
	Path    string `json:"path,omitempty" jsonschema:"description=Directory whose ward to transition"`
	Message string `json:"message,omitempty" jsonschema:"description=Reason recorded in the ward description"`
}

type CheckArgs struct {
	Path   string `json:"path,omitempty" jsonschema:"description=Warded base directory"`
	Target string `json:"target" jsonschema:"description=Path to test against the protected folder list"`
}

type ProtectArgs struct {
	Path    string   `json:"path,omitempty" jsonschema:"description=Warded directory"`
	Folders []string `json:"folders" jsonschema:"description=Folder names to protect"`
}

type FavoriteAddArgs struct {
	Path        string `json:"path" jsonschema:"description=Warded directory to favorite"`
	Description string `json:"description,omitempty" jsonschema:"description=Short description"`
}

type CommentArgs struct {
	Path    string `json:"path" jsonschema:"description=Favorited directory"`
	Comment string `json:"comment" jsonschema:"description=Comment text"`
	Author  string `json:"author,omitempty" jsonschema:"description=Comment author (defaults to AI)"`
}

type SearchArgs struct {
	Query    string `json:"query" jsonschema:"description=Search term"`
	SearchIn string `json:"search_in,omitempty" jsonschema:"description=Surface: all, name, files, directories or types"`
	Limit    int    `json:"limit,omitempty" jsonschema:"description=Maximum results (default 20)"`
}

type BookmarkAddArgs struct {
	Path        string   `json:"path" jsonschema:"description=Warded directory to bookmark"`
	Category    string   `json:"category,omitempty" jsonschema:"description=Bookmark category (default default)"`
	Name        string   `json:"name,omitempty" jsonschema:"description=Bookmark name (defaults to the folder name)"`
	Description string   `json:"description,omitempty" jsonschema:"description=Short description"`
	Tags        []string `json:"tags,omitempty" jsonschema:"description=Tags"`
}

type BookmarkListArgs struct {
	Category string   `json:"category,omitempty" jsonschema:"description=Filter by category"`
	Tags     []string `json:"tags,omitempty" jsonschema:"description=Require these tags"`
}

type RecentArgs struct {
	Hours int `json:"hours,omitempty" jsonschema:"description=Look-back window in hours (default 24)"`
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum entries (default 10)"`
}

type LabelAddArgs struct {
	Path        string   `json:"path" jsonschema:"description=Warded directory to label"`
	Labels      []string `json:"labels" jsonschema:"description=Labels to attach"`
	Description string   `json:"description,omitempty" jsonschema:"description=Short description"`
}

type LabelListArgs struct {
	Label string `json:"label,omitempty" jsonschema:"description=Filter by one label"`
}

type InterpretArgs struct {
	Request string `json:"request" jsonschema:"description=Natural-language request to interpret"`
}

func (s *Server) registerTools() {
	// Tool: ward_status
	s.mcpServer.Tool("ward_status").
		Description("Get the ward status of a directory: warded or not, gate state, protected folders").
		Handler(s.handleStatus)

	// Tool: ward_info
	s.mcpServer.Tool("ward_info").
		Description("Get the full ward report for a directory including the marker file content").
		Handler(s.handleInfo)

	// Tool: ward_check
	s.mcpServer.Tool("ward_check").
		Description("Check whether a target path falls under a warded directory's folder protection. Call this before modifying files.").
		Handler(s.handleCheck)

	// Tool: ward_validate
	s.mcpServer.Tool("ward_validate").
		Description("Validate that a directory's ward carries a complete policy (whitelist and blacklist)").
		Handler(s.handleValidate)

	// Tool: ward_plant
	s.mcpServer.Tool("ward_plant").
		Description("Plant a password-protected ward in a directory").
		Handler(s.handlePlant)

	// Tool: ward_lock
	s.mcpServer.Tool("ward_lock").
		Description("Lock a directory. Unwarded directories are planted first, then locked.").
		Handler(s.handleLock)

	// Tool: ward_unlock
	s.mcpServer.Tool("ward_unlock").
		Description("Unlock a previously locked directory").
		Handler(s.handleUnlock)

	// Tool: ward_protect
	s.mcpServer.Tool("ward_protect").
		Description("Add folders to a ward's protected list").
		Handler(s.handleProtect)

	// Tool: ward_unprotect
	s.mcpServer.Tool("ward_unprotect").
		Description("Remove folders from a ward's protected list").
		Handler(s.handleUnprotect)

	// Tool: ward_favorites_list
	s.mcpServer.Tool("ward_favorites_list").
		Description("List favorite warded directories with their recent comments").
		Handler(s.handleFavoritesList)

	// Tool: ward_favorites_add
	s.mcpServer.Tool("ward_favorites_add").
		Description("Add a warded directory to favorites").
		Handler(s.handleFavoritesAdd)

	// Tool: ward_favorites_comment
	s.mcpServer.Tool("ward_favorites_comment").
		Description("Attach a comment to a favorited directory").
		Handler(s.handleAddComment)

	// Tool: ward_index
	s.mcpServer.Tool("ward_index").
		Description("Index a warded directory's contents for search").
		Handler(s.handleIndex)

	// Tool: ward_search
	s.mcpServer.Tool("ward_search").
		Description("Search indexed directories by folder name, file names, directory names, or file type").
		Handler(s.handleSearch)

	// Tool: ward_stats
	s.mcpServer.Tool("ward_stats").
		Description("Get index statistics for a warded directory").
		Handler(s.handleStats)

	// Tool: ward_bookmark_add
	s.mcpServer.Tool("ward_bookmark_add").
		Description("Bookmark a warded directory under a named category").
		Handler(s.handleBookmarkAdd)

	// Tool: ward_bookmark_list
	s.mcpServer.Tool("ward_bookmark_list").
		Description("List bookmarks, optionally filtered by category and tags").
		Handler(s.handleBookmarkList)

	// Tool: ward_recent
	s.mcpServer.Tool("ward_recent").
		Description("List recently accessed warded directories").
		Handler(s.handleRecent)

	// Tool: ward_label_add
	s.mcpServer.Tool("ward_label_add").
		Description("Attach semantic labels to a warded directory").
		Handler(s.handleLabelAdd)

	// Tool: ward_label_list
	s.mcpServer.Tool("ward_label_list").
		Description("List labeled directories, optionally filtered by one label").
		Handler(s.handleLabelList)

	// Tool: ward_label_suggest
	s.mcpServer.Tool("ward_label_suggest").
		Description("Suggest labels for a directory based on its contents").
		Handler(s.handleLabelSuggest)

	// Tool: ward_assistant_menu
	s.mcpServer.Tool("ward_assistant_menu").
		Description("List configured AI assistant profiles and the active one").
		Handler(s.handleAssistants)

	// Tool: ward_interpret
	s.mcpServer.Tool("ward_interpret").
		Description("Interpret a natural-language request into a ward action").
		Handler(s.handleInterpret)
}

func (s *Server) handleStatus(ctx context.Context, args PathArgs) (any, error) {
	report, err := s.wardSvc.Status(s.path(args.Path))
	if err != nil {
		return nil, mcpErr("Unable to read ward status. Check that the path names an existing directory.")
	}
	return report, nil
}

func (s *Server) handleInfo(ctx context.Context, args PathArgs) (any, error) {
	info, err := s.wardSvc.Info(s.path(args.Path))
	if err != nil {
		return nil, mcpErr("Unable to read ward info. Check that the path names an existing directory.")
	}
	return info, nil
}

func (s *Server) handleCheck(ctx context.Context, args CheckArgs) (any, error) {
	if args.Target == "" {
		return nil, mcpErr("A target path is required.")
	}
	info, err := s.wardSvc.Check(s.path(args.Path), args.Target)
	if err != nil {
		return nil, mcpErr("Unable to check protection. Ensure the base directory is warded.")
	}
	return info, nil
}

func (s *Server) handleValidate(ctx context.Context, args PathArgs) (string, error) {
	if err := s.wardSvc.Validate(s.path(args.Path)); err != nil {
		return "", mcpErr("Ward policy is missing or incomplete. A valid ward needs both a whitelist and a blacklist.")
	}
	return "Ward policy is valid.", nil
}

func (s *Server) handlePlant(ctx context.Context, args PlantArgs) (any, error) {
	result, err := s.wardSvc.Plant(s.path(args.Path), args.Description, true)
	if err != nil {
		return nil, mcpErr("Unable to plant ward. The directory may already be warded or may not exist.")
	}
	return result, nil
}

func (s *Server) handleLock(ctx context.Context, args GateArgs) (any, error) {
	report, err := s.wardSvc.Lock(s.path(args.Path), args.Message)
	if err != nil {
		return nil, mcpErr("Unable to lock. The directory may already be locked.")
	}
	return report, nil
}

func (s *Server) handleUnlock(ctx context.Context, args GateArgs) (any, error) {
	report, err := s.wardSvc.Unlock(s.path(args.Path), args.Message)
	if err != nil {
		return nil, mcpErr("Unable to unlock. The directory may not be locked.")
	}
	return report, nil
}

func (s *Server) handleProtect(ctx context.Context, args ProtectArgs) (any, error) {
	if len(args.Folders) == 0 {
		return nil, mcpErr("At least one folder name is required.")
	}
	report, err := s.wardSvc.Protect(s.path(args.Path), args.Folders...)
	if err != nil {
		return nil, mcpErr("Unable to protect folders. Ensure the directory is warded.")
	}
	return report, nil
}

func (s *Server) handleUnprotect(ctx context.Context, args ProtectArgs) (any, error) {
	if len(args.Folders) == 0 {
		return nil, mcpErr("At least one folder name is required.")
	}
	report, err := s.wardSvc.Unprotect(s.path(args.Path), args.Folders...)
	if err != nil {
		return nil, mcpErr("Unable to unprotect folders. Ensure the directory is warded.")
	}
	return report, nil
}

func (s *Server) handleFavoritesList(ctx context.Context, args struct{}) (any, error) {
	favorites, err := s.favoritesSvc.List()
	if err != nil {
		return nil, mcpErr("Unable to list favorites.")
	}
	return favorites, nil
}

func (s *Server) handleFavoritesAdd(ctx context.Context, args FavoriteAddArgs) (string, error) {
	if err := s.favoritesSvc.Add(args.Path, args.Description); err != nil {
		return "", mcpErr("Unable to add favorite. The directory must exist and be warded.")
	}
	if err := s.favoritesSvc.RecordAccess(args.Path); err != nil {
		return "", mcpErr("Added, but recording the access failed.")
	}
	return fmt.Sprintf("Added %s to favorites.", args.Path), nil
}

func (s *Server) handleAddComment(ctx context.Context, args CommentArgs) (string, error) {
	if args.Comment == "" {
		return "", mcpErr("Comment text is required.")
	}
	if err := s.favoritesSvc.Comment(args.Path, args.Comment, args.Author); err != nil {
		return "", mcpErr("Unable to add comment. The directory must be a favorite.")
	}
	return "Comment added.", nil
}

func (s *Server) handleIndex(ctx context.Context, args PathArgs) (string, error) {
	path := s.path(args.Path)
	if err := s.indexSvc.Index(path); err != nil {
		return "", mcpErr("Unable to index. Ensure the directory is warded.")
	}
	if err := s.indexSvc.RecordAccess(path, "index"); err != nil {
		return "", mcpErr("Indexed, but recording the access failed.")
	}
	return fmt.Sprintf("Indexed %s.", path), nil
}

func (s *Server) handleSearch(ctx context.Context, args SearchArgs) (any, error) {
	if args.Query == "" {
		return nil, mcpErr("A search query is required.")
	}
	results, err := s.indexSvc.Search(args.Query, args.SearchIn, args.Limit)
	if err != nil {
		return nil, mcpErr("Search failed.")
	}
	return results, nil
}

func (s *Server) handleStats(ctx context.Context, args PathArgs) (any, error) {
	stats, err := s.indexSvc.Stats(s.path(args.Path))
	if err != nil {
		return nil, mcpErr("Unable to compute stats. Ensure the directory is warded.")
	}
	return stats, nil
}

func (s *Server) handleBookmarkAdd(ctx context.Context, args BookmarkAddArgs) (string, error) {
	id, err := s.indexSvc.AddBookmark(args.Path, args.Category, args.Name, args.Description, args.Tags)
	if err != nil {
		return "", mcpErr("Unable to add bookmark. The directory must exist and be warded.")
	}
	if err := s.indexSvc.RecordAccess(args.Path, "bookmark_add"); err != nil {
		return "", mcpErr("Bookmarked, but recording the access failed.")
	}
	return fmt.Sprintf("Bookmarked as %s.", id), nil
}

func (s *Server) handleBookmarkList(ctx context.Context, args BookmarkListArgs) (any, error) {
	bookmarks, err := s.indexSvc.Bookmarks(args.Category, args.Tags)
	if err != nil {
		return nil, mcpErr("Unable to list bookmarks.")
	}
	return bookmarks, nil
}

func (s *Server) handleRecent(ctx context.Context, args RecentArgs) (any, error) {
	entries, err := s.indexSvc.Recent(args.Hours, args.Limit)
	if err != nil {
		return nil, mcpErr("Unable to read recent access log.")
	}
	return entries, nil
}

func (s *Server) handleLabelAdd(ctx context.Context, args LabelAddArgs) (any, error) {
	if len(args.Labels) == 0 {
		return nil, mcpErr("At least one label is required.")
	}
	labels, err := s.indexSvc.AddLabel(args.Path, args.Labels, args.Description)
	if err != nil {
		return nil, mcpErr("Unable to add labels. Ensure the directory is warded.")
	}
	return labels, nil
}

func (s *Server) handleLabelList(ctx context.Context, args LabelListArgs) (any, error) {
	folders, err := s.indexSvc.LabeledFolders(args.Label)
	if err != nil {
		return nil, mcpErr("Unable to list labeled folders.")
	}
	return folders, nil
}

func (s *Server) handleLabelSuggest(ctx context.Context, args PathArgs) (any, error) {
	suggestions, err := s.indexSvc.SuggestLabels(s.path(args.Path))
	if err != nil {
		return nil, mcpErr("Unable to suggest labels. Check that the path names an existing directory.")
	}
	return suggestions, nil
}

func (s *Server) handleAssistants(ctx context.Context, args struct{}) (any, error) {
	profiles, err := s.assistantSvc.Profiles()
	if err != nil {
		return nil, mcpErr("Unable to list assistant profiles.")
	}
	active, err := s.assistantSvc.Active()
	if err != nil {
		return nil, mcpErr("Unable to read the active assistant.")
	}
	activeName := ""
	if active != nil {
		activeName = active.Name
	}
	return map[string]any{
		"profiles": profiles,
		"active":   activeName,
	}, nil
}

func (s *Server) handleInterpret(ctx context.Context, args InterpretArgs) (any, error) {
	if args.Request == "" {
		return nil, mcpErr("A request is required.")
	}
	intent, err := s.assistantSvc.Interpret(args.Request)
	if err != nil {
		return nil, mcpErr("Unable to interpret the request.")
	}
	return intent, nil
}

func (s *Server) Start() error {
	return s.StartStdio()
}

func (s *Server) StartStdio() error {
	return s.ServeStdio(context.Background())
}

func (s *Server) StartHTTP(addr string) error {
	return s.ServeHTTP(context.Background(), addr)
}

func (s *Server) StartWebSocket(addr string) error {
	return s.ServeWebSocket(context.Background(), addr)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}

func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	return mcp.ServeWebSocket(ctx, s.mcpServer, addr)
}
