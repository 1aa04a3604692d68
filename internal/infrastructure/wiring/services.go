package wiring

import (
	"github.com/wardsec/ward/internal/application"
)

// AppServices exposes the application layer services wired together with a
// workspace.
type AppServices struct {
	Workspace *Workspace
	Ward      *application.WardService
	Favorites *application.FavoritesService
	Index     *application.IndexService
	Assistant *application.AssistantService
}

// BuildAppServices constructs the full service set. homeDir overrides the
// user-level store location; pass "" for ~/.ward.
func BuildAppServices(homeDir string) (*AppServices, error) {
	workspace, err := NewWorkspace(homeDir)
	if err != nil {
		return nil, err
	}

	return &AppServices{
		Workspace: workspace,
		Ward:      application.NewWardService(workspace.Repo, workspace.Home),
		Favorites: application.NewFavoritesService(workspace.Home, workspace.Repo),
		Index:     application.NewIndexService(workspace.Home, workspace.Repo),
		Assistant: application.NewAssistantService(workspace.Home),
	}, nil
}
