// Package wiring assembles the infrastructure and application layers.
package wiring

import (
	"github.com/wardsec/ward/internal/infrastructure/config"
	"github.com/wardsec/ward/internal/infrastructure/storage"
)

// Workspace bundles the core infrastructure dependencies: the marker-file
// repository, the user-level home store, and the user config.
type Workspace struct {
	Repo   *storage.WardFileRepository
	Home   *storage.HomeStore
	Config *config.UserConfig
}

// NewWorkspace opens the workspace. homeDir overrides ~/.ward, mainly for
// tests; pass "" for the default.
func NewWorkspace(homeDir string) (*Workspace, error) {
	home, err := storage.NewHomeStore(homeDir)
	if err != nil {
		return nil, err
	}

	// a missing or unreadable user config is not fatal
	userCfg, err := config.Load(home.Dir())
	if err != nil || userCfg == nil {
		userCfg = &config.UserConfig{}
	}

	return &Workspace{
		Repo:   storage.NewWardFileRepository(),
		Home:   home,
		Config: userCfg,
	}, nil
}

// SaveConfig persists the workspace's user config.
func (w *Workspace) SaveConfig() error {
	return config.Save(w.Home.Dir(), w.Config)
}
