package application_test

import (
	"fmt"
	"path/filepath"

	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/domain/assistant"
	"github.com/wardsec/ward/internal/domain/ward"
)

type MockWardRepo struct {
	Configs   map[string]ward.Config
	SaveError error
}

func NewMockWardRepo() *MockWardRepo {
	return &MockWardRepo{Configs: map[string]ward.Config{}}
}

func (m *MockWardRepo) HasWard(dir string) bool {
	_, ok := m.Configs[dir]
	return ok
}

func (m *MockWardRepo) LoadConfig(dir string) *ward.Config {
	cfg, ok := m.Configs[dir]
	if !ok {
		return nil
	}
	return &cfg
}

func (m *MockWardRepo) SaveConfig(dir string, cfg ward.Config) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Configs[dir] = cfg
	return nil
}

func (m *MockWardRepo) ReadPolicy(dir string) (string, error) {
	cfg, ok := m.Configs[dir]
	if !ok {
		return "", fmt.Errorf("no ward in %s", dir)
	}
	return ward.Generate(cfg), nil
}

func (m *MockWardRepo) WardPath(dir string) string {
	return filepath.Join(dir, ward.MarkerFile)
}

type MockVault struct {
	Passwords map[string]string
	SetError  error
}

func NewMockVault() *MockVault {
	return &MockVault{Passwords: map[string]string{}}
}

func (m *MockVault) Password(path string) (string, bool) {
	token, ok := m.Passwords[path]
	return token, ok
}

func (m *MockVault) SetPassword(path, token string) error {
	if m.SetError != nil {
		return m.SetError
	}
	m.Passwords[path] = token
	return nil
}

func (m *MockVault) RemovePassword(path string) error {
	delete(m.Passwords, path)
	return nil
}

func (m *MockVault) VaultPath() string { return "/mock/.ward/ward_passwords.json" }

type MockHome struct {
	FavoritesDoc *domain.FavoritesDocument
	IndexDoc     *domain.IndexDocument
	BookmarksDoc *domain.BookmarksDocument
	RecentDoc    *domain.RecentDocument
	SaveError    error
}

func (m *MockHome) LoadFavorites() (*domain.FavoritesDocument, error) {
	if m.FavoritesDoc == nil {
		m.FavoritesDoc = domain.NewFavoritesDocument()
	}
	return m.FavoritesDoc, nil
}

func (m *MockHome) SaveFavorites(doc *domain.FavoritesDocument) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.FavoritesDoc = doc
	return nil
}

func (m *MockHome) LoadIndex() (*domain.IndexDocument, error) {
	if m.IndexDoc == nil {
		m.IndexDoc = domain.NewIndexDocument()
	}
	return m.IndexDoc, nil
}

func (m *MockHome) SaveIndex(doc *domain.IndexDocument) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.IndexDoc = doc
	return nil
}

func (m *MockHome) LoadBookmarks() (*domain.BookmarksDocument, error) {
	if m.BookmarksDoc == nil {
		m.BookmarksDoc = domain.NewBookmarksDocument()
	}
	return m.BookmarksDoc, nil
}

func (m *MockHome) SaveBookmarks(doc *domain.BookmarksDocument) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.BookmarksDoc = doc
	return nil
}

func (m *MockHome) LoadRecent() (*domain.RecentDocument, error) {
	if m.RecentDoc == nil {
		m.RecentDoc = &domain.RecentDocument{}
	}
	return m.RecentDoc, nil
}

func (m *MockHome) SaveRecent(doc *domain.RecentDocument) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.RecentDoc = doc
	return nil
}

type MockProfiles struct {
	Assistants []assistant.Assistant
	ActiveName string
	SaveError  error
}

func (m *MockProfiles) LoadAssistants() ([]assistant.Assistant, error) {
	if len(m.Assistants) == 0 {
		m.Assistants = assistant.Defaults()
	}
	return m.Assistants, nil
}

func (m *MockProfiles) SaveAssistants(profiles []assistant.Assistant) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Assistants = profiles
	return nil
}

func (m *MockProfiles) ActiveAssistantName() (string, error) { return m.ActiveName, nil }

func (m *MockProfiles) SetActiveAssistantName(name string) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.ActiveName = name
	return nil
}
