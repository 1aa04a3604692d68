package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/wardsec/ward/internal/domain"
	"github.com/wardsec/ward/internal/domain/assistant"
)

const (
	FavoritesFile       = "favorites.json"
	PasswordsFile       = "ward_passwords.json"
	IndexFile           = "folder_index.json"
	BookmarksFile       = "bookmarks.json"
	RecentFile          = "recent_access.json"
	AssistantsFile      = "ai_assistants.json"
	ActiveAssistantFile = "active_assistant.json"
)

const favoritesSchemaJSON = `{
  "type": "object",
  "required": ["favorites"],
  "properties": {
    "favorites": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "description": { "type": "string" },
          "added_date": { "type": "string" },
          "last_accessed": { "type": "string" },
          "access_count": { "type": "integer" },
          "comments": { "type": "array" },
          "ward_status": { "type": "object" }
        }
      }
    },
    "metadata": { "type": "object" }
  }
}`

const bookmarksSchemaJSON = `{
  "type": "object",
  "required": ["bookmarks"],
  "properties": {
    "categories": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": { "type": "string" }
      }
    },
    "bookmarks": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["path"],
        "properties": {
          "path": { "type": "string" },
          "name": { "type": "string" },
          "description": { "type": "string" },
          "category": { "type": "string" },
          "tags": { "type": "array", "items": { "type": "string" } },
          "created_at": { "type": "string" },
          "access_count": { "type": "integer" }
        }
      }
    }
  }
}`

var (
	favoritesSchemaLoader = gojsonschema.NewStringLoader(favoritesSchemaJSON)
	bookmarksSchemaLoader = gojsonschema.NewStringLoader(bookmarksSchemaJSON)
)

// HomeStore persists user-level state under the ward home directory
// (~/.ward by default). Corrupt or schema-invalid documents are replaced
// with fresh ones rather than failing the whole command.
type HomeStore struct {
	dir string
}

// NewHomeStore opens (creating if needed) the store rooted at dir. When dir
// is empty the user's ~/.ward is used.
func NewHomeStore(dir string) (*HomeStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".ward")
	}
	// G301: restrict the state directory to the owner
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create ward home: %w", err)
	}
	return &HomeStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *HomeStore) Dir() string {
	return s.dir
}

func (s *HomeStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON unmarshals name into out. Missing files and corrupt JSON both
// report ok=false so callers can start from a fresh document.
func (s *HomeStore) readJSON(name string, out any) (ok bool, err error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *HomeStore) writeJSON(name string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	// G306: user state is private
	if err := os.WriteFile(s.path(name), data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// validates raw JSON against a schema loader; any failure means "treat as
// corrupt", never an error surfaced to the caller.
func (s *HomeStore) validJSON(name string, schema gojsonschema.JSONLoader) bool {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return false
	}
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	return err == nil && result.Valid()
}

func (s *HomeStore) LoadFavorites() (*domain.FavoritesDocument, error) {
	doc := domain.NewFavoritesDocument()
	if !s.validJSON(FavoritesFile, favoritesSchemaLoader) {
		return doc, nil
	}
	ok, err := s.readJSON(FavoritesFile, doc)
	if err != nil {
		return nil, err
	}
	if !ok || doc.Favorites == nil {
		return domain.NewFavoritesDocument(), nil
	}
	return doc, nil
}

func (s *HomeStore) SaveFavorites(doc *domain.FavoritesDocument) error {
	return s.writeJSON(FavoritesFile, doc)
}

func (s *HomeStore) LoadIndex() (*domain.IndexDocument, error) {
	doc := domain.NewIndexDocument()
	ok, err := s.readJSON(IndexFile, doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.NewIndexDocument(), nil
	}
	if doc.Folders == nil {
		doc.Folders = map[string]domain.FolderRecord{}
	}
	if doc.Labels == nil {
		doc.Labels = map[string]domain.LabelEntry{}
	}
	return doc, nil
}

func (s *HomeStore) SaveIndex(doc *domain.IndexDocument) error {
	return s.writeJSON(IndexFile, doc)
}

func (s *HomeStore) LoadBookmarks() (*domain.BookmarksDocument, error) {
	doc := domain.NewBookmarksDocument()
	if !s.validJSON(BookmarksFile, bookmarksSchemaLoader) {
		return doc, nil
	}
	ok, err := s.readJSON(BookmarksFile, doc)
	if err != nil {
		return nil, err
	}
	if !ok || doc.Bookmarks == nil {
		return domain.NewBookmarksDocument(), nil
	}
	return doc, nil
}

func (s *HomeStore) SaveBookmarks(doc *domain.BookmarksDocument) error {
	return s.writeJSON(BookmarksFile, doc)
}

func (s *HomeStore) LoadRecent() (*domain.RecentDocument, error) {
	doc := &domain.RecentDocument{}
	ok, err := s.readJSON(RecentFile, doc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &domain.RecentDocument{}, nil
	}
	return doc, nil
}

func (s *HomeStore) SaveRecent(doc *domain.RecentDocument) error {
	return s.writeJSON(RecentFile, doc)
}

// Password returns the stored password token for dir. An unreadable vault
// behaves like an empty one.
func (s *HomeStore) Password(dir string) (string, bool) {
	passwords, err := s.loadPasswords()
	if err != nil {
		return "", false
	}
	token, ok := passwords[dir]
	return token, ok
}

func (s *HomeStore) SetPassword(dir, password string) error {
	passwords, err := s.loadPasswords()
	if err != nil {
		return err
	}
	passwords[dir] = password
	return s.writeJSON(PasswordsFile, passwords)
}

func (s *HomeStore) RemovePassword(dir string) error {
	passwords, err := s.loadPasswords()
	if err != nil {
		return err
	}
	if _, exists := passwords[dir]; !exists {
		return nil
	}
	delete(passwords, dir)
	return s.writeJSON(PasswordsFile, passwords)
}

func (s *HomeStore) VaultPath() string {
	return s.path(PasswordsFile)
}

func (s *HomeStore) loadPasswords() (map[string]string, error) {
	passwords := map[string]string{}
	if _, err := s.readJSON(PasswordsFile, &passwords); err != nil {
		return nil, err
	}
	if passwords == nil {
		passwords = map[string]string{}
	}
	return passwords, nil
}

// LoadAssistants returns the configured assistant profiles, seeding the
// defaults on first use.
func (s *HomeStore) LoadAssistants() ([]assistant.Assistant, error) {
	var profiles []assistant.Assistant
	ok, err := s.readJSON(AssistantsFile, &profiles)
	if err != nil {
		return nil, err
	}
	if !ok || len(profiles) == 0 {
		profiles = assistant.Defaults()
		if err := s.SaveAssistants(profiles); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (s *HomeStore) SaveAssistants(profiles []assistant.Assistant) error {
	return s.writeJSON(AssistantsFile, profiles)
}

type activeAssistant struct {
	Name string `json:"name"`
}

// ActiveAssistantName returns the selected assistant profile name, or ""
// when none has been chosen.
func (s *HomeStore) ActiveAssistantName() (string, error) {
	var active activeAssistant
	if _, err := s.readJSON(ActiveAssistantFile, &active); err != nil {
		return "", err
	}
	return active.Name, nil
}

func (s *HomeStore) SetActiveAssistantName(name string) error {
	return s.writeJSON(ActiveAssistantFile, activeAssistant{Name: name})
}
