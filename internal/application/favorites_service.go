package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wardsec/ward/internal/domain"
)

type FavoritesService struct {
	home domain.HomeRepository
	repo domain.WardRepository
}

func NewFavoritesService(home domain.HomeRepository, repo domain.WardRepository) *FavoritesService {
	return &FavoritesService{home: home, repo: repo}
}

// FavoriteView is one listed favorite with its refreshed ward status and
// newest comments.
type FavoriteView struct {
	Path           string            `json:"path"`
	Description    string            `json:"description"`
	AddedDate      string            `json:"added_date"`
	LastAccessed   string            `json:"last_accessed"`
	AccessCount    int               `json:"access_count"`
	WardStatus     domain.WardStatus `json:"ward_status"`
	RecentComments []domain.Comment  `json:"recent_comments"`
	Exists         bool              `json:"exists"`
}

// wardStatus re-reads a path's protection at listing time so the snapshot
// stored at add time never goes stale in the output.
func (s *FavoritesService) wardStatus(path string) domain.WardStatus {
	if !s.repo.HasWard(path) {
		return domain.WardStatus{Protected: false}
	}
	policy, err := s.repo.ReadPolicy(path)
	if err != nil {
		return domain.WardStatus{Protected: true, Readable: false}
	}
	return domain.WardStatus{Protected: true, Policy: policy, Readable: true}
}

// Add records a warded directory as a favorite. The path must exist and
// carry a marker file.
func (s *FavoritesService) Add(path, description string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%s: %w", abs, domain.ErrPathMissing)
	}
	status := s.wardStatus(abs)
	if !status.Protected {
		return fmt.Errorf("%s: %w", abs, domain.ErrNotWarded)
	}

	doc, err := s.home.LoadFavorites()
	if err != nil {
		return err
	}
	now := time.Now().Format(time.RFC3339)
	doc.Favorites[abs] = domain.FavoriteEntry{
		Description:  description,
		AddedDate:    now,
		LastAccessed: now,
		Comments:     []domain.Comment{},
		WardStatus:   status,
	}
	doc.Metadata["last_updated"] = now
	return s.home.SaveFavorites(doc)
}

// Remove drops a path from the favorites.
func (s *FavoritesService) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	doc, err := s.home.LoadFavorites()
	if err != nil {
		return err
	}
	if _, ok := doc.Favorites[abs]; !ok {
		return fmt.Errorf("%s: %w", abs, domain.ErrNotFavorite)
	}
	delete(doc.Favorites, abs)
	doc.Metadata["last_updated"] = time.Now().Format(time.RFC3339)
	return s.home.SaveFavorites(doc)
}

// List returns all favorites sorted by last access, newest first, each with
// a refreshed ward status and up to its 3 newest comments.
func (s *FavoritesService) List() ([]FavoriteView, error) {
	doc, err := s.home.LoadFavorites()
	if err != nil {
		return nil, err
	}

	views := make([]FavoriteView, 0, len(doc.Favorites))
	for path, entry := range doc.Favorites {
		comments := append([]domain.Comment(nil), entry.Comments...)
		sort.Slice(comments, func(i, j int) bool {
			return comments[i].Timestamp > comments[j].Timestamp
		})
		if len(comments) > 3 {
			comments = comments[:3]
		}

		_, statErr := os.Stat(path)
		views = append(views, FavoriteView{
			Path:           path,
			Description:    entry.Description,
			AddedDate:      entry.AddedDate,
			LastAccessed:   entry.LastAccessed,
			AccessCount:    entry.AccessCount,
			WardStatus:     s.wardStatus(path),
			RecentComments: comments,
			Exists:         statErr == nil,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].LastAccessed > views[j].LastAccessed
	})
	return views, nil
}

// Comment appends an annotation to a favorited directory.
func (s *FavoritesService) Comment(path, text, author string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	doc, err := s.home.LoadFavorites()
	if err != nil {
		return err
	}
	entry, ok := doc.Favorites[abs]
	if !ok {
		return fmt.Errorf("%s: %w", abs, domain.ErrNotFavorite)
	}
	if author == "" {
		author = "AI"
	}
	entry.Comments = append(entry.Comments, domain.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	doc.Favorites[abs] = entry
	doc.Metadata["last_updated"] = time.Now().Format(time.RFC3339)
	return s.home.SaveFavorites(doc)
}

// RecordAccess bumps a favorite's access counter and timestamp. Paths not
// in the favorites are ignored.
func (s *FavoritesService) RecordAccess(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	doc, err := s.home.LoadFavorites()
	if err != nil {
		return err
	}
	entry, ok := doc.Favorites[abs]
	if !ok {
		return nil
	}
	entry.LastAccessed = time.Now().Format(time.RFC3339)
	entry.AccessCount++
	doc.Favorites[abs] = entry
	return s.home.SaveFavorites(doc)
}
