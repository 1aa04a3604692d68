// Package storage implements the marker-file and home-store persistence.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/wardsec/ward/internal/domain/ward"
)

// WardFileRepository reads and writes .ward marker files. Reads go through
// a short retry loop to ride out transient filesystem errors.
type WardFileRepository struct {
	retryConfig retry.Config
}

func NewWardFileRepository() *WardFileRepository {
	return &WardFileRepository{
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// WardPath returns the marker file path for dir.
func (r *WardFileRepository) WardPath(dir string) string {
	return filepath.Join(dir, ward.MarkerFile)
}

// HasWard reports whether dir carries a marker file.
func (r *WardFileRepository) HasWard(dir string) bool {
	info, err := os.Stat(r.WardPath(dir))
	return err == nil && !info.IsDir()
}

// LoadConfig parses the marker file in dir, or returns nil when it is
// missing or unreadable.
func (r *WardFileRepository) LoadConfig(dir string) *ward.Config {
	return ward.ParseFile(r.WardPath(dir))
}

// SaveConfig writes the canonical marker file for dir with 0600 perms.
func (r *WardFileRepository) SaveConfig(dir string, cfg ward.Config) error {
	path := r.WardPath(dir)
	if err := os.WriteFile(path, []byte(ward.Generate(cfg)+"\n"), 0600); err != nil {
		return fmt.Errorf("write ward file: %w", err)
	}
	return nil
}

// ReadPolicy returns the raw marker text for display.
func (r *WardFileRepository) ReadPolicy(dir string) (string, error) {
	retryer := retry.New[string](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (string, error) {
		// #nosec G304 -- path is derived from the directory under inspection
		data, err := os.ReadFile(r.WardPath(dir))
		if err != nil {
			return "", fmt.Errorf("read ward file: %w", err)
		}
		return string(data), nil
	})
}
