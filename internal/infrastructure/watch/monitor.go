package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wardsec/ward/internal/domain/ward"
)

// Hit is one flagged operation on a protected path. The monitor observes
// and reports; it never blocks the operation.
type Hit struct {
	Path string
	Op   string
	Info ward.ProtectionInfo
}

// Monitor watches a warded directory tree and flags events that land under
// a protected folder.
type Monitor struct {
	watcher   *fsnotify.Watcher
	protector *ward.FolderProtector
	ignore    *IgnoreFilter
	debounce  time.Duration
	onHit     func(Hit)
}

// NewMonitor creates a monitor classifying events through protector.
func NewMonitor(protector *ward.FolderProtector, debounce time.Duration, onHit func(Hit)) (*Monitor, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &Monitor{
		watcher:   w,
		protector: protector,
		ignore:    NewIgnoreFilter(),
		debounce:  debounce,
		onHit:     onHit,
	}, nil
}

// WatchRecursive adds a directory and all its subdirectories to the
// watcher. Hidden directories are skipped.
func (m *Monitor) WatchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if path != root && len(base) > 1 && base[0] == '.' {
			return filepath.SkipDir
		}
		if err := m.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run starts the event loop. It blocks until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	defer m.watcher.Close()

	// last seen op per path, reported after the debounce window
	var mu sync.Mutex
	lastOp := map[string]string{}
	debouncer := NewPathDebouncer(m.debounce, func(path string) {
		mu.Lock()
		op := lastOp[path]
		delete(lastOp, path)
		mu.Unlock()
		info := m.protector.ProtectionInfo(path)
		if info.Protected && m.onHit != nil {
			m.onHit(Hit{Path: path, Op: op, Info: info})
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			op := opName(event.Op)
			if op == "" || m.ignore.Ignored(event.Name) {
				continue
			}

			// watch new directories as they appear
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = m.WatchRecursive(event.Name)
				}
			}

			mu.Lock()
			lastOp[event.Name] = op
			mu.Unlock()
			debouncer.Trigger(event.Name)

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
