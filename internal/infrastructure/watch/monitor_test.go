package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wardsec/ward/internal/domain/ward"
)

func TestPathDebouncer_CoalescesPerPath(t *testing.T) {
	var mu sync.Mutex
	counts := map[string]int{}
	d := NewPathDebouncer(50*time.Millisecond, func(path string) {
		mu.Lock()
		counts[path]++
		mu.Unlock()
	})
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger("/a")
		d.Trigger("/b")
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if counts["/a"] != 1 || counts["/b"] != 1 {
		t.Errorf("expected one callback per path, got %v", counts)
	}
}

func TestPathDebouncer_Stop(t *testing.T) {
	var count atomic.Int32
	d := NewPathDebouncer(50*time.Millisecond, func(string) {
		count.Add(1)
	})

	d.Trigger("/a")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if got := count.Load(); got != 0 {
		t.Errorf("expected 0 callbacks after stop, got %d", got)
	}
}

func TestIgnoreFilter(t *testing.T) {
	f := NewIgnoreFilter()

	tests := []struct {
		path    string
		ignored bool
	}{
		{"/project/services/auth.go", false},
		{"/project/.ward", true},
		{"/project/.git", true},
		{"/project/notes.swp", true},
		{"/project/build.tmp", true},
		{"/project/backup~", true},
		{"/project/README.md", false},
	}

	for _, tt := range tests {
		if got := f.Ignored(tt.path); got != tt.ignored {
			t.Errorf("Ignored(%q) = %v, want %v", tt.path, got, tt.ignored)
		}
	}
}

func TestMonitor_FlagsProtectedWrites(t *testing.T) {
	root := t.TempDir()
	protected := filepath.Join(root, "services")
	if err := os.Mkdir(protected, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "docs"), 0700); err != nil {
		t.Fatal(err)
	}

	protector := ward.NewFolderProtector(root, []string{"services"})

	hits := make(chan Hit, 16)
	monitor, err := NewMonitor(protector, 50*time.Millisecond, func(h Hit) {
		hits <- h
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := monitor.WatchRecursive(root); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = monitor.Run(ctx)
	}()

	// give the watcher a moment to arm
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(protected, "auth.go"), []byte("package auth"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "docs", "readme.md"), []byte("# docs"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case hit := <-hits:
		if hit.Info.Folder != "services" {
			t.Errorf("unexpected hit %+v", hit)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("expected a hit for the protected write")
	}

	// the unprotected write must not be flagged
	select {
	case hit := <-hits:
		if protector.IsProtectedPath(hit.Path) {
			break
		}
		t.Errorf("unexpected hit for unprotected path %+v", hit)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
