package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	logadapter "github.com/bft-labs/sftype/internal/adapters/log"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNew_RequiresPath(t *testing.T) {
	if _, err := New(Config{}, func(context.Context) error { return nil }, logadapter.NewNoopLogger()); err == nil {
		t.Error("New() without path should fail")
	}
}

func TestWatcher_RunsInitiallyAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w, err := New(Config{Path: path, DebounceDelay: 100 * time.Millisecond}, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logadapter.NewNoopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	waitFor(t, func() bool { return calls.Load() == 1 })

	// a burst of writes collapses into one run
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(`{"name": "x"}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	waitFor(t, func() bool { return calls.Load() == 2 })

	// other files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d after unrelated write, want 2", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
	if w.Runs() != 2 {
		t.Errorf("Runs() = %d, want 2", w.Runs())
	}
}

func TestWatcher_KeepsGoingAfterFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.yaml")
	if err := os.WriteFile(path, []byte("nodes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w, err := New(Config{Path: path, DebounceDelay: 10 * time.Millisecond}, func(context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	}, logadapter.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Watch(ctx) }()

	waitFor(t, func() bool { return calls.Load() == 1 })
	if err := os.WriteFile(path, []byte("nodes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return calls.Load() >= 2 })
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "design.json")
	w, err := New(Config{Path: path}, func(context.Context) error { return nil }, logadapter.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(context.Background()); err == nil {
		t.Error("Watch() on missing directory should fail")
	}
}
