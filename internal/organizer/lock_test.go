package organizer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"dorg/internal/faults"
	"dorg/internal/logging"
	"dorg/internal/testsupport"
)

func TestLockPathIsStablePerDirectory(t *testing.T) {
	dir := t.TempDir()
	first, err := lockPath(dir)
	if err != nil {
		t.Fatalf("lockPath: %v", err)
	}
	second, err := lockPath(filepath.Join(dir, "."))
	if err != nil {
		t.Fatalf("lockPath: %v", err)
	}
	if first != second {
		t.Fatalf("lock path differs for the same directory: %q vs %q", first, second)
	}
	other, err := lockPath(t.TempDir())
	if err != nil {
		t.Fatalf("lockPath: %v", err)
	}
	if other == first {
		t.Fatal("different directories share a lock path")
	}
	if !strings.HasPrefix(filepath.Base(first), "dorg-") || filepath.Ext(first) != ".lock" {
		t.Fatalf("unexpected lock file name %q", first)
	}
}

func TestRunFailsWhileLockHeld(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	path, err := lockPath(cfg.BaseDir)
	if err != nil {
		t.Fatalf("lockPath: %v", err)
	}
	holder := flock.New(path)
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("TryLock: locked=%v err=%v", locked, err)
	}
	t.Cleanup(func() { _ = holder.Unlock() })

	_, err = New(cfg, logging.NewNop()).Run(context.Background())
	if !errors.Is(err, faults.ErrLocked) || !faults.Fatal(err) {
		t.Fatalf("expected fatal lock error, got %v", err)
	}
}

func TestRunReleasesLock(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	org := New(cfg, logging.NewNop())
	for i := range 2 {
		if _, err := org.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
}
