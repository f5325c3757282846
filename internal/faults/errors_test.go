package faults_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dorg/internal/faults"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := faults.Wrap(faults.ErrMove, "organizer", "rename", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, faults.ErrMove) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organizer", "rename", "failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := faults.Wrap(faults.ErrPlanning, "", "", "", nil)
	if !errors.Is(err, faults.ErrPlanning) {
		t.Fatalf("expected planning marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "organizer failure") {
		t.Fatalf("expected default detail, got %q", err.Error())
	}
}

func TestMetadataKindsMatchMetadataMarker(t *testing.T) {
	for _, marker := range []error{faults.ErrCreationTimeUnavailable, faults.ErrIO} {
		err := faults.Wrap(marker, "timestamp", "resolve", "x", nil)
		if !errors.Is(err, faults.ErrMetadata) {
			t.Fatalf("expected %v to match ErrMetadata", err)
		}
	}
	if errors.Is(faults.ErrIO, faults.ErrCreationTimeUnavailable) {
		t.Fatal("io error must not classify as creation time unavailable")
	}
}

func TestFatalAndKind(t *testing.T) {
	tests := []struct {
		marker error
		fatal  bool
		kind   string
	}{
		{faults.ErrConfiguration, true, "ConfigurationError"},
		{faults.ErrDirectoryRead, true, "DirectoryReadError"},
		{faults.ErrLocked, true, "Locked"},
		{faults.ErrCreationTimeUnavailable, false, "CreationTimeUnavailable"},
		{faults.ErrIO, false, "IoError"},
		{faults.ErrPlanning, false, "PlanningError"},
		{faults.ErrMove, false, "MoveError"},
	}
	for _, tt := range tests {
		err := faults.Wrap(tt.marker, "component", "op", "msg", errors.New("cause"))
		if got := faults.Fatal(err); got != tt.fatal {
			t.Errorf("Fatal(%v) = %v, want %v", tt.marker, got, tt.fatal)
		}
		if got := faults.Kind(err); got != tt.kind {
			t.Errorf("Kind(%v) = %q, want %q", tt.marker, got, tt.kind)
		}
	}
	if faults.Fatal(nil) {
		t.Fatal("nil error must not be fatal")
	}
	if got := faults.Kind(errors.New("plain")); got != "Error" {
		t.Fatalf("unexpected kind for plain error: %q", got)
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	if _, ok := faults.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id on empty context")
	}
	ctx = faults.WithRunID(ctx, "run-1")
	ctx = faults.WithPath(ctx, "/tmp/a.txt")
	if id, ok := faults.RunIDFromContext(ctx); !ok || id != "run-1" {
		t.Fatalf("unexpected run id %q %v", id, ok)
	}
	if path, ok := faults.PathFromContext(ctx); !ok || path != "/tmp/a.txt" {
		t.Fatalf("unexpected path %q %v", path, ok)
	}
	if faults.WithPath(ctx, "") != ctx {
		t.Fatal("empty path should return original context")
	}
}
