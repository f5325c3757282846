package timestamp_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dorg/internal/config"
	"dorg/internal/faults"
	"dorg/internal/timestamp"
)

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveModifiedUsesModTime(t *testing.T) {
	path := writeFile(t, "a.txt")
	want := time.Date(2022, time.June, 15, 10, 30, 0, 0, time.UTC)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatal(err)
	}

	got, err := timestamp.NewResolver().Resolve(path, nil, config.Modified)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveModifiedUsesSuppliedInfo(t *testing.T) {
	path := writeFile(t, "a.txt")
	info, err := os.Lstat(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	got, err := timestamp.NewResolver().Resolve(path, info, config.Modified)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !got.Equal(info.ModTime()) {
		t.Fatalf("got %v, want %v", got, info.ModTime())
	}
}

func TestResolveMissingFileIsIOError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err := timestamp.NewResolver().Resolve(missing, nil, config.Modified)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if errors.Is(err, faults.ErrCreationTimeUnavailable) {
		t.Fatalf("missing file must not classify as creation time unavailable: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected underlying cause to be preserved, got %v", err)
	}
}

func TestResolveCreatedUsesBirthTimeProbe(t *testing.T) {
	path := writeFile(t, "a.txt")
	want := time.Date(2023, time.November, 5, 23, 59, 0, 0, time.UTC)
	resolver := timestamp.NewResolver(timestamp.WithBirthTime(func(string, fs.FileInfo) (time.Time, error) {
		return want, nil
	}))

	got, err := resolver.Resolve(path, nil, config.Created)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveCreatedPropagatesUnavailable(t *testing.T) {
	path := writeFile(t, "a.txt")
	resolver := timestamp.NewResolver(timestamp.WithBirthTime(func(p string, _ fs.FileInfo) (time.Time, error) {
		return time.Time{}, faults.Wrap(faults.ErrCreationTimeUnavailable, "test", "probe", p, nil)
	}))

	_, err := resolver.Resolve(path, nil, config.Created)
	if !errors.Is(err, faults.ErrCreationTimeUnavailable) {
		t.Fatalf("expected creation time unavailable, got %v", err)
	}
	if got := faults.Kind(err); got != "CreationTimeUnavailable" {
		t.Fatalf("unexpected kind %q", got)
	}
}

func TestResolveCreatedOnHostPlatform(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "born.txt")
	before := time.Now().Add(-time.Minute)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	supported, err := timestamp.SupportsCreationTime(dir)
	if err != nil {
		t.Fatalf("SupportsCreationTime returned error: %v", err)
	}

	got, err := timestamp.NewResolver().Resolve(path, nil, config.Created)
	if !supported {
		if !errors.Is(err, faults.ErrCreationTimeUnavailable) {
			t.Fatalf("expected creation time unavailable on unsupported filesystem, got %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Before(before) || got.After(time.Now().Add(time.Minute)) {
		t.Fatalf("birth time %v outside expected window", got)
	}
}

func TestDateOfConvertsToUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want timestamp.Date
	}{
		{
			name: "utc",
			in:   time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC),
			want: timestamp.Date{Year: 2024, Month: time.March, Day: 7},
		},
		{
			name: "positive offset crosses back a day",
			in:   time.Date(2024, time.January, 1, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			want: timestamp.Date{Year: 2023, Month: time.December, Day: 31},
		},
		{
			name: "negative offset crosses forward a day",
			in:   time.Date(2023, time.November, 4, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: timestamp.Date{Year: 2023, Month: time.November, Day: 5},
		},
		{
			name: "leap day",
			in:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			want: timestamp.Date{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name: "epoch",
			in:   time.Unix(0, 0),
			want: timestamp.Date{Year: 1970, Month: time.January, Day: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timestamp.DateOf(tt.in); got != tt.want {
				t.Fatalf("DateOf(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
