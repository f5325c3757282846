package walker

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"dorg/internal/faults"
)

// Entry is one filesystem entry discovered during traversal.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
	Info  fs.FileInfo
}

// Walk yields every entry below dir. Child directories are yielded before
// their contents and are only descended into when recursive is true.
func Walk(dir string, recursive bool) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		walkDir(dir, recursive, yield)
	}
}

// Collect drains Walk into a slice. It returns the entries read before the
// first error together with that error.
func Collect(dir string, recursive bool) ([]Entry, error) {
	var entries []Entry
	for entry, err := range Walk(dir, recursive) {
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// walkDir returns false once the consumer stops or an error was yielded.
func walkDir(dir string, recursive bool, yield func(Entry, error) bool) bool {
	children, err := os.ReadDir(dir)
	if err != nil {
		yield(Entry{Path: dir}, faults.Wrap(faults.ErrDirectoryRead, "walker", "read directory", dir, err))
		return false
	}
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		info, err := child.Info()
		if err != nil {
			yield(Entry{Path: path, Name: child.Name()}, faults.Wrap(faults.ErrDirectoryRead, "walker", "stat entry", path, err))
			return false
		}
		entry := Entry{Path: path, Name: child.Name(), IsDir: info.IsDir(), Info: info}
		if !yield(entry, nil) {
			return false
		}
		if entry.IsDir && recursive {
			if !walkDir(path, recursive, yield) {
				return false
			}
		}
	}
	return true
}
