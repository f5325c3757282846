//go:build windows

package timestamp

import (
	"io/fs"
	"os"
	"syscall"
	"time"

	"dorg/internal/faults"
)

func platformBirthTime(path string, info fs.FileInfo) (time.Time, error) {
	if info == nil {
		stat, err := os.Lstat(path)
		if err != nil {
			return time.Time{}, faults.Wrap(faults.ErrIO, "timestamp", "stat", path, err)
		}
		info = stat
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok || attrs == nil {
		return time.Time{}, faults.Wrap(faults.ErrCreationTimeUnavailable, "timestamp", "stat", path+": no win32 attributes", nil)
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), nil
}

// SupportsCreationTime reports whether the filesystem holding dir records
// birth time. NTFS and ReFS always do.
func SupportsCreationTime(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return false, faults.Wrap(faults.ErrIO, "timestamp", "probe birth time", dir, err)
	}
	_, ok := info.Sys().(*syscall.Win32FileAttributeData)
	return ok, nil
}
