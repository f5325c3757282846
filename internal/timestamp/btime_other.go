//go:build !linux && !darwin && !windows

package timestamp

import (
	"io/fs"
	"runtime"
	"time"

	"dorg/internal/faults"
)

func platformBirthTime(path string, _ fs.FileInfo) (time.Time, error) {
	return time.Time{}, faults.Wrap(faults.ErrCreationTimeUnavailable, "timestamp", "birth time", path+": not supported on "+runtime.GOOS, nil)
}

// SupportsCreationTime always reports false on platforms without a probe.
func SupportsCreationTime(string) (bool, error) {
	return false, nil
}
