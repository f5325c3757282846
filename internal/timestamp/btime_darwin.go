//go:build darwin

package timestamp

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"dorg/internal/faults"
)

func platformBirthTime(path string, _ fs.FileInfo) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return time.Time{}, faults.Wrap(faults.ErrIO, "timestamp", "lstat", path, err)
	}
	sec, nsec := st.Birthtimespec.Unix()
	if sec == 0 && nsec == 0 {
		return time.Time{}, faults.Wrap(faults.ErrCreationTimeUnavailable, "timestamp", "lstat", path+": filesystem does not record birth time", nil)
	}
	return time.Unix(sec, nsec), nil
}

// SupportsCreationTime reports whether the filesystem holding dir records
// birth time.
func SupportsCreationTime(dir string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(dir, &st); err != nil {
		return false, faults.Wrap(faults.ErrIO, "timestamp", "probe birth time", dir, err)
	}
	sec, nsec := st.Birthtimespec.Unix()
	return sec != 0 || nsec != 0, nil
}
