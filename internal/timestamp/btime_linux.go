//go:build linux

package timestamp

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"

	"dorg/internal/faults"
)

func platformBirthTime(path string, _ fs.FileInfo) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil {
		if statxUnsupported(err) {
			return time.Time{}, faults.Wrap(faults.ErrCreationTimeUnavailable, "timestamp", "statx", path, err)
		}
		return time.Time{}, faults.Wrap(faults.ErrIO, "timestamp", "statx", path, err)
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, faults.Wrap(faults.ErrCreationTimeUnavailable, "timestamp", "statx", path+": filesystem does not record birth time", nil)
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}

// SupportsCreationTime reports whether the filesystem holding dir records
// birth time.
func SupportsCreationTime(dir string) (bool, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, dir, 0, unix.STATX_BTIME, &stx); err != nil {
		if statxUnsupported(err) {
			return false, nil
		}
		return false, faults.Wrap(faults.ErrIO, "timestamp", "probe birth time", dir, err)
	}
	return stx.Mask&unix.STATX_BTIME != 0, nil
}

// statxUnsupported classifies kernels and filesystems without statx support.
// Only consulted when the call itself fails; a successful call is judged by
// its result mask.
func statxUnsupported(err error) bool {
	return errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EOPNOTSUPP)
}
