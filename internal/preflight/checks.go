package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dorg/internal/timestamp"
)

type accessMode int

const (
	accessRead accessMode = iota
	accessWrite
)

var checkAccess = platformAccess

// CheckDirectoryAccess verifies that the directory exists and can be listed
// and traversed. Write access is checked separately by CheckDirectoryWritable
// because a read-only base can still have files moved into existing
// subdirectories.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := checkAccess(path, accessRead); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckDirectoryWritable reports whether new entries can be created in path.
func CheckDirectoryWritable(name, path string) Result {
	if err := checkAccess(path, accessWrite); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not writable (%v); moves that need new directories here will fail", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", path)}
}

// CheckCreationTime reports whether the filesystem holding dir records
// birth times.
func CheckCreationTime(name, dir string) Result {
	supported, err := timestamp.SupportsCreationTime(dir)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("probe failed (%v)", err)}
	}
	if !supported {
		return Result{Name: name, Detail: "not recorded on this platform or filesystem; files will be skipped (try sort=modified)"}
	}
	return Result{Name: name, Passed: true, Detail: "recorded"}
}
