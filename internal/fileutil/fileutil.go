package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// ErrPartialMove reports a cross-device move whose copy succeeded but whose
// source could not be removed. The file exists at both paths.
var ErrPartialMove = errors.New("source not removed after copy")

// Move renames src to dst without replacing an existing dst. When the paths
// are on different filesystems the file is copied with verification and the
// source removed afterwards, so a failure leaves the file in at least one
// location.
func Move(src, dst string) error {
	err := renameNoReplace(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	info, statErr := os.Lstat(src)
	if statErr != nil {
		return fmt.Errorf("stat source: %w", statErr)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cross-device move of non-regular file %s: %w", src, err)
	}
	if copyErr := CopyFileVerified(src, dst, info.Mode().Perm()); copyErr != nil {
		return copyErr
	}
	if chErr := os.Chtimes(dst, info.ModTime(), info.ModTime()); chErr != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("preserve modification time: %w", chErr)
	}
	if rmErr := os.Remove(src); rmErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrPartialMove, src, rmErr)
	}
	return nil
}

// renameWhenAbsent is the portable fallback for renameNoReplace. The check
// and the rename are two steps, so a concurrent writer can still slip in.
func renameWhenAbsent(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}

// CopyFileVerified streams src to a new file dst with SHA256 + size integrity
// verification. dst must not exist. Removes dst on any failure.
func CopyFileVerified(src, dst string, mode os.FileMode) (err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	if written != srcSize {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
