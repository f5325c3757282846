package organizer

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"dorg/internal/faults"
)

type runLock struct {
	lock *flock.Flock
}

// acquireRunLock takes an exclusive advisory lock keyed by the absolute base
// directory. The lock file lives in the temp directory so it never becomes a
// file to organize.
func acquireRunLock(baseDir string) (*runLock, error) {
	path, err := lockPath(baseDir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "organizer", "lock", "resolve base directory", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, faults.Wrap(faults.ErrLocked, "organizer", "lock", path, err)
	}
	if !locked {
		return nil, faults.Wrap(faults.ErrLocked, "organizer", "lock", "another dorg run is organizing "+baseDir, nil)
	}
	return &runLock{lock: lock}, nil
}

func (l *runLock) release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

func lockPath(baseDir string) (string, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "dorg-"+hex.EncodeToString(sum[:8])+".lock"), nil
}
