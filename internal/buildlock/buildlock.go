// Package buildlock serializes archive builds. The views are rebuilt
// idempotently but two concurrent builds would race on directory creation
// and double-count their statistics, so one file lock at the archive root
// guards the whole build.
package buildlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".rdcparc.lock"

// Lock is a held build lock. Release it when the build is done.
type Lock struct {
	fileLock *flock.Flock
}

// Acquire takes the build lock of the archive rooted at root without
// blocking. A lock already held by another process is reported as an error.
func Acquire(root string) (*Lock, error) {
	fileLock := flock.New(filepath.Join(root, lockFileName))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring build lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another build is running (lock held on %s)", fileLock.Path())
	}
	return &Lock{fileLock: fileLock}, nil
}

// Release drops the lock. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fileLock == nil {
		return nil
	}
	return l.fileLock.Unlock()
}
