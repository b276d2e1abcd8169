// Package view implements the shared machinery of the synthetic archive
// views: run statistics, idempotent symlink creation, filesystem-safe
// naming, sidecar display metadata, and the generic hierarchy tree that
// the classification-specific builders materialize.
package view

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceEntry is one entry of a scanned source directory as handed to the
// view builders. The scan itself happens outside this package.
type SourceEntry struct {
	Name  string //base name, no path information
	Path  string //absolute, system-native path
	IsDir bool
}

func entryExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func targetExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory and all missing ancestors, counting a
// creation only if the directory did not exist before.
func EnsureDir(path string, stats *Statistics) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(path, fs.ModePerm); err != nil {
		return err
	}
	stats.DirsCreated++
	return nil
}

// CreateSymlink creates link pointing at target with an idempotency check:
// any pre-existing entry at the link path (file, directory, or symlink of
// whatever validity) makes the call a counted no-op so that repeated runs
// converge on the same filesystem state. The stored target is relative to
// the link's own parent directory, keeping the view portable when the tree
// is moved as a whole.
//
// With allowBroken set the link is created even if the target does not
// exist yet (counted as created and additionally as broken); without it a
// missing target is recorded as an error. OS-level failures are recorded
// in the statistics and never abort the caller's run.
func CreateSymlink(target string, link string, allowBroken bool, stats *Statistics) bool {
	if err := EnsureDir(filepath.Dir(link), stats); err != nil {
		stats.RecordError("failed to create directory for %s: %s", link, err)
		return false
	}

	if entryExists(link) {
		stats.SymlinksSkipped++
		return false
	}

	exists := targetExists(target)
	if !allowBroken && !exists {
		stats.RecordError("target does not exist: %s", target)
		return false
	}

	relTarget, err := filepath.Rel(filepath.Dir(link), target)
	if err != nil {
		stats.RecordError("failed to relativize %s: %s", target, err)
		return false
	}
	if err := os.Symlink(relTarget, link); err != nil {
		stats.RecordError("failed to create symlink %s: %s", link, err)
		return false
	}

	stats.SymlinksCreated++
	if !exists {
		stats.SymlinksBroken++
	}
	return true
}

// CreateAbsoluteSymlink creates link pointing at the resolved absolute
// target path. Used by the raw-ingestion reorganization where relative
// targets would chain symlinks through other symlinks ambiguously.
// Idempotency and error capture follow CreateSymlink.
func CreateAbsoluteSymlink(target string, link string, stats *Statistics) bool {
	if !targetExists(target) {
		stats.RecordError("target does not exist: %s", target)
		return false
	}
	if err := EnsureDir(filepath.Dir(link), stats); err != nil {
		stats.RecordError("failed to create directory for %s: %s", link, err)
		return false
	}
	if entryExists(link) {
		stats.SymlinksSkipped++
		return false
	}

	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		resolved = target
	}
	if err := os.Symlink(resolved, link); err != nil {
		stats.RecordError("failed to create symlink %s: %s", link, err)
		return false
	}
	stats.SymlinksCreated++
	return true
}
