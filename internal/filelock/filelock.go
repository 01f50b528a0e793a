// Package filelock writes generated catalog modules so that readers never
// observe a partially written file and two builds never interleave.
package filelock

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

const (
	tempPrefix = ".tmp-"
	lockSuffix = ".lock"
)

// IsArtifact reports whether path names a lock or temp file created by
// LockAndWrite.
func IsArtifact(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, tempPrefix) {
		return true
	}
	return strings.HasPrefix(base, ".") && strings.HasSuffix(base, lockSuffix)
}

// LockPath returns the lock file used for target: a hidden sibling, so
// "js/data/abc-file-list.js" is guarded by "js/data/.abc-file-list.js.lock".
func LockPath(target string) string {
	return filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+lockSuffix)
}

// AtomicWrite writes data to a file atomically using a temp file and rename strategy.
// Parent directories are created. If the operation fails at any point, the
// original file (if it exists) remains unchanged.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory as target so the rename stays on one filesystem
	tempFile, err := os.CreateTemp(dir, tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}

// LockAndWrite acquires the target's lock, performs an atomic write and
// releases the lock. The lock file stays in place so every writer locks the
// same inode. It reports whether the target changed:
// when the file already holds exactly data it is left untouched.
func LockAndWrite(path string, data []byte) (bool, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lockPath := LockPath(path)
	lock := NewFileLock(lockPath)
	if err := lock.Lock(); err != nil {
		return false, err
	}
	defer lock.Unlock()

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, data):
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := AtomicWrite(path, data); err != nil {
		return false, err
	}
	return true, nil
}
