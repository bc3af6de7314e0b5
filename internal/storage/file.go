package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

// CorruptError reports a store file that could not be parsed. The file
// has been moved to BackupPath (empty if the move itself failed).
type CorruptError struct {
	Path       string
	BackupPath string
	Err        error
}

func (e *CorruptError) Error() string {
	if e.BackupPath == "" {
		return fmt.Sprintf("corrupt store %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("corrupt store %s (moved to %s): %v", e.Path, e.BackupPath, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// readFile reads path, returning (nil, nil) when it does not exist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// quarantine moves an unreadable store file aside so the next save
// does not destroy it. Backups never overwrite each other: a numeric
// suffix is added when the timestamped name is taken.
func quarantine(path string, parseErr error) *CorruptError {
	backup, err := backupName(path, time.Now())
	if err == nil {
		err = os.Rename(path, backup)
	}
	if err != nil {
		backup = ""
	}
	return &CorruptError{Path: path, BackupPath: backup, Err: parseErr}
}

// backupName returns the first unused "<path>.corrupt-<stamp>[-N]".
func backupName(path string, now time.Time) (string, error) {
	base := fmt.Sprintf("%s.corrupt-%s", path, now.UTC().Format("20060102T150405Z"))
	name := base
	for n := 1; ; n++ {
		_, err := os.Lstat(name)
		if errors.Is(err, os.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", err
		}
		name = fmt.Sprintf("%s-%d", base, n)
	}
}

// writeFileAtomic replaces path with data, creating the directory if
// it doesn't exist. Readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0644)
}
