package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/trash"
)

// EnsureDir creates path and any missing parents. An existing directory is
// fine; an existing non-directory is not.
func EnsureDir(path string) error {
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return nil
		}
		return errdefs.Validationf("path exists and is not a directory: %s", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return errdefs.Iof(err, "creating directory %s", path)
	}
	return nil
}

// WriteFile overwrites path with data, creating parent directories on
// demand.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errdefs.Iof(err, "creating parent of %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errdefs.Iof(err, "writing %s", path)
	}
	return nil
}

// Rename moves oldPath to newPath. The source must exist, the destination
// must not; missing destination parents are created.
func Rename(oldPath, newPath string) error {
	if _, err := os.Stat(oldPath); err != nil {
		return errdefs.NotFoundf("path does not exist: %s", oldPath)
	}
	if _, err := os.Stat(newPath); err == nil {
		return errdefs.Validationf("target path already exists: %s", newPath)
	}
	if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
		return errdefs.Iof(err, "creating parent of %s", newPath)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return errdefs.Iof(err, "renaming %s", oldPath)
	}
	return nil
}

// DeleteFile trashes a single regular file.
func DeleteFile(path string, bin *trash.Bin) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errdefs.NotFoundf("path does not exist: %s", path)
	}
	if !fi.Mode().IsRegular() {
		return errdefs.Validationf("path is not a file: %s", path)
	}
	_, err = bin.Move(path)
	return err
}

// DeleteEmptyDir trashes a directory that holds nothing.
func DeleteEmptyDir(path string, bin *trash.Bin) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errdefs.NotFoundf("path does not exist: %s", path)
	}
	if !fi.IsDir() {
		return errdefs.Validationf("path is not a directory: %s", path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return errdefs.Iof(err, "reading %s", path)
	}
	if len(entries) > 0 {
		return errdefs.Validationf("directory is not empty: %s", path)
	}
	_, err = bin.Move(path)
	return err
}

// DeleteTree trashes a whole directory tree. A missing path is treated as
// already deleted.
func DeleteTree(path string, bin *trash.Bin) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	_, err := bin.Move(path)
	return err
}

// UniqueDir returns a path under parent that does not exist yet: preferred
// itself, then preferred-1 through preferred-999, then a timestamped name.
func UniqueDir(parent, preferred string) string {
	candidate := filepath.Join(parent, preferred)
	if _, err := os.Stat(candidate); err != nil {
		return candidate
	}
	for i := 1; i <= 999; i++ {
		candidate = filepath.Join(parent, fmt.Sprintf("%s-%d", preferred, i))
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
	return filepath.Join(parent, fmt.Sprintf("%s-%d", preferred, time.Now().Unix()))
}
