package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillyard-labs/skillyard/internal/branding"
)

// Directory names inside the app data root.
const (
	TrashDir = "trash"
	CacheDir = "cache"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetAppDataRoot returns the app data directory. It checks the
// SKILLYARD_HOME environment variable first, then falls back to
// ~/.skillyard.
func GetAppDataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetTrashRoot returns the directory deleted bundles are moved into.
// Checks SKILLYARD_TRASH first, then falls back to <appdata>/trash.
func GetTrashRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("TRASH")); v != "" {
		return v, nil
	}
	root, err := GetAppDataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, TrashDir), nil
}

// GetCacheDir returns the directory for cached metadata such as the daily
// version check. Checks SKILLYARD_CACHE first, then <appdata>/cache.
func GetCacheDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CACHE")); v != "" {
		return v, nil
	}
	root, err := GetAppDataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, CacheDir), nil
}

// EnsureLayout creates the app data root and its standard subdirectories.
// Existing directories are left alone.
func EnsureLayout() error {
	root, err := GetAppDataRoot()
	if err != nil {
		return err
	}
	for _, dir := range []string{root, filepath.Join(root, TrashDir), filepath.Join(root, CacheDir)} {
		if err := os.MkdirAll(dir, DirPermNormal); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
