package userdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetAppDataRoot_EnvOverride(t *testing.T) {
	t.Setenv("SKILLYARD_HOME", "/tmp/test-appdata")
	root, err := GetAppDataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/tmp/test-appdata" {
		t.Errorf("expected /tmp/test-appdata, got %s", root)
	}
}

func TestGetAppDataRoot_Default(t *testing.T) {
	t.Setenv("SKILLYARD_HOME", "")
	root, err := GetAppDataRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".skillyard")
	if root != expected {
		t.Errorf("expected %s, got %s", expected, root)
	}
}

func TestGetTrashRoot(t *testing.T) {
	t.Setenv("SKILLYARD_HOME", "/tmp/appdata")
	t.Setenv("SKILLYARD_TRASH", "")
	dir, err := GetTrashRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/appdata/trash" {
		t.Errorf("expected /tmp/appdata/trash, got %s", dir)
	}
}

func TestGetCacheDir_EnvOverride(t *testing.T) {
	t.Setenv("SKILLYARD_CACHE", "/tmp/other-cache")
	dir, err := GetCacheDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/other-cache" {
		t.Errorf("expected /tmp/other-cache, got %s", dir)
	}
}

func TestEnsureLayout(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("SKILLYARD_HOME", filepath.Join(tmp, "appdata"))
	t.Setenv("SKILLYARD_TRASH", "")
	t.Setenv("SKILLYARD_CACHE", "")

	if err := EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	for _, dir := range []string{"appdata", "appdata/trash", "appdata/cache"} {
		if fi, err := os.Stat(filepath.Join(tmp, dir)); err != nil || !fi.IsDir() {
			t.Errorf("%s not created: %v", dir, err)
		}
	}

	// Idempotent.
	if err := EnsureLayout(); err != nil {
		t.Errorf("second EnsureLayout: %v", err)
	}
}
