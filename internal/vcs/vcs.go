// Package vcs wraps the git operations skill imports depend on. Clones are
// always shallow and land in disposable uuid-named temp directories.
package vcs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// EnsureGit checks that git is available on PATH.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errdefs.Vcsf("git is required but not found in PATH")
	}
	return nil
}

// ShallowClone clones repoURL at depth 1 into dest. The context bounds the
// subprocess; a failed clone surfaces git's own output.
func ShallowClone(ctx context.Context, repoURL, dest string) error {
	if err := EnsureGit(); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", repoURL, dest)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return errdefs.Wrap(errdefs.KindVcs, ctx.Err(), "cloning %s", repoURL)
		}
		return errdefs.Vcsf("cloning %s: %v\n%s", repoURL, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// TempCloneDir returns a fresh directory path for a clone under the system
// temp dir. The directory itself is not created; git clone insists on
// creating its target.
func TempCloneDir() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("skillyard-%s", uuid.NewString()))
}

// CleanupDir removes a temp clone. Failures are logged and swallowed: a
// leftover temp directory must never mask the result of the operation that
// used it.
func CleanupDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("leaving temp clone behind", "dir", dir, "error", err)
	}
}
