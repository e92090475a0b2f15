// Package trash implements recoverable deletion. Nothing skillyard removes
// is ever unlinked directly; files and directories move into a timestamped
// location under the app's trash directory, where the user can restore them
// by hand. There is no automatic purge.
package trash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// Bin is a trash directory.
type Bin struct {
	Root string
}

// NewBin returns a bin rooted at dir. The directory is created lazily on
// first use.
func NewBin(dir string) *Bin {
	return &Bin{Root: dir}
}

// Move relocates path into the bin and returns its new location. The entry
// is named "<unix-seconds>-<basename>", suffixed on collision. A rename
// across filesystems falls back to copy-and-remove.
func (b *Bin) Move(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errdefs.Iof(err, "trashing %s", path)
	}
	if err := os.MkdirAll(b.Root, 0755); err != nil {
		return "", errdefs.Iof(err, "creating trash directory %s", b.Root)
	}

	target := b.slot(filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		// Likely a cross-device move: copy the tree, then remove the
		// original.
		if cerr := copyAll(path, target); cerr != nil {
			os.RemoveAll(target)
			return "", errdefs.Iof(err, "moving %s to trash", path)
		}
		if rerr := os.RemoveAll(path); rerr != nil {
			return "", errdefs.Iof(rerr, "removing %s after trash copy", path)
		}
	}
	return target, nil
}

// slot picks a free target name inside the bin.
func (b *Bin) slot(base string) string {
	preferred := filepath.Join(b.Root, fmt.Sprintf("%d-%s", time.Now().Unix(), base))
	candidate := preferred
	for i := 1; i <= 999; i++ {
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", preferred, i)
	}
	return fmt.Sprintf("%s-%d", preferred, time.Now().UnixNano())
}

// copyAll duplicates a file or directory tree preserving file modes.
// Symlinks and other special files are skipped.
func copyAll(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := copyAll(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
		return nil
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
