package pathguard

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

// canonical resolves p to an absolute, symlink-free form. The path must
// exist; a dangling candidate cannot be proven to sit under any root.
func canonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Authorize reports whether path, after symlink resolution, lives under (or
// is) one of roots. Roots are resolved the same way, so a symlinked root
// still authorizes its real children. Comparison is per path component:
// /home/u/skills-extra is not under /home/u/skills. Roots that cannot be
// resolved are skipped; a candidate that cannot be resolved is rejected.
func Authorize(path string, roots []string) error {
	cand, err := canonical(path)
	if err != nil {
		return errdefs.InvalidPathf("path %q does not resolve to an existing location", path)
	}
	sep := string(os.PathSeparator)
	for _, root := range roots {
		cr, err := canonical(root)
		if err != nil {
			continue
		}
		cr = strings.TrimSuffix(cr, sep)
		if cand == cr || strings.HasPrefix(cand, cr+sep) {
			return nil
		}
	}
	return errdefs.InvalidPathf("path %q is outside the managed skill directories", path)
}

// NormalizeRelative cleans a user-supplied relative path. Empty input is a
// validation error; absolute paths and any ".." component are invalid-path
// errors; "." components and empty segments are dropped. The result uses
// forward slashes regardless of platform.
func NormalizeRelative(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", errdefs.Validationf("relative path is required")
	}
	if filepath.IsAbs(trimmed) || strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, `\`) {
		return "", errdefs.InvalidPathf("absolute paths are not allowed")
	}
	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(trimmed), "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			return "", errdefs.InvalidPathf("path traversal is not allowed")
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "", errdefs.Validationf("relative path is required")
	}
	return strings.Join(parts, "/"), nil
}

// JoinUnder joins a normalized relative path onto a root the caller has
// already authorized. This is the only sanctioned way to address a target
// that may not exist yet: authorize the root, then join confined segments.
func JoinUnder(root, rel string) (string, error) {
	norm, err := NormalizeRelative(rel)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(norm)), nil
}
