// Package pathguard enforces the filesystem boundary for every skill
// mutation. A path is only operable when its fully resolved form sits under
// one of the managed skill roots, and user-supplied relative paths are
// normalized before they ever touch a filepath.Join.
package pathguard
