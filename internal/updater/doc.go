// Package updater notifies users when a newer skillyard release exists. It
// checks GitHub Releases, compares versions with semver, and caches the
// result daily; the cached answer powers a non-blocking startup banner.
package updater
