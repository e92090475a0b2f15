// Package errdefs defines the error categories shared by every skillyard
// operation. Callers branch on the category (validation, bad path, not found,
// network, vcs, io) rather than on error strings, and the CLI maps categories
// to exit codes.
package errdefs
