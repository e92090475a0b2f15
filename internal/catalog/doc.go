// Package catalog is the operation surface of skillyard. It wires the tool
// registry, scanner, merger, path guard, and file primitives into the calls
// the CLI (or any future UI) consumes: dashboard assembly, skill editing,
// imports from git repositories and the hub, and settings mutations. Every
// path that reaches the filesystem is re-authorized here on every call;
// nothing below this package trusts a previously granted path.
package catalog
