// Package cli defines the Cobra command tree for the skillyard CLI. Each
// file in this package registers one top-level command (list, install,
// tools, etc.) with the root command. Command implementations delegate to
// the catalog service for business logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
