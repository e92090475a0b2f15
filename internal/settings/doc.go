// Package settings persists user-level state as a single JSON document at
// <appdata>/state.json: tool enable overrides, custom tool definitions,
// display order, the GitHub token, and editor preferences. The document is
// loaded whole, mutated in memory, and rewritten whole; the last writer wins.
package settings
