// Package tools resolves the AI tool integrations skillyard manages skills
// for. The built-in catalog is embedded at compile time; user-defined tools
// come from the settings document. Resolution expands home-relative paths,
// detects installations on disk, and applies persisted enable overrides.
package tools
