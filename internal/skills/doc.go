// Package skills reads skill bundles from per-tool installation roots. A
// bundle is a directory holding a SKILL.md descriptor; the package extracts
// metadata leniently, scans tool roots two levels deep, discovers candidate
// roots in arbitrary trees, and merges records across tools by name.
package skills
