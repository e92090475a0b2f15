// Package platform wraps the OS-specific desktop integrations skillyard
// needs. Currently that is one thing: opening the system file manager with
// a given path selected, which each OS spells differently.
package platform
