// Package userdata resolves the ~/.skillyard/ directory structure: the app
// data root holding state.json, the trash directory backing recoverable
// deletes, and the cache directory used by the update check. Environment
// overrides exist for every location so tests and packaging never touch the
// real home directory.
package userdata
