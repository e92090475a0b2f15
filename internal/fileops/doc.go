// Package fileops provides the filesystem primitives behind skill
// mutations. Deletes are recoverable: they hand the target to the trash bin
// instead of unlinking. Callers are expected to have authorized every path
// through pathguard before invoking anything here.
package fileops
