// Package fileutil moves files between directories without overwriting and
// with a verified copy fallback across filesystems.
package fileutil
