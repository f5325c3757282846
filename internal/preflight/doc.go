// Package preflight provides readiness checks that run before an organizing
// run touches the filesystem.
//
// The base directory check is required: when it fails the run aborts with a
// directory-read error before any entry is read. The creation-time check is
// advisory and only applies when sorting by creation time; a filesystem that
// does not record birth times produces a warning because every file would
// otherwise be skipped one by one.
package preflight
