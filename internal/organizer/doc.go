// Package organizer drives one organizing run over a base directory.
//
// A run takes the per-directory lock, snapshots the entries to process with
// the walker, then handles each file in turn: resolve its timestamp, plan its
// destination, create the destination directories, and move it. Per-file
// failures are reported and the run continues; configuration, lock, and
// directory-read failures abort it. Destinations created during the run are
// never revisited because the snapshot is taken before any directory is
// created.
package organizer
