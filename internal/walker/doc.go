// Package walker enumerates the entries of a directory tree as a lazy,
// restartable sequence.
//
// Each directory is read when the sequence reaches it; iterating again reads
// the filesystem afresh. Directories are yielded as entries (IsDir set) so
// callers can report them, and are descended into only when recursion is
// enabled. Symbolic links are reported as themselves and never followed.
// The first read or stat failure is yielded as a faults.ErrDirectoryRead
// error and ends the sequence.
package walker
