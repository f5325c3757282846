// Package faults defines the error taxonomy shared by every dorg component.
//
// Key responsibilities:
//   - Sentinel markers (ErrConfiguration, ErrDirectoryRead, ErrMetadata,
//     ErrPlanning, ErrMove, ErrLocked) that callers match with errors.Is.
//   - The Wrap helper that attaches component and operation context while
//     keeping both the marker and the underlying cause reachable.
//   - Fatal and Kind, which encode the propagation policy (abort the run or
//     skip a single file) and the label shown to users.
//   - Context helpers that carry the run ID and the file being processed so
//     log lines can be correlated.
package faults
