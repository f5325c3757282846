package timestamp

import (
	"io/fs"
	"os"
	"time"

	"dorg/internal/config"
	"dorg/internal/faults"
)

// BirthTimeFunc reads the creation time of path. Implementations return an
// error matching faults.ErrCreationTimeUnavailable when the platform or
// filesystem does not record it.
type BirthTimeFunc func(path string, info fs.FileInfo) (time.Time, error)

// Resolver extracts the configured timestamp from file metadata.
type Resolver struct {
	birthTime BirthTimeFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBirthTime replaces the platform creation-time probe.
func WithBirthTime(fn BirthTimeFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.birthTime = fn
		}
	}
}

// NewResolver returns a resolver backed by the host platform's metadata.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{birthTime: platformBirthTime}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the timestamp selected by source. info may be nil, in which
// case the file is statted without following symlinks.
func (r *Resolver) Resolve(path string, info fs.FileInfo, source config.TimestampSource) (time.Time, error) {
	if info == nil {
		stat, err := os.Lstat(path)
		if err != nil {
			return time.Time{}, faults.Wrap(faults.ErrIO, "timestamp", "stat", path, err)
		}
		info = stat
	}
	switch source {
	case config.Modified:
		return info.ModTime(), nil
	case config.Created:
		return r.birthTime(path, info)
	default:
		return time.Time{}, faults.Wrap(faults.ErrIO, "timestamp", "resolve", "unknown timestamp source "+source.String(), nil)
	}
}
