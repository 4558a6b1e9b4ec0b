// Package cache provides the key/value cache sitting in front of the
// catalogue's two list queries. Values are JSON-encoded byte slices so
// the interface stays agnostic of what is being cached.
package cache

import (
	"context"
	"strconv"
)

// Cache is a simple k/v store. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Delete(ctx context.Context, key string)
}

// Cache keys are built here so they do not drift apart across the code.

// AllSongsKey is the cache key for the full song list ordered by title.
func AllSongsKey() string { return "all-songs" }

// RecordingsKey is the cache key for one song's recordings ordered by
// performer.
func RecordingsKey(songID int64) string {
	return "recordings-" + strconv.FormatInt(songID, 10)
}
