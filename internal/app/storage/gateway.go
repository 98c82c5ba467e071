package storage

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Logical key prefixes. Objects under SourcePrefix are raw recordings;
// the downstream pipeline writes derived text under the other two.
const (
	SourcePrefix        = "source/"
	TranscriptionPrefix = "transcription/"
	ProcessedPrefix     = "processed/"
)

// Object describes a stored object as seen by listings.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// Name returns the object's file name without its prefix.
func (o Object) Name() string {
	return path.Base(o.Key)
}

// Gateway wraps list/read/upload/presign operations against an object
// store. Every call is a single blocking round-trip; no retries are
// performed and a failure is reported once to the caller.
type Gateway interface {
	// List returns all objects under prefix. If extFilter is non-empty,
	// only keys whose name ends with it (case-insensitive) are returned.
	// An empty prefix yields an empty slice, not an error.
	List(ctx context.Context, bucket, prefix, extFilter string) ([]Object, error)

	// ReadText returns the full object content decoded as UTF-8.
	ReadText(ctx context.Context, bucket, key string) (string, error)

	// Upload copies a local file's bytes to the given key, overwriting
	// any existing object.
	Upload(ctx context.Context, bucket, localPath, key string) error

	// Exists checks whether the key is present. A missing key is not an
	// error; any other failure propagates so callers never mistake an
	// ambiguous failure for absence.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// PresignedReadURL returns a time-limited authenticated URL granting
	// read access without credentials.
	PresignedReadURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

// filterObjects applies the optional case-insensitive extension filter
// and drops the bare prefix marker key that some backends report for
// "directory" placeholders.
func filterObjects(objects []Object, prefix, extFilter string) []Object {
	filtered := lo.Filter(objects, func(o Object, _ int) bool {
		if o.Key == prefix {
			return false
		}
		if extFilter == "" {
			return true
		}
		return strings.HasSuffix(strings.ToLower(o.Key), strings.ToLower(extFilter))
	})
	if filtered == nil {
		filtered = []Object{}
	}
	return filtered
}
