package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxAllocateAttempts bounds the collision loop. With a second-resolution
// timestamp plus an 8-character random token, hitting the cap means the
// existence check itself is misbehaving.
const maxAllocateAttempts = 16

// KeyAllocator derives collision-checked object keys from a base
// filename. The check-then-upload pattern is racy under concurrent
// allocators against the same prefix; the random token makes the window
// negligible for a single-user tool, it is not a correctness guarantee.
type KeyAllocator struct {
	gateway Gateway
}

// NewKeyAllocator creates a key allocator backed by the given gateway.
func NewKeyAllocator(gateway Gateway) *KeyAllocator {
	return &KeyAllocator{gateway: gateway}
}

// UniqueFilename derives a candidate filename of the form
// <name>_<YYYYMMDD_HHMMSS>_<random8><ext>.
func UniqueFilename(baseFilename string) string {
	ext := filepath.Ext(baseFilename)
	name := strings.TrimSuffix(baseFilename, ext)
	timestamp := time.Now().Format("20060102_150405")
	token := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s_%s%s", name, timestamp, token, ext)
}

// Allocate returns a key under basePath that did not exist at check
// time, regenerating the candidate on collision. Existence-check
// failures other than not-found abort the allocation; an ambiguous
// failure must never be treated as "safe to proceed".
func (a *KeyAllocator) Allocate(ctx context.Context, bucket, basePath, baseFilename string) (string, error) {
	basePath = strings.TrimSuffix(basePath, "/")

	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		key := basePath + "/" + UniqueFilename(baseFilename)

		exists, err := a.gateway.Exists(ctx, bucket, key)
		if err != nil {
			return "", err
		}
		if !exists {
			return key, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique key for %q after %d attempts", baseFilename, maxAllocateAttempts)
}
