package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"audioboard/internal/app/storage"
)

// MemoryGateway is an in-memory storage.Gateway for tests. Error fields
// inject failures for specific operations.
type MemoryGateway struct {
	mu       sync.Mutex
	objects  map[string]map[string][]byte
	modified map[string]time.Time

	ListErr   error
	ReadErr   error
	UploadErr error
	ExistsErr error
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		objects:  make(map[string]map[string][]byte),
		modified: make(map[string]time.Time),
	}
}

// Put seeds an object directly, bypassing the Upload path.
func (g *MemoryGateway) Put(bucket, key string, data []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.objects[bucket] == nil {
		g.objects[bucket] = make(map[string][]byte)
	}
	g.objects[bucket][key] = data
	g.modified[bucket+"/"+key] = time.Now()
}

// Has reports whether the key was stored.
func (g *MemoryGateway) Has(bucket, key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.objects[bucket][key]
	return ok
}

func (g *MemoryGateway) List(ctx context.Context, bucket, prefix, extFilter string) ([]storage.Object, error) {
	if g.ListErr != nil {
		return nil, g.ListErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	result := []storage.Object{}
	for key, data := range g.objects[bucket] {
		if !strings.HasPrefix(key, prefix) || key == prefix {
			continue
		}
		if extFilter != "" && !strings.HasSuffix(strings.ToLower(key), strings.ToLower(extFilter)) {
			continue
		}
		result = append(result, storage.Object{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: g.modified[bucket+"/"+key],
		})
	}
	return result, nil
}

func (g *MemoryGateway) ReadText(ctx context.Context, bucket, key string) (string, error) {
	if g.ReadErr != nil {
		return "", g.ReadErr
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	data, ok := g.objects[bucket][key]
	if !ok {
		return "", storage.NewError("read", bucket, key, storage.KindNotFound, errors.New("no such key"))
	}
	return string(data), nil
}

func (g *MemoryGateway) Upload(ctx context.Context, bucket, localPath, key string) error {
	if g.UploadErr != nil {
		return g.UploadErr
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return storage.NewError("upload", bucket, key, storage.KindInternal, err)
	}
	g.Put(bucket, key, data)
	return nil
}

func (g *MemoryGateway) Exists(ctx context.Context, bucket, key string) (bool, error) {
	if g.ExistsErr != nil {
		return false, g.ExistsErr
	}
	return g.Has(bucket, key), nil
}

func (g *MemoryGateway) PresignedReadURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.objects[bucket][key]; !ok {
		return "", storage.NewError("presign", bucket, key, storage.KindNotFound, errors.New("no such key"))
	}
	return fmt.Sprintf("https://storage.test/%s/%s?expires=%d", bucket, key, int(ttl.Seconds())), nil
}
