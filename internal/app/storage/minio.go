package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioGateway implements Gateway against a MinIO (or any S3-compatible)
// endpoint.
type MinioGateway struct {
	client *minio.Client
}

// MinioConfig holds connection settings for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// MinioConfigFromEnv reads connection settings from the environment,
// falling back to local development defaults.
func MinioConfigFromEnv() MinioConfig {
	cfg := MinioConfig{
		Endpoint:  os.Getenv("MINIO_ENDPOINT"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:9000"
	}
	if cfg.AccessKey == "" {
		cfg.AccessKey = "minioadmin"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "minioadmin"
	}
	return cfg
}

// NewMinioGateway creates a gateway connected to the configured endpoint.
func NewMinioGateway(cfg MinioConfig) (*MinioGateway, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	return &MinioGateway{client: client}, nil
}

// List returns all objects under prefix, filtered per the Gateway contract.
func (g *MinioGateway) List(ctx context.Context, bucket, prefix, extFilter string) ([]Object, error) {
	var objects []Object
	for info := range g.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, classify("list", bucket, prefix, info.Err)
		}
		objects = append(objects, Object{
			Key:          info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
		})
	}
	return filterObjects(objects, prefix, extFilter), nil
}

// ReadText returns the full object content decoded as UTF-8.
func (g *MinioGateway) ReadText(ctx context.Context, bucket, key string) (string, error) {
	obj, err := g.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", classify("read", bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject is lazy; missing keys surface on the first read.
		return "", classify("read", bucket, key, err)
	}
	return string(data), nil
}

// Upload copies a local file's bytes to the given key.
func (g *MinioGateway) Upload(ctx context.Context, bucket, localPath, key string) error {
	contentType := "application/octet-stream"
	if strings.HasSuffix(strings.ToLower(key), ".wav") {
		contentType = "audio/wav"
	}

	_, err := g.client.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return classify("upload", bucket, key, err)
	}
	return nil
}

// Exists checks key presence via a stat call.
func (g *MinioGateway) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := g.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	serr := classify("stat", bucket, key, err)
	if IsNotFound(serr) {
		return false, nil
	}
	return false, serr
}

// PresignedReadURL returns a presigned GET URL for the object.
func (g *MinioGateway) PresignedReadURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	u, err := g.client.PresignedGetObject(ctx, bucket, key, ttl, url.Values{})
	if err != nil {
		return "", classify("presign", bucket, key, err)
	}
	return u.String(), nil
}
