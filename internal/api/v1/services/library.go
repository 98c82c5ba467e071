package services

import (
	"context"
	"path"
	"time"

	"github.com/samber/lo"

	"audioboard/internal/api/errors"
	"audioboard/internal/api/v1/dto"
	"audioboard/internal/app/storage"
)

// Transcripts come from the external pipeline as plain text files.
const transcriptExtension = ".txt"

const (
	defaultPresignTTL = time.Hour
	maxPresignTTL     = 24 * time.Hour
)

type libraryService struct {
	gateway storage.Gateway
}

// NewLibraryService creates a library service over the storage gateway.
func NewLibraryService(gateway storage.Gateway) LibraryService {
	return &libraryService{gateway: gateway}
}

func (s *libraryService) Library(ctx context.Context, bucket string) (*dto.LibraryResponse, error) {
	audio, err := s.list(ctx, bucket, storage.SourcePrefix, "")
	if err != nil {
		return nil, err
	}
	transcripts, err := s.list(ctx, bucket, storage.TranscriptionPrefix, transcriptExtension)
	if err != nil {
		return nil, err
	}
	summaries, err := s.list(ctx, bucket, storage.ProcessedPrefix, "")
	if err != nil {
		return nil, err
	}

	return &dto.LibraryResponse{
		Audio:       audio,
		Transcripts: transcripts,
		Summaries:   summaries,
	}, nil
}

func (s *libraryService) ListAudio(ctx context.Context, bucket string) (*dto.ListResponse, error) {
	return s.listResponse(ctx, bucket, storage.SourcePrefix, "")
}

func (s *libraryService) ListTranscripts(ctx context.Context, bucket string) (*dto.ListResponse, error) {
	return s.listResponse(ctx, bucket, storage.TranscriptionPrefix, transcriptExtension)
}

func (s *libraryService) ListSummaries(ctx context.Context, bucket string) (*dto.ListResponse, error) {
	return s.listResponse(ctx, bucket, storage.ProcessedPrefix, "")
}

func (s *libraryService) Content(ctx context.Context, bucket, key string) (*dto.ObjectContentResponse, error) {
	if key == "" {
		return nil, errors.NewBadRequestError("key is required")
	}

	content, err := s.gateway.ReadText(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	return &dto.ObjectContentResponse{
		Key:     key,
		Name:    path.Base(key),
		Content: content,
	}, nil
}

func (s *libraryService) PresignPlayback(ctx context.Context, bucket, key string, ttl time.Duration) (*dto.PresignResponse, error) {
	if key == "" {
		return nil, errors.NewBadRequestError("key is required")
	}
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	if ttl > maxPresignTTL {
		ttl = maxPresignTTL
	}

	url, err := s.gateway.PresignedReadURL(ctx, bucket, key, ttl)
	if err != nil {
		return nil, err
	}

	return &dto.PresignResponse{
		Key:       key,
		URL:       url,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func (s *libraryService) list(ctx context.Context, bucket, prefix, extFilter string) ([]dto.ObjectSummary, error) {
	if bucket == "" {
		return nil, errors.NewBadRequestError("bucket is required")
	}

	objects, err := s.gateway.List(ctx, bucket, prefix, extFilter)
	if err != nil {
		return nil, err
	}

	return lo.Map(objects, func(o storage.Object, _ int) dto.ObjectSummary {
		return dto.ObjectSummary{
			Key:          o.Key,
			Name:         o.Name(),
			Size:         o.Size,
			LastModified: o.LastModified,
		}
	}), nil
}

func (s *libraryService) listResponse(ctx context.Context, bucket, prefix, extFilter string) (*dto.ListResponse, error) {
	items, err := s.list(ctx, bucket, prefix, extFilter)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse{Items: items, Count: len(items)}, nil
}
