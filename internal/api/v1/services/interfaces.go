package services

import (
	"context"
	"time"

	"audioboard/internal/api/v1/dto"
)

// LibraryService exposes read-side operations over the object store.
type LibraryService interface {
	Library(ctx context.Context, bucket string) (*dto.LibraryResponse, error)
	ListAudio(ctx context.Context, bucket string) (*dto.ListResponse, error)
	ListTranscripts(ctx context.Context, bucket string) (*dto.ListResponse, error)
	ListSummaries(ctx context.Context, bucket string) (*dto.ListResponse, error)
	Content(ctx context.Context, bucket, key string) (*dto.ObjectContentResponse, error)
	PresignPlayback(ctx context.Context, bucket, key string, ttl time.Duration) (*dto.PresignResponse, error)
}

// RecordingService runs the capture-and-upload pipeline.
type RecordingService interface {
	CreateRecording(ctx context.Context, bucket string, req *dto.CreateRecordingRequest) (*dto.RecordingResponse, error)
}
