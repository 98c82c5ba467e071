package services

import (
	"context"
	"time"

	"audioboard/internal/api/errors"
	"audioboard/internal/api/v1/dto"
	"audioboard/internal/app/recorder"
)

type recordingService struct {
	recorder *recorder.Recorder
}

// NewRecordingService creates a recording service over the pipeline.
func NewRecordingService(rec *recorder.Recorder) RecordingService {
	return &recordingService{recorder: rec}
}

func (s *recordingService) CreateRecording(ctx context.Context, bucket string, req *dto.CreateRecordingRequest) (*dto.RecordingResponse, error) {
	if bucket == "" {
		return nil, errors.NewBadRequestError("bucket is required")
	}

	result, err := s.recorder.RecordAndUpload(
		ctx,
		bucket,
		time.Duration(req.DurationSeconds)*time.Second,
		req.SampleRate,
		req.BaseFilename,
	)
	if err != nil {
		return nil, err
	}

	return &dto.RecordingResponse{
		Key:             result.Key,
		DurationSeconds: int(result.Duration.Seconds()),
		SampleRate:      result.SampleRate,
		UploadedAt:      result.UploadedAt,
	}, nil
}
