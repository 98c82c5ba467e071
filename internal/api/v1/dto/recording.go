package dto

import (
	"strings"
	"time"

	"audioboard/internal/api/errors"
)

// CreateRecordingRequest starts a blocking capture-and-upload cycle.
type CreateRecordingRequest struct {
	DurationSeconds int    `json:"durationSeconds" binding:"required,min=1,max=300"`
	SampleRate      int    `json:"sampleRate" binding:"omitempty,oneof=8000 16000 22050 44100 48000"`
	BaseFilename    string `json:"baseFilename" binding:"omitempty,max=128"`
}

// Validate applies domain rules beyond struct tags.
func (r *CreateRecordingRequest) Validate() error {
	if strings.ContainsAny(r.BaseFilename, "/\\") {
		return errors.NewValidationError("Validation failed", map[string]string{
			"basefilename": "must not contain path separators",
		})
	}
	return nil
}

// RecordingResponse describes an uploaded recording.
type RecordingResponse struct {
	Key             string    `json:"key"`
	DurationSeconds int       `json:"durationSeconds"`
	SampleRate      int       `json:"sampleRate"`
	UploadedAt      time.Time `json:"uploadedAt"`
}
