package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audioboard/internal/api/errors"
	"audioboard/internal/api/middleware"
	"audioboard/internal/api/v1/dto"
	"audioboard/internal/api/v1/services"
)

// RecordingHandler handles recording endpoints
type RecordingHandler struct {
	service       services.RecordingService
	defaultBucket string
}

// NewRecordingHandler creates a new recording handler
func NewRecordingHandler(service services.RecordingService, defaultBucket string) *RecordingHandler {
	return &RecordingHandler{
		service:       service,
		defaultBucket: defaultBucket,
	}
}

// Create handles POST /api/v1/recordings
// Captures audio from the default input device and uploads it under the
// source prefix. The request blocks for the full capture duration.
func (h *RecordingHandler) Create(c *gin.Context) {
	var req dto.CreateRecordingRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	bucket := resolveBucket(c, h.defaultBucket)
	if bucket == "" {
		middleware.HandleError(c, errors.NewBadRequestError("bucket is required"))
		return
	}

	response, err := h.service.CreateRecording(c.Request.Context(), bucket, &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
