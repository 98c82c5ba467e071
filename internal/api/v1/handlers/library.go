package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"audioboard/internal/api/errors"
	"audioboard/internal/api/middleware"
	"audioboard/internal/api/v1/dto"
	"audioboard/internal/api/v1/services"
)

// LibraryHandler handles library browsing endpoints
type LibraryHandler struct {
	service       services.LibraryService
	defaultBucket string
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(service services.LibraryService, defaultBucket string) *LibraryHandler {
	return &LibraryHandler{
		service:       service,
		defaultBucket: defaultBucket,
	}
}

// GetLibrary handles GET /api/v1/library
// Returns listings for all three storage prefixes in one call.
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	bucket := resolveBucket(c, h.defaultBucket)
	if bucket == "" {
		middleware.HandleError(c, errors.NewBadRequestError("bucket is required"))
		return
	}

	response, err := h.service.Library(c.Request.Context(), bucket)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListAudio handles GET /api/v1/library/audio
func (h *LibraryHandler) ListAudio(c *gin.Context) {
	h.listPrefix(c, h.service.ListAudio)
}

// ListTranscripts handles GET /api/v1/library/transcripts
func (h *LibraryHandler) ListTranscripts(c *gin.Context) {
	h.listPrefix(c, h.service.ListTranscripts)
}

// ListSummaries handles GET /api/v1/library/summaries
func (h *LibraryHandler) ListSummaries(c *gin.Context) {
	h.listPrefix(c, h.service.ListSummaries)
}

// GetContent handles GET /api/v1/objects/content?key=
// Returns the UTF-8 content of a transcript or summary object.
func (h *LibraryHandler) GetContent(c *gin.Context) {
	bucket := resolveBucket(c, h.defaultBucket)
	if bucket == "" {
		middleware.HandleError(c, errors.NewBadRequestError("bucket is required"))
		return
	}

	response, err := h.service.Content(c.Request.Context(), bucket, c.Query("key"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Presign handles GET /api/v1/objects/presign?key=&ttl=
// Issues a time-limited playback URL so the browser streams audio bytes
// directly from storage.
func (h *LibraryHandler) Presign(c *gin.Context) {
	bucket := resolveBucket(c, h.defaultBucket)
	if bucket == "" {
		middleware.HandleError(c, errors.NewBadRequestError("bucket is required"))
		return
	}

	var ttl time.Duration
	if ttlStr := c.Query("ttl"); ttlStr != "" {
		seconds, err := strconv.Atoi(ttlStr)
		if err != nil || seconds <= 0 {
			middleware.HandleError(c, errors.NewBadRequestError("ttl must be a positive integer of seconds"))
			return
		}
		ttl = time.Duration(seconds) * time.Second
	}

	response, err := h.service.PresignPlayback(c.Request.Context(), bucket, c.Query("key"), ttl)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *LibraryHandler) listPrefix(c *gin.Context, list func(ctx context.Context, bucket string) (*dto.ListResponse, error)) {
	bucket := resolveBucket(c, h.defaultBucket)
	if bucket == "" {
		middleware.HandleError(c, errors.NewBadRequestError("bucket is required"))
		return
	}

	response, err := list(c.Request.Context(), bucket)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// resolveBucket prefers the per-request bucket override, falling back
// to the server-configured default.
func resolveBucket(c *gin.Context, defaultBucket string) string {
	if bucket := c.Query("bucket"); bucket != "" {
		return bucket
	}
	return defaultBucket
}
