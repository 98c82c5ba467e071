package test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"audioboard/internal/api/v1/dto"
	"audioboard/internal/api/v1/handlers"
	"audioboard/internal/app/storage"
	"audioboard/internal/app/testutil"
)

func setupLibraryRouter(t *testing.T, defaultBucket string) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockServices := testutil.NewMockServices(t)

	handler := handlers.NewLibraryHandler(mockServices.LibraryService, defaultBucket)
	router.GET("/api/v1/library", handler.GetLibrary)
	router.GET("/api/v1/library/transcripts", handler.ListTranscripts)
	router.GET("/api/v1/objects/content", handler.GetContent)
	router.GET("/api/v1/objects/presign", handler.Presign)

	return router, mockServices
}

func TestLibraryHandler_GetLibrary(t *testing.T) {
	router, ms := setupLibraryRouter(t, "")
	ms.LibraryService.On("Library", mock.Anything, "b").
		Return(&dto.LibraryResponse{
			Audio:       []dto.ObjectSummary{{Key: "source/a.wav", Name: "a.wav"}},
			Transcripts: []dto.ObjectSummary{},
			Summaries:   []dto.ObjectSummary{},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/library?bucket=b", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	audio := body["audio"].([]interface{})
	require.Len(t, audio, 1)
	assert.Equal(t, "source/a.wav", audio[0].(map[string]interface{})["key"])
}

func TestLibraryHandler_MissingBucket(t *testing.T) {
	router, _ := setupLibraryRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/library", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bad_request", body["kind"])
}

func TestLibraryHandler_DefaultBucketFallback(t *testing.T) {
	router, ms := setupLibraryRouter(t, "default-bucket")
	ms.LibraryService.On("ListTranscripts", mock.Anything, "default-bucket").
		Return(&dto.ListResponse{Items: []dto.ObjectSummary{}, Count: 0}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/library/transcripts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLibraryHandler_ContentNotFound(t *testing.T) {
	router, ms := setupLibraryRouter(t, "b")
	ms.LibraryService.On("Content", mock.Anything, "b", "transcription/missing.txt").
		Return(nil, storage.NewError("read", "b", "transcription/missing.txt", storage.KindNotFound, errors.New("no such key")))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/objects/content?key=transcription%2Fmissing.txt", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["kind"])
}

func TestLibraryHandler_Presign(t *testing.T) {
	router, ms := setupLibraryRouter(t, "b")
	ms.LibraryService.On("PresignPlayback", mock.Anything, "b", "source/a.wav", 120*time.Second).
		Return(&dto.PresignResponse{
			Key:       "source/a.wav",
			URL:       "https://storage.test/b/source/a.wav",
			ExpiresAt: time.Now().Add(120 * time.Second),
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/objects/presign?key=source%2Fa.wav&ttl=120", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://storage.test/b/source/a.wav", body["url"])
}

func TestLibraryHandler_PresignInvalidTTL(t *testing.T) {
	router, _ := setupLibraryRouter(t, "b")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/objects/presign?key=source%2Fa.wav&ttl=nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
