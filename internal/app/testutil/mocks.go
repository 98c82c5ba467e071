package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"audioboard/internal/api/v1/dto"
)

// MockLibraryService is a testify mock of services.LibraryService.
type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) Library(ctx context.Context, bucket string) (*dto.LibraryResponse, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LibraryResponse), args.Error(1)
}

func (m *MockLibraryService) ListAudio(ctx context.Context, bucket string) (*dto.ListResponse, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResponse), args.Error(1)
}

func (m *MockLibraryService) ListTranscripts(ctx context.Context, bucket string) (*dto.ListResponse, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResponse), args.Error(1)
}

func (m *MockLibraryService) ListSummaries(ctx context.Context, bucket string) (*dto.ListResponse, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListResponse), args.Error(1)
}

func (m *MockLibraryService) Content(ctx context.Context, bucket, key string) (*dto.ObjectContentResponse, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ObjectContentResponse), args.Error(1)
}

func (m *MockLibraryService) PresignPlayback(ctx context.Context, bucket, key string, ttl time.Duration) (*dto.PresignResponse, error) {
	args := m.Called(ctx, bucket, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PresignResponse), args.Error(1)
}

// MockRecordingService is a testify mock of services.RecordingService.
type MockRecordingService struct {
	mock.Mock
}

func (m *MockRecordingService) CreateRecording(ctx context.Context, bucket string, req *dto.CreateRecordingRequest) (*dto.RecordingResponse, error) {
	args := m.Called(ctx, bucket, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecordingResponse), args.Error(1)
}

// MockServices bundles the service mocks for handler tests.
type MockServices struct {
	LibraryService   *MockLibraryService
	RecordingService *MockRecordingService
}

// NewMockServices creates mocks with expectation assertion on cleanup.
func NewMockServices(t *testing.T) *MockServices {
	ms := &MockServices{
		LibraryService:   &MockLibraryService{},
		RecordingService: &MockRecordingService{},
	}
	t.Cleanup(func() {
		ms.LibraryService.AssertExpectations(t)
		ms.RecordingService.AssertExpectations(t)
	})
	return ms
}

// StubCapturer is an audio.Capturer returning canned samples.
type StubCapturer struct {
	Err error
}

// Record returns duration*rate silent samples, or the configured error.
func (s *StubCapturer) Record(duration time.Duration, sampleRate int) ([]int16, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return make([]int16, int(duration.Seconds()*float64(sampleRate))), nil
}
