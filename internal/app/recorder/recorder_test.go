package recorder_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "audioboard/internal/app/errors"
	"audioboard/internal/app/metrics"
	"audioboard/internal/app/recorder"
	"audioboard/internal/app/storage"
	"audioboard/internal/app/testutil"
)

func newRecorder(capturer *testutil.StubCapturer, gateway *testutil.MemoryGateway) *recorder.Recorder {
	m := metrics.New(prometheus.NewRegistry())
	return recorder.New(capturer, gateway, m, zap.NewNop())
}

func tempWAVCount(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "audioboard-*.wav"))
	require.NoError(t, err)
	return len(matches)
}

func TestRecordAndUpload_EndToEnd(t *testing.T) {
	gateway := testutil.NewMemoryGateway()
	rec := newRecorder(&testutil.StubCapturer{}, gateway)
	before := tempWAVCount(t)

	result, err := rec.RecordAndUpload(context.Background(), "b", 2*time.Second, 16000, "recording.wav")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "source/recording_"), "got %q", result.Key)
	assert.True(t, strings.HasSuffix(result.Key, ".wav"), "got %q", result.Key)
	assert.Equal(t, 16000, result.SampleRate)
	assert.True(t, gateway.Has("b", result.Key))

	// the new key shows up in the source listing exactly once
	objects, err := gateway.List(context.Background(), "b", storage.SourcePrefix, "")
	require.NoError(t, err)
	found := 0
	for _, o := range objects {
		if o.Key == result.Key {
			found++
		}
	}
	assert.Equal(t, 1, found)

	assert.Equal(t, before, tempWAVCount(t), "temp waveform file must be removed after upload")
}

func TestRecordAndUpload_CaptureFailureSkipsUpload(t *testing.T) {
	gateway := testutil.NewMemoryGateway()
	rec := newRecorder(&testutil.StubCapturer{Err: apperrors.ErrDeviceUnavailable}, gateway)

	_, err := rec.RecordAndUpload(context.Background(), "b", time.Second, 16000, "recording.wav")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDeviceUnavailable)

	objects, listErr := gateway.List(context.Background(), "b", storage.SourcePrefix, "")
	require.NoError(t, listErr)
	assert.Empty(t, objects, "a failed capture must not persist or upload anything")
}

func TestRecordAndUpload_UploadFailureStillCleansUp(t *testing.T) {
	gateway := testutil.NewMemoryGateway()
	gateway.UploadErr = storage.NewError("upload", "b", "", storage.KindUnavailable, errors.New("connection refused"))
	rec := newRecorder(&testutil.StubCapturer{}, gateway)
	before := tempWAVCount(t)

	_, err := rec.RecordAndUpload(context.Background(), "b", time.Second, 16000, "recording.wav")

	require.Error(t, err)
	assert.Equal(t, storage.KindUnavailable, storage.KindOf(err))
	assert.Equal(t, before, tempWAVCount(t), "temp waveform file must be removed even when the upload fails")
}

func TestRecordAndUpload_AmbiguousExistenceErrorAborts(t *testing.T) {
	gateway := testutil.NewMemoryGateway()
	gateway.ExistsErr = storage.NewError("stat", "b", "", storage.KindAccessDenied, errors.New("denied"))
	rec := newRecorder(&testutil.StubCapturer{}, gateway)

	_, err := rec.RecordAndUpload(context.Background(), "b", time.Second, 16000, "recording.wav")

	require.Error(t, err)
	assert.True(t, storage.IsAccessDenied(err))
}

func TestRecordAndUpload_RequiresBucket(t *testing.T) {
	rec := newRecorder(&testutil.StubCapturer{}, testutil.NewMemoryGateway())

	_, err := rec.RecordAndUpload(context.Background(), "", time.Second, 16000, "recording.wav")

	assert.ErrorIs(t, err, apperrors.ErrMissingBucket)
}

func TestRecordAndUpload_Defaults(t *testing.T) {
	gateway := testutil.NewMemoryGateway()
	rec := newRecorder(&testutil.StubCapturer{}, gateway)

	result, err := rec.RecordAndUpload(context.Background(), "b", time.Second, 0, "")

	require.NoError(t, err)
	assert.Equal(t, 44100, result.SampleRate)
	assert.True(t, strings.HasPrefix(result.Key, "source/recording_"), "got %q", result.Key)
}
