package recorder

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"audioboard/internal/app/audio"
	apperrors "audioboard/internal/app/errors"
	"audioboard/internal/app/metrics"
	"audioboard/internal/app/storage"
)

// DefaultBaseFilename names uploads when the caller does not provide one.
const DefaultBaseFilename = "recording.wav"

// Result describes a recording that was captured and uploaded.
type Result struct {
	Key        string
	Duration   time.Duration
	SampleRate int
	UploadedAt time.Time
}

// Recorder runs the capture -> serialize -> allocate -> upload pipeline.
// Each step is synchronous; the temp WAV file is removed after the
// upload attempt regardless of outcome.
type Recorder struct {
	capturer  audio.Capturer
	gateway   storage.Gateway
	allocator *storage.KeyAllocator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// New creates a recorder. A nil logger falls back to zap.NewNop.
func New(capturer audio.Capturer, gateway storage.Gateway, m *metrics.Metrics, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		capturer:  capturer,
		gateway:   gateway,
		allocator: storage.NewKeyAllocator(gateway),
		metrics:   m,
		logger:    logger,
	}
}

// RecordAndUpload captures duration worth of audio, serializes it to a
// temp WAV file and uploads it under the source prefix.
func (r *Recorder) RecordAndUpload(ctx context.Context, bucket string, duration time.Duration, sampleRate int, baseFilename string) (*Result, error) {
	if bucket == "" {
		return nil, apperrors.ErrMissingBucket
	}
	if sampleRate <= 0 {
		sampleRate = audio.DefaultSampleRate
	}
	if baseFilename == "" {
		baseFilename = DefaultBaseFilename
	}

	r.metrics.RecordingsStarted.Inc()
	r.metrics.CaptureDuration.Observe(duration.Seconds())
	r.logger.Info("recording started",
		zap.Duration("duration", duration),
		zap.Int("sample_rate", sampleRate),
	)

	samples, err := r.capturer.Record(duration, sampleRate)
	if err != nil {
		r.metrics.RecordingsFailed.Inc()
		r.logger.Error("audio capture failed", zap.Error(err))
		return nil, err
	}

	wavPath, err := audio.WriteTempWAV(samples, sampleRate)
	if err != nil {
		r.metrics.RecordingsFailed.Inc()
		r.logger.Error("waveform serialization failed", zap.Error(err))
		return nil, err
	}
	// The temp file must not outlive the upload attempt, even when the
	// upload fails.
	defer func() {
		if rmErr := os.Remove(wavPath); rmErr != nil {
			r.logger.Warn("failed to remove temp waveform file",
				zap.String("path", wavPath),
				zap.Error(rmErr),
			)
		}
	}()

	key, err := r.allocator.Allocate(ctx, bucket, storage.SourcePrefix, baseFilename)
	if err != nil {
		r.metrics.RecordingsFailed.Inc()
		r.metrics.StorageErrors.WithLabelValues(string(storage.KindOf(err))).Inc()
		r.logger.Error("key allocation failed", zap.Error(err))
		return nil, err
	}

	if err := r.gateway.Upload(ctx, bucket, wavPath, key); err != nil {
		r.metrics.RecordingsFailed.Inc()
		r.metrics.UploadErrors.Inc()
		r.metrics.StorageErrors.WithLabelValues(string(storage.KindOf(err))).Inc()
		r.logger.Error("upload failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	r.metrics.RecordingsCompleted.Inc()
	r.metrics.Uploads.Inc()
	r.logger.Info("recording uploaded",
		zap.String("bucket", bucket),
		zap.String("key", key),
	)

	return &Result{
		Key:        key,
		Duration:   duration,
		SampleRate: sampleRate,
		UploadedAt: time.Now(),
	}, nil
}
