package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audioboard/internal/app/audio"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("AUDIOBOARD_HOST", "")
	t.Setenv("AUDIOBOARD_PORT", "")
	t.Setenv("AUDIOBOARD_ENV", "")
	t.Setenv("AUDIOBOARD_BUCKET", "")
	t.Setenv("AUDIOBOARD_SAMPLE_RATE", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.Bucket)
	assert.Equal(t, audio.DefaultSampleRate, cfg.SampleRate)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("AUDIOBOARD_HOST", "127.0.0.1")
	t.Setenv("AUDIOBOARD_PORT", "9090")
	t.Setenv("AUDIOBOARD_ENV", "production")
	t.Setenv("AUDIOBOARD_BUCKET", "  recordings  ")
	t.Setenv("AUDIOBOARD_SAMPLE_RATE", "16000")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "recordings", cfg.Bucket)
	assert.Equal(t, 16000, cfg.SampleRate)
}

func TestFromEnv_InvalidSampleRate(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-44100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUDIOBOARD_SAMPLE_RATE", tt.rate)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "AUDIOBOARD_SAMPLE_RATE")
		})
	}
}

func TestFromEnv_MinioDefaults(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("MINIO_ACCESS_KEY", "")
	t.Setenv("MINIO_SECRET_KEY", "")
	t.Setenv("MINIO_USE_SSL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "minioadmin", cfg.MinIO.AccessKey)
	assert.False(t, cfg.MinIO.UseSSL)
}
