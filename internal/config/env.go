package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"audioboard/internal/app/audio"
	"audioboard/internal/app/storage"
)

// Config holds all runtime configuration for the dashboard.
type Config struct {
	// Server settings
	Host        string
	Port        string
	Environment string

	// Default bucket; the operator may override it per request or per
	// CLI invocation.
	Bucket string

	// Recording defaults
	SampleRate int

	MinIO storage.MinioConfig
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system-wide environment variables may
// already be set.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Host:        getEnvOrDefault("AUDIOBOARD_HOST", "0.0.0.0"),
		Port:        getEnvOrDefault("AUDIOBOARD_PORT", "8080"),
		Environment: getEnvOrDefault("AUDIOBOARD_ENV", "development"),
		Bucket:      strings.TrimSpace(os.Getenv("AUDIOBOARD_BUCKET")),
		SampleRate:  audio.DefaultSampleRate,
		MinIO:       storage.MinioConfigFromEnv(),
	}

	if rate := os.Getenv("AUDIOBOARD_SAMPLE_RATE"); rate != "" {
		parsed, err := strconv.Atoi(rate)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid AUDIOBOARD_SAMPLE_RATE %q: must be a positive integer", rate)
		}
		cfg.SampleRate = parsed
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
