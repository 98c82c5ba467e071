package record

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audioboard/internal/app/audio"
	"audioboard/internal/app/metrics"
	"audioboard/internal/app/recorder"
	"audioboard/internal/app/storage"
	"audioboard/internal/config"
)

var (
	bucket       string
	durationSec  int
	sampleRate   int
	baseFilename string
	noProgress   bool
)

func init() {
	Cmd.Flags().StringVarP(&bucket, "bucket", "b", "",
		"target bucket, overrides AUDIOBOARD_BUCKET")
	Cmd.Flags().IntVarP(&durationSec, "duration", "d", 60,
		"recording duration in seconds (1-300)")
	Cmd.Flags().IntVarP(&sampleRate, "rate", "r", 0,
		"sample rate in Hz, defaults to AUDIOBOARD_SAMPLE_RATE or 44100")
	Cmd.Flags().StringVarP(&baseFilename, "name", "n", recorder.DefaultBaseFilename,
		"base filename; the stored key gets a timestamp and random suffix appended")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
}

// Cmd represents the record command
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Capture audio from the default input device and upload it",
	Long: `Capture audio from the default input device and upload it

- Records mono 16-bit audio for the requested duration (blocking)
- Serializes to a temporary WAV file, removed after the upload attempt
- Uploads under the source/ prefix with a collision-checked key`,
	Run: func(cmd *cobra.Command, args []string) {
		if durationSec < 1 || durationSec > 300 {
			log.Fatalf("duration must be between 1 and 300 seconds, got %d", durationSec)
		}

		cfg, err := config.FromEnv()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		if bucket == "" {
			bucket = cfg.Bucket
		}
		if bucket == "" {
			log.Fatal("no bucket configured: pass --bucket or set AUDIOBOARD_BUCKET")
		}
		if sampleRate == 0 {
			sampleRate = cfg.SampleRate
		}

		gateway, err := storage.NewMinioGateway(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to connect to object storage: %v", err)
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("failed to create logger: %v", err)
		}
		defer logger.Sync()

		rec := recorder.New(audio.NewPortAudioCapturer(), gateway, metrics.Default(), logger)
		duration := time.Duration(durationSec) * time.Second

		pm := recorder.NewProgressManager(recorder.ProgressConfig{Enabled: !noProgress})
		bar := pm.CreateBar(durationSec, "recording")
		done := make(chan struct{})
		go bar.TickDuring(duration, done)

		result, err := rec.RecordAndUpload(context.Background(), bucket, duration, sampleRate, baseFilename)
		close(done)
		pm.Wait()

		if err != nil {
			log.Fatalf("recording failed: %v", err)
		}

		fmt.Printf("recording saved as %s (bucket %s)\n", result.Key, bucket)
	},
}
