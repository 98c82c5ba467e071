package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audioboard/internal/api/server"
	v1routes "audioboard/internal/api/v1/routes"
	"audioboard/internal/api/v1/services"
	"audioboard/internal/app/audio"
	"audioboard/internal/app/metrics"
	"audioboard/internal/app/recorder"
	"audioboard/internal/app/storage"
	"audioboard/internal/config"
)

var (
	bucket string
	host   string
	port   string
)

func init() {
	Cmd.Flags().StringVarP(&bucket, "bucket", "b", "",
		"default bucket for the dashboard, overrides AUDIOBOARD_BUCKET")
	Cmd.Flags().StringVarP(&host, "host", "H", "", "listen host, overrides AUDIOBOARD_HOST")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides AUDIOBOARD_PORT")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard server",
	Long: `Run the dashboard server

- Serves the single-page dashboard and the v1 API
- Recording requests block for the full capture duration
- The bucket may also be supplied per request via ?bucket=`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.FromEnv()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		if bucket != "" {
			cfg.Bucket = bucket
		}
		if host != "" {
			cfg.Host = host
		}
		if port != "" {
			cfg.Port = port
		}

		gateway, err := storage.NewMinioGateway(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to connect to object storage: %v", err)
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		zapLogger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("failed to create logger: %v", err)
		}
		defer zapLogger.Sync()

		rec := recorder.New(audio.NewPortAudioCapturer(), gateway, metrics.Default(), zapLogger)

		container := &v1routes.ServiceContainer{
			LibraryService:   services.NewLibraryService(gateway),
			RecordingService: services.NewRecordingService(rec),
			DefaultBucket:    cfg.Bucket,
		}

		srv := server.NewServer(server.Config{
			Host:        cfg.Host,
			Port:        cfg.Port,
			ReadTimeout: 30 * time.Second,
			// Captures may legitimately hold the response open for up
			// to five minutes.
			WriteTimeout: 6 * time.Minute,
			IdleTimeout:  120 * time.Second,
			Environment:  cfg.Environment,
		}, container, logger)

		if err := srv.Start(); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("server shutdown failed: %v", err)
		}
	},
}
