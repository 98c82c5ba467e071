package export

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"audioboard/internal/app/export"
	"audioboard/internal/app/storage"
	"audioboard/internal/config"
)

var (
	bucket         string
	outputFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "bucket to export, overrides AUDIOBOARD_BUCKET")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a bucket's transcripts and summaries to excel",
	Long: `Export a bucket's transcripts and summaries to excel

- Reads every text object under transcription/ and processed/
- Writes one workbook with a sheet per prefix`,
	Run: func(cmd *cobra.Command, args []string) {
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

		gateway, err := storage.NewMinioGateway(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to connect to object storage: %v", err)
		}

		ctx := context.Background()

		transcripts, err := collect(ctx, gateway, bucket, storage.TranscriptionPrefix, ".txt")
		if err != nil {
			log.Fatal(err)
		}
		summaries, err := collect(ctx, gateway, bucket, storage.ProcessedPrefix, "")
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(transcripts, summaries, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}

func collect(ctx context.Context, gateway storage.Gateway, bucket, prefix, extFilter string) ([]export.Entry, error) {
	objects, err := gateway.List(ctx, bucket, prefix, extFilter)
	if err != nil {
		return nil, err
	}

	entries := make([]export.Entry, 0, len(objects))
	for _, obj := range objects {
		content, err := gateway.ReadText(ctx, bucket, obj.Key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, export.Entry{
			Key:          obj.Key,
			Content:      content,
			LastModified: obj.LastModified,
		})
	}
	return entries, nil
}
