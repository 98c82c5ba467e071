package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audioboard/cmd/audioboard/cmd/export"
	"audioboard/cmd/audioboard/cmd/record"
	"audioboard/cmd/audioboard/cmd/serve"
	"audioboard/cmd/audioboard/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audioboard",
	Short: "Record audio, upload it to object storage and browse derived transcripts and summaries",
	Long: `Record audio, upload it to object storage and browse derived transcripts and summaries.

- serve runs the single-page dashboard and its API
- record captures from the default input device and uploads in one shot
- export writes the derived texts of a bucket to an Excel workbook

Transcription and summarization happen in an external pipeline that
watches the source/ prefix; audioboard only reads what appears under
transcription/ and processed/.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(record.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
