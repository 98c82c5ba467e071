package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestToExcel(t *testing.T) {
	modified := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	transcripts := []Entry{
		{Key: "transcription/a.txt", Content: "hello world", LastModified: modified},
		{Key: "transcription/b.txt", Content: "second transcript", LastModified: modified},
	}
	summaries := []Entry{
		{Key: "processed/a.txt", Content: "a summary", LastModified: modified},
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, ToExcel(transcripts, summaries, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	transcriptSheet := file.Sheet["Transcripts"]
	require.NotNil(t, transcriptSheet)
	require.Len(t, transcriptSheet.Rows, 3)
	assert.Equal(t, "Key", transcriptSheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "transcription/a.txt", transcriptSheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "2025-06-01T12:00:00Z", transcriptSheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "hello world", transcriptSheet.Rows[1].Cells[2].Value)

	summarySheet := file.Sheet["Summaries"]
	require.NotNil(t, summarySheet)
	require.Len(t, summarySheet.Rows, 2)
	assert.Equal(t, "a summary", summarySheet.Rows[1].Cells[2].Value)
}

func TestToExcel_EmptyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, nil, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	for _, name := range []string{"Transcripts", "Summaries"} {
		sheet := file.Sheet[name]
		require.NotNil(t, sheet, name)
		assert.Len(t, sheet.Rows, 1, name)
	}
}
