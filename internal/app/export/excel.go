package export

import (
	"time"

	"github.com/tealeg/xlsx"
)

// Entry is one derived text object to export.
type Entry struct {
	Key          string
	Content      string
	LastModified time.Time
}

// ToExcel writes transcripts and summaries into a workbook with one
// sheet per prefix.
func ToExcel(transcripts, summaries []Entry, outputFilePath string) error {
	file := xlsx.NewFile()

	if err := addSheet(file, "Transcripts", transcripts); err != nil {
		return err
	}
	if err := addSheet(file, "Summaries", summaries); err != nil {
		return err
	}

	return file.Save(outputFilePath)
}

func addSheet(file *xlsx.File, name string, entries []Entry) error {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "Key"
	headerRow.AddCell().Value = "Last Modified"
	headerRow.AddCell().Value = "Content"

	for _, e := range entries {
		row := sheet.AddRow()
		row.AddCell().Value = e.Key
		row.AddCell().Value = e.LastModified.Format(time.RFC3339)
		row.AddCell().Value = e.Content
	}

	return nil
}
