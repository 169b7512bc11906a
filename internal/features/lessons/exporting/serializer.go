package lessons_exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"

	lessons_core "lessonbook/internal/features/lessons/core"
)

type ExportFormat string

const (
	ExportFormatCSV       ExportFormat = "csv"
	ExportFormatPrintable ExportFormat = "printable"
	ExportFormatPDF       ExportFormat = "pdf"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatCSV, ExportFormatPrintable, ExportFormatPDF:
		return true
	}
	return false
}

// ExportResult is a fully serialized report ready to send as a download.
type ExportResult struct {
	Data        []byte
	ContentType string
	FileName    string
}

// Export serializes an already guarded and filtered lesson set. Rows
// come out in input order; callers are responsible for ordering and
// visibility.
func Export(lessons []lessons_core.LessonRow, format ExportFormat) (*ExportResult, error) {
	switch format {
	case ExportFormatCSV:
		return exportCSV(lessons)
	case ExportFormatPrintable:
		return exportPrintable(lessons)
	case ExportFormatPDF:
		return exportPDF(lessons)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

var csvHeader = []string{
	"Project",
	"Title",
	"Category",
	"Date Identified",
	"Status",
	"Impact",
	"Description",
	"Recommendations",
	"Submitted By",
}

func exportCSV(lessons []lessons_core.LessonRow) (*ExportResult, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for i := range lessons {
		lesson := &lessons[i]

		if err := writer.Write([]string{
			lesson.ProjectName,
			lesson.Title,
			categoryName(lesson),
			lesson.DateIdentified.Format("2006-01-02"),
			lesson.Status.Label(),
			lesson.Impact.Label(),
			lesson.Description,
			lesson.Recommendations,
			lesson.SubmittedByUsername,
		}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return &ExportResult{
		Data:        buffer.Bytes(),
		ContentType: "text/csv",
		FileName:    "lessons_learned.csv",
	}, nil
}

func categoryName(lesson *lessons_core.LessonRow) string {
	if lesson.CategoryName == nil {
		return ""
	}
	return *lesson.CategoryName
}
