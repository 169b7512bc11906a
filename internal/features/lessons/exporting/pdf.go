package lessons_exporting

import (
	"bytes"
	"fmt"
	"time"

	lessons_core "lessonbook/internal/features/lessons/core"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Project", 30},
	{"Title", 40},
	{"Category", 25},
	{"Date", 20},
	{"Status", 22},
	{"Impact", 16},
	{"Description", 60},
	{"Recommendations", 48},
	{"Submitted By", 26},
}

func exportPDF(lessons []lessons_core.LessonRow) (*ExportResult, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Lessons Learned Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	generated := fmt.Sprintf("Generated %s, %d lesson(s)",
		time.Now().UTC().Format("2006-01-02 15:04 UTC"), len(lessons))
	pdf.CellFormat(0, 5, generated, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writePDFHeader(pdf)

	pdf.SetFont("Helvetica", "", 7)
	for i := range lessons {
		writePDFRow(pdf, &lessons[i])
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}

	return &ExportResult{
		Data:        buffer.Bytes(),
		ContentType: "application/pdf",
		FileName:    "lessons_learned_report.pdf",
	}, nil
}

func writePDFHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(230, 230, 230)

	for _, column := range pdfColumns {
		pdf.CellFormat(column.width, 6, column.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func writePDFRow(pdf *gofpdf.Fpdf, lesson *lessons_core.LessonRow) {
	values := []string{
		lesson.ProjectName,
		lesson.Title,
		categoryName(lesson),
		lesson.DateIdentified.Format("2006-01-02"),
		lesson.Status.Label(),
		lesson.Impact.Label(),
		lesson.Description,
		lesson.Recommendations,
		lesson.SubmittedByUsername,
	}

	lineHeight := 4.0
	lineCount := 1
	for i, value := range values {
		lines := pdf.SplitText(value, pdfColumns[i].width-2)
		if len(lines) > lineCount {
			lineCount = len(lines)
		}
	}
	rowHeight := lineHeight * float64(lineCount)

	// keep the row on one page
	_, pageHeight := pdf.GetPageSize()
	leftMargin, _, _, bottomMargin := pdf.GetMargins()
	if pdf.GetY()+rowHeight > pageHeight-bottomMargin {
		pdf.AddPage()
		writePDFHeader(pdf)
		pdf.SetFont("Helvetica", "", 7)
	}

	x := pdf.GetX()
	y := pdf.GetY()
	for i, value := range values {
		pdf.Rect(x, y, pdfColumns[i].width, rowHeight, "D")
		pdf.SetXY(x+1, y)
		pdf.MultiCell(pdfColumns[i].width-2, lineHeight, value, "", "L", false)
		x += pdfColumns[i].width
		pdf.SetXY(x, y)
	}
	pdf.SetXY(leftMargin, y+rowHeight)
}
