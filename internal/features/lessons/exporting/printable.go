package lessons_exporting

import (
	"bytes"
	"html/template"
	"time"

	lessons_core "lessonbook/internal/features/lessons/core"
)

// The printable report is a self-contained HTML page that opens the
// browser print dialog as soon as it loads.
const printableTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Lessons Learned Report</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 32px; color: #1a1a1a; }
h1 { font-size: 22px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
p.meta { color: #555; font-size: 12px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; font-size: 12px; }
th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; vertical-align: top; }
th { background: #eee; }
tr { page-break-inside: avoid; }
@media print { body { margin: 12px; } }
</style>
</head>
<body onload="window.print()">
<h1>Lessons Learned Report</h1>
<p class="meta">Generated {{.GeneratedAt}} &middot; {{.Total}} lesson(s)</p>
<table>
<thead>
<tr>
<th>Project</th>
<th>Title</th>
<th>Category</th>
<th>Date Identified</th>
<th>Status</th>
<th>Impact</th>
<th>Description</th>
<th>Recommendations</th>
<th>Submitted By</th>
</tr>
</thead>
<tbody>
{{range .Lessons}}
<tr>
<td>{{.Project}}</td>
<td>{{.Title}}</td>
<td>{{.Category}}</td>
<td>{{.DateIdentified}}</td>
<td>{{.Status}}</td>
<td>{{.Impact}}</td>
<td>{{.Description}}</td>
<td>{{.Recommendations}}</td>
<td>{{.SubmittedBy}}</td>
</tr>
{{end}}
</tbody>
</table>
</body>
</html>
`

var printableTemplate = template.Must(template.New("printable_report").Parse(printableTemplateText))

type printableRow struct {
	Project         string
	Title           string
	Category        string
	DateIdentified  string
	Status          string
	Impact          string
	Description     string
	Recommendations string
	SubmittedBy     string
}

type printableData struct {
	GeneratedAt string
	Total       int
	Lessons     []printableRow
}

func exportPrintable(lessons []lessons_core.LessonRow) (*ExportResult, error) {
	data := printableData{
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Total:       len(lessons),
		Lessons:     make([]printableRow, 0, len(lessons)),
	}

	for i := range lessons {
		data.Lessons = append(data.Lessons, toPrintableRow(&lessons[i]))
	}

	var buffer bytes.Buffer
	if err := printableTemplate.Execute(&buffer, data); err != nil {
		return nil, err
	}

	return &ExportResult{
		Data:        buffer.Bytes(),
		ContentType: "text/html",
		FileName:    "lessons_learned_report.html",
	}, nil
}

func toPrintableRow(lesson *lessons_core.LessonRow) printableRow {
	return printableRow{
		Project:         lesson.ProjectName,
		Title:           lesson.Title,
		Category:        categoryName(lesson),
		DateIdentified:  lesson.DateIdentified.Format("2006-01-02"),
		Status:          lesson.Status.Label(),
		Impact:          lesson.Impact.Label(),
		Description:     lesson.Description,
		Recommendations: lesson.Recommendations,
		SubmittedBy:     lesson.SubmittedByUsername,
	}
}
