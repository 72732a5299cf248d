package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/dmitrijs2005/taskmanager/internal/common"
)

// newPDF returns an A4 document and the translator for text set in its
// core fonts. Core fonts are cp1252; runes outside it print as '.'.
func newPDF() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// RenderPDF lays out the report as a one-page A4 document: the task
// overview followed by a per-user table.
func RenderPDF(r *Report) ([]byte, error) {
	pdf, tr := newPDF()
	pdf.SetTitle("Task Manager Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Task Manager Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated on "+r.GeneratedOn.Format(common.DateLayout))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Task overview")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range [][2]string{
		{"Total", strconv.Itoa(r.Summary.Total)},
		{"Completed", strconv.Itoa(r.Summary.Completed)},
		{"Incomplete", strconv.Itoa(r.Summary.Incomplete)},
		{"Overdue", strconv.Itoa(r.Summary.Overdue)},
	} {
		pdf.CellFormat(40, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "User overview")
	pdf.Ln(8)

	widths := []float64{50, 25, 30, 30, 25}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range userHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, u := range r.Users {
		if !u.HasTasks {
			pdf.CellFormat(widths[0], 7, tr(u.UserName), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1]+widths[2]+widths[3]+widths[4], 7, "No tasks assigned.", "1", 1, "C", false, 0, "")
			continue
		}
		for i, v := range userRow(tr(u.UserName), u.Summary.Total, u.Summary.Completed, u.Summary.Incomplete, u.Summary.Overdue) {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

var userHeader = []string{"User", "Total", "Completed", "Incomplete", "Overdue"}

func userRow(name string, counts ...int) []string {
	row := []string{name}
	for _, c := range counts {
		row = append(row, strconv.Itoa(c))
	}
	return row
}

// RenderCSV writes one row per known user, preceded by an "(all)" row with
// the totals. Users without tasks get empty count columns.
func RenderCSV(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		userHeader,
		userRow("(all)", r.Summary.Total, r.Summary.Completed, r.Summary.Incomplete, r.Summary.Overdue),
	}
	for _, u := range r.Users {
		if !u.HasTasks {
			rows = append(rows, []string{u.UserName, "", "", "", ""})
			continue
		}
		rows = append(rows, userRow(u.UserName, u.Summary.Total, u.Summary.Completed, u.Summary.Incomplete, u.Summary.Overdue))
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
