package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/report"
)

// Column widths of the details table, in mm on an A4 portrait page.
var tableWidths = [7]float64{34, 28, 20, 20, 20, 24, 36}

var tableHeaders = [7]string{"Name", "Phone", "Clock In", "Clock Out", "Status", "Amount", "Description"}

// renderPDF lays out the attendance report: title block, summary counts and a
// details grid with one row per roster worker, plus a branded footer.
func renderPDF(rep report.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(10, 10)
	pdf.CellFormat(190, 10, "Worker Attendance Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(14, 21)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Generated by: %s", rep.GeneratedBy)), "", 1, "L", false, 0, "")
	pdf.SetXY(14, 28)
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s", displayDate(rep.Date)), "", 1, "L", false, 0, "")
	pdf.SetXY(14, 35)
	pdf.CellFormat(0, 7, "Project: Gopal Construction", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 14)
	pdf.SetXY(14, 46)
	pdf.CellFormat(0, 8, "Attendance Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(14, 56)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Present: %d", rep.Present), "", 1, "L", false, 0, "")
	pdf.SetXY(14, 63)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Absent: %d", rep.Absent), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 14)
	pdf.SetXY(14, 74)
	pdf.CellFormat(0, 8, "Attendance Details", "", 1, "L", false, 0, "")

	pdf.SetXY(14, 85)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range tableHeaders {
		pdf.CellFormat(tableWidths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rep.Rows {
		pdf.SetX(14)
		cells := [7]string{row.Name, row.Phone, row.ClockIn, row.ClockOut, row.Status, row.Amount, row.Description}
		for i, cell := range cells {
			pdf.CellFormat(tableWidths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	_, pageHeight := pdf.GetPageSize()
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetXY(10, pageHeight-10)
	pdf.CellFormat(190, 5, "Gopal Construction - Worker Management System", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// displayDate renders a YYYY-MM-DD date as "January 02, 2006" for the report
// header, falling back to the raw string if it does not parse.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}
