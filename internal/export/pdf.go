// Package export provides functionality for exporting calculation results
// to report files: PDF documents, Excel workbooks, and QR-coded shopping
// labels. Exporters consume an ordered sequence of results and produce a
// file; they validate only that the sequence is non-empty.
package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/renocalc/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 8.0
	blockGap     = 10.0
)

// DefaultFilename generates a timestamped report file name for the given
// extension, e.g. "calculation_report_20250131_154500.pdf".
func DefaultFilename(ext string) string {
	return fmt.Sprintf("calculation_report_%s.%s", time.Now().Format("20060102_150405"), ext)
}

// ExportPDF generates a PDF report of the given calculation results.
// Each result gets its own detail table; when more than one result is
// present, a totals section with aggregate area and cost follows.
func ExportPDF(path string, results []model.CalculationResult, currency string) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, "Finishing Material Report", "", 1, "C", false, 0, "")

	// Generation date, right-aligned
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetX(marginLeft)
	dateLine := fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04"))
	pdf.CellFormat(contentWidth, 6, dateLine, "", 1, "R", false, 0, "")
	pdf.Ln(4)

	for i, result := range results {
		renderResultTable(pdf, result, i+1, currency)
		pdf.Ln(blockGap)
	}

	if len(results) > 1 {
		renderTotals(pdf, results, currency)
	}

	return pdf.OutputFileAndClose(path)
}

// renderResultTable draws one calculation's detail table.
func renderResultTable(pdf *fpdf.Fpdf, result model.CalculationResult, num int, currency string) {
	// Block heading
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	heading := fmt.Sprintf("Calculation #%d: %s", num, result.Material.Name)
	pdf.CellFormat(contentWidth, rowHeight, heading, "", 1, "L", false, 0, "")

	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"Material", result.Material.Name, false},
		{"Coverage area", fmt.Sprintf("%.2f m2", result.Area), false},
		{"Reserve", fmt.Sprintf("%g%%", result.ReservePercent), false},
		{"Units needed", fmt.Sprintf("%d", result.UnitsNeeded), false},
		{"Total cost", fmt.Sprintf("%.2f %s", result.TotalCost, currency), true},
	}

	labelW := contentWidth * 0.4
	valueW := contentWidth - labelW

	for i, row := range rows {
		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(marginLeft)
		pdf.CellFormat(labelW, rowHeight, row.label+":", "1", 0, "L", true, 0, "")

		if row.bold {
			pdf.SetFont("Helvetica", "B", 11)
		}
		pdf.CellFormat(valueW, rowHeight, row.value, "1", 1, "L", true, 0, "")
	}
}

// renderTotals draws the aggregate summary for multi-result reports.
func renderTotals(pdf *fpdf.Fpdf, results []model.CalculationResult, currency string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, rowHeight, "Summary", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Line(marginLeft, y, pageWidth-marginRight, y)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Calculations: %d", len(results)), "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Total area: %.2f m2", model.TotalArea(results)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, 7, fmt.Sprintf("Total cost: %.2f %s", model.TotalCost(results), currency), "", 1, "L", false, 0, "")
}
