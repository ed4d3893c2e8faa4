package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/renocalc/internal/model"
)

// LabelInfo holds the data encoded into each shopping label's QR code.
type LabelInfo struct {
	Material       string  `json:"material"`
	Kind           string  `json:"kind"`
	Units          int     `json:"units"`
	TotalCost      float64 `json:"total_cost"`
	Area           float64 `json:"area_m2"`
	ReservePercent float64 `json:"reserve_percent"`
	ResultID       string  `json:"result_id"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded shopping labels, one per
// calculation result. Each label shows the material, the units to buy, and
// the cost, with a QR code encoding the result metadata as JSON. Labels are
// laid out on a standard label sheet format (Avery 5160 / 3 columns x 10
// rows on US Letter).
func ExportLabels(path string, results []model.CalculationResult, currency string) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to generate labels for")
	}

	labels := CollectLabelInfos(results)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, currency); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Material, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single shopping label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, currency string) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%s", info.ResultID, info.Material)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Material name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate name if too long
	name := info.Material
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	// Units to buy
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("Buy: %d units", info.Units), "", 1, "L", false, 0, "")

	// Cost and covered area
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	detail := fmt.Sprintf("%.2f %s | %.2f m2 +%g%%", info.TotalCost, currency, info.Area, info.ReservePercent)
	pdf.CellFormat(textW, 3, detail, "", 1, "L", false, 0, "")

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from calculation results
// for use in testing or alternative export formats.
func CollectLabelInfos(results []model.CalculationResult) []LabelInfo {
	labels := make([]LabelInfo, len(results))
	for i, r := range results {
		labels[i] = LabelInfo{
			Material:       r.Material.Name,
			Kind:           string(r.Material.Kind),
			Units:          r.UnitsNeeded,
			TotalCost:      r.TotalCost,
			Area:           r.Area,
			ReservePercent: r.ReservePercent,
			ResultID:       r.ID,
		}
	}
	return labels
}
