package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/renocalc/internal/model"
)

const sheetName = "Material Report"

// Column layout for the report table.
var reportColumns = []struct {
	header string
	width  float64
}{
	{"#", 6},
	{"Material", 34},
	{"Area (m2)", 13},
	{"Reserve (%)", 13},
	{"Units", 10},
	{"Cost", 16},
}

// ExportExcel generates an XLSX report of the given calculation results:
// a title row, a styled header, one row per result, and a bold totals row
// when more than one result is present.
func ExportExcel(path string, results []model.CalculationResult, currency string) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeReportHeader(f); err != nil {
		return err
	}

	areaFmt := "0.00"
	costFmt := fmt.Sprintf("#,##0.00\\ \"%s\"", currency)

	areaStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &areaFmt, Border: thinBorders()})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	costStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &costFmt, Border: thinBorders()})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	// Data rows start below the title, date, and header rows.
	row := 5
	for i, result := range results {
		values := []interface{}{
			i + 1,
			result.Material.Name,
			result.Area,
			result.ReservePercent,
			result.UnitsNeeded,
			result.TotalCost,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to map cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
			style := cellStyle
			switch col {
			case 2:
				style = areaStyle
			case 5:
				style = costStyle
			}
			if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
		row++
	}

	if len(results) > 1 {
		if err := writeTotalsRow(f, results, row+1, areaFmt, costFmt); err != nil {
			return err
		}
	}

	// Column widths
	for i, col := range reportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to map column: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeReportHeader writes the merged title cell, the date line, and the
// styled table header row.
func writeReportHeader(f *excelize.File) error {
	if err := f.MergeCell(sheetName, "A1", "F1"); err != nil {
		return fmt.Errorf("failed to merge title cells: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A1", "FINISHING MATERIAL REPORT"); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("failed to style title: %w", err)
	}

	if err := f.MergeCell(sheetName, "A2", "F2"); err != nil {
		return fmt.Errorf("failed to merge date cells: %w", err)
	}
	dateLine := fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04"))
	if err := f.SetCellValue(sheetName, "A2", dateLine); err != nil {
		return fmt.Errorf("failed to write date: %w", err)
	}
	dateStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A2", "A2", dateStyle); err != nil {
		return fmt.Errorf("failed to style date: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return fmt.Errorf("failed to map header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", col.header, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header %q: %w", col.header, err)
		}
	}
	return nil
}

// writeTotalsRow writes the bold aggregate row for multi-result reports.
func writeTotalsRow(f *excelize.File, results []model.CalculationResult, row int, areaFmt, costFmt string) error {
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create totals style: %w", err)
	}
	boldAreaStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &areaFmt})
	if err != nil {
		return fmt.Errorf("failed to create totals style: %w", err)
	}
	boldCostStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &costFmt})
	if err != nil {
		return fmt.Errorf("failed to create totals style: %w", err)
	}

	labelCell, _ := excelize.CoordinatesToCellName(1, row)
	areaCell, _ := excelize.CoordinatesToCellName(3, row)
	costCell, _ := excelize.CoordinatesToCellName(6, row)

	if err := f.SetCellValue(sheetName, labelCell, "TOTAL:"); err != nil {
		return fmt.Errorf("failed to write totals label: %w", err)
	}
	if err := f.SetCellValue(sheetName, areaCell, model.TotalArea(results)); err != nil {
		return fmt.Errorf("failed to write total area: %w", err)
	}
	if err := f.SetCellValue(sheetName, costCell, model.TotalCost(results)); err != nil {
		return fmt.Errorf("failed to write total cost: %w", err)
	}

	if err := f.SetCellStyle(sheetName, labelCell, labelCell, boldStyle); err != nil {
		return fmt.Errorf("failed to style totals label: %w", err)
	}
	if err := f.SetCellStyle(sheetName, areaCell, areaCell, boldAreaStyle); err != nil {
		return fmt.Errorf("failed to style total area: %w", err)
	}
	if err := f.SetCellStyle(sheetName, costCell, costCell, boldCostStyle); err != nil {
		return fmt.Errorf("failed to style total cost: %w", err)
	}
	return nil
}

// thinBorders returns a thin border on all four sides.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
