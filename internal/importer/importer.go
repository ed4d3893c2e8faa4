// Package importer provides CSV and Excel import functionality for material
// catalogs, and DXF import for room floor plans. The table importers support
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/renocalc/internal/model"
)

// ImportResult holds the results of a catalog import operation.
type ImportResult struct {
	Materials []model.Material
	Errors    []string
	Warnings  []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Kind     int
	Price    int
	Coverage int
	Width    int
	Length   int
	Count    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "material", "label", "description", "desc"},
	"kind":     {"kind", "type", "category", "material type"},
	"price":    {"price", "cost", "price per unit", "unit price"},
	"coverage": {"coverage", "unit coverage", "coverage m2", "area per unit"},
	"width":    {"width", "w", "roll width", "tile width", "plank width"},
	"length":   {"length", "l", "roll length", "tile height", "plank length"},
	"count":    {"count", "qty", "per box", "per pack", "pieces", "tiles per box", "planks per pack"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		// Score: how many rows share the first row's column count
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:     -1,
		Kind:     -1,
		Price:    -1,
		Coverage: -1,
		Width:    -1,
		Length:   -1,
		Count:    -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "kind":
						if mapping.Kind == -1 {
							mapping.Kind = i
						}
					case "price":
						if mapping.Price == -1 {
							mapping.Price = i
						}
					case "coverage":
						if mapping.Coverage == -1 {
							mapping.Coverage = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					case "count":
						if mapping.Count == -1 {
							mapping.Count = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Kind, Price, Coverage, Width, Length, Count
		return ColumnMapping{
			Name:     0,
			Kind:     1,
			Price:    2,
			Coverage: 3,
			Width:    4,
			Length:   5,
			Count:    6,
		}, false
	}

	return mapping, true
}

// parseKind converts a material kind string to a model.MaterialKind.
// It returns the kind and a boolean indicating whether the string was recognized.
func parseKind(s string) (model.MaterialKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wallpaper", "roll", "sheet-roll":
		return model.KindWallpaper, true
	case "tile", "tiles":
		return model.KindTile, true
	case "laminate", "plank", "planks":
		return model.KindLaminate, true
	case "", "plain", "material":
		return model.KindPlain, true
	default:
		return model.KindPlain, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseFloatCell parses an optional numeric cell, returning the fallback
// when the cell is empty.
func parseFloatCell(row []string, idx int, fallback float64) (float64, error) {
	s := getCell(row, idx)
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseRow extracts a Material from a row using the given column mapping.
// Returns the material, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, materialCount int) (model.Material, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Material %d", materialCount+1)
	}

	priceStr := getCell(row, mapping.Price)
	if priceStr == "" {
		return model.Material{}, fmt.Sprintf("%s: Missing price value", rowLabel), ""
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return model.Material{}, fmt.Sprintf("%s: Invalid price '%s'", rowLabel, priceStr), ""
	}
	if price < 0 {
		return model.Material{}, fmt.Sprintf("%s: Price must not be negative", rowLabel), ""
	}

	var warning string
	kindStr := getCell(row, mapping.Kind)
	kind, ok := parseKind(kindStr)
	if !ok {
		warning = fmt.Sprintf("%s: Unknown material kind '%s', treating as plain", rowLabel, kindStr)
	}

	switch kind {
	case model.KindWallpaper:
		width, err := parseFloatCell(row, mapping.Width, model.StandardRollWidth)
		if err != nil {
			return model.Material{}, fmt.Sprintf("%s: Invalid roll width '%s'", rowLabel, getCell(row, mapping.Width)), warning
		}
		length, err := parseFloatCell(row, mapping.Length, model.StandardRollLength)
		if err != nil {
			return model.Material{}, fmt.Sprintf("%s: Invalid roll length '%s'", rowLabel, getCell(row, mapping.Length)), warning
		}
		if width <= 0 || length <= 0 {
			return model.Material{}, fmt.Sprintf("%s: Roll dimensions must be positive", rowLabel), warning
		}
		return model.NewWallpaper(name, price, width, length), "", warning

	case model.KindTile, model.KindLaminate:
		countStr := getCell(row, mapping.Count)
		if countStr == "" {
			return model.Material{}, fmt.Sprintf("%s: Missing piece count for %s", rowLabel, kind), warning
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return model.Material{}, fmt.Sprintf("%s: Invalid piece count '%s'", rowLabel, countStr), warning
		}

		defaultW, defaultL := model.StandardTileWidth, model.StandardTileHeight
		if kind == model.KindLaminate {
			defaultW, defaultL = model.StandardPlankWidth, model.StandardPlankLength
		}
		width, err := parseFloatCell(row, mapping.Width, defaultW)
		if err != nil {
			return model.Material{}, fmt.Sprintf("%s: Invalid piece width '%s'", rowLabel, getCell(row, mapping.Width)), warning
		}
		length, err := parseFloatCell(row, mapping.Length, defaultL)
		if err != nil {
			return model.Material{}, fmt.Sprintf("%s: Invalid piece length '%s'", rowLabel, getCell(row, mapping.Length)), warning
		}
		if width <= 0 || length <= 0 {
			return model.Material{}, fmt.Sprintf("%s: Piece dimensions must be positive", rowLabel), warning
		}
		if kind == model.KindTile {
			return model.NewTile(name, price, count, width, length), "", warning
		}
		return model.NewLaminate(name, price, count, width, length), "", warning

	default:
		coverageStr := getCell(row, mapping.Coverage)
		if coverageStr == "" {
			return model.Material{}, fmt.Sprintf("%s: Missing coverage value", rowLabel), warning
		}
		coverage, err := strconv.ParseFloat(coverageStr, 64)
		if err != nil {
			return model.Material{}, fmt.Sprintf("%s: Invalid coverage '%s'", rowLabel, coverageStr), warning
		}
		if coverage <= 0 {
			return model.Material{}, fmt.Sprintf("%s: Coverage must be positive", rowLabel), warning
		}
		return model.NewMaterial(name, price, coverage), "", warning
	}
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports materials from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports materials from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports materials from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into materials.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		if mapping.Price == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Price")
			return result
		}
	} else {
		// No header: a non-numeric price column in the first row suggests an
		// unrecognized header, skip it but keep positional mapping.
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][2]), 64); err != nil {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		material, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Materials))

		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		result.Materials = append(result.Materials, material)
	}

	return result
}
