package importer

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/renocalc/internal/model"
)

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("name,type,price\nVinyl,wallpaper,1200\n")
	if d := DetectCSVDelimiter(data); d != ',' {
		t.Errorf("expected comma, got %q", d)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("name;type;price\nVinyl;wallpaper;1200\n")
	if d := DetectCSVDelimiter(data); d != ';' {
		t.Errorf("expected semicolon, got %q", d)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("name\ttype\tprice\nVinyl\twallpaper\t1200\n")
	if d := DetectCSVDelimiter(data); d != '\t' {
		t.Errorf("expected tab, got %q", d)
	}
}

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Name", "Type", "Price", "Coverage", "Width", "Length", "Count"})
	if !isHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Price != 2 || mapping.Coverage != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
	if mapping.Width != 4 || mapping.Length != 5 || mapping.Count != 6 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Material", "Kind", "Cost", "Area per unit", "Per pack"})
	if !isHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Price != 2 || mapping.Coverage != 3 || mapping.Count != 4 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Vinyl", "wallpaper", "1200"})
	if isHeader {
		t.Fatal("expected no header detection")
	}
	// Positional fallback
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Price != 2 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	csv := `name,type,price,coverage,width,length,count
Vinyl,wallpaper,1200,,0.53,10.05,
Ceramic,tile,850,,0.3,0.3,8
Oak,laminate,1450,,0.193,1.380,8
Paint,plain,300,2.5,,,
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 4 {
		t.Fatalf("expected 4 materials, got %d", len(result.Materials))
	}

	vinyl := result.Materials[0]
	if vinyl.Kind != model.KindWallpaper {
		t.Errorf("expected wallpaper, got %s", vinyl.Kind)
	}
	if math.Abs(vinyl.UnitCoverage-5.3265) > 1e-6 {
		t.Errorf("expected coverage 5.3265, got %.6f", vinyl.UnitCoverage)
	}

	tile := result.Materials[1]
	if tile.Kind != model.KindTile || math.Abs(tile.UnitCoverage-0.72) > 1e-9 {
		t.Errorf("unexpected tile: %+v", tile)
	}

	paint := result.Materials[3]
	if paint.Kind != model.KindPlain || paint.UnitCoverage != 2.5 {
		t.Errorf("unexpected plain material: %+v", paint)
	}
}

func TestImportCSVFromReader_StandardDimensionDefaults(t *testing.T) {
	// Wallpaper rows may omit roll dimensions; standards apply.
	csv := `name,type,price
Budget Roll,wallpaper,900
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 1 {
		t.Fatalf("expected 1 material, got %d", len(result.Materials))
	}
	expected := model.StandardRollWidth * model.StandardRollLength
	if math.Abs(result.Materials[0].UnitCoverage-expected) > 1e-9 {
		t.Errorf("expected standard coverage %.6f, got %.6f", expected, result.Materials[0].UnitCoverage)
	}
}

func TestImportCSVFromReader_MissingPrice(t *testing.T) {
	csv := `name,type,price,coverage
NoPrice,plain,,2.5
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if len(result.Materials) != 0 {
		t.Errorf("expected no materials, got %d", len(result.Materials))
	}
}

func TestImportCSVFromReader_NegativePrice(t *testing.T) {
	csv := `name,type,price,coverage
Bad,plain,-10,2.5
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_TileMissingCount(t *testing.T) {
	csv := `name,type,price,width,length
NoCount,tile,850,0.3,0.3
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_UnknownKindWarns(t *testing.T) {
	csv := `name,type,price,coverage
Odd,granite,500,1.2
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 1 || result.Materials[0].Kind != model.KindPlain {
		t.Errorf("expected plain fallback, got %+v", result.Materials)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "granite") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown-kind warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	csv := `name,type,price,coverage
Good,plain,100,2.0
Bad,plain,abc,2.0
Also Good,plain,200,1.0
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(result.Materials))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	csv := `name,type,price,coverage
Good,plain,100,2.0

,,,
Another,plain,50,1.0
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(result.Materials))
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
}

func TestImportCSVFromReader_MissingPriceColumnInHeader(t *testing.T) {
	csv := `name,type,coverage
Good,plain,2.0
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing price column")
	}
}

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	content := "name;type;price;coverage\nVinyl;wallpaper;1200;\nPaint;plain;300;2.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Errorf("expected 2 materials, got %d", len(result.Materials))
	}

	// Semicolon delimiter should be reported
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/catalog.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportExcel_WithHeaders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Name", "Type", "Price", "Coverage", "Width", "Length", "Count"},
		{"Vinyl", "wallpaper", 1200, "", 0.53, 10.05, ""},
		{"Ceramic", "tile", 850, "", 0.3, 0.3, 8},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(result.Materials))
	}
	if result.Materials[1].PiecesPerBox != 8 {
		t.Errorf("expected 8 pieces per box, got %d", result.Materials[1].PiecesPerBox)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/catalog.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
