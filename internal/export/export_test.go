package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/renocalc/internal/model"
)

// buildTestResults creates a realistic result sequence for testing.
func buildTestResults() []model.CalculationResult {
	wallpaper := model.NewWallpaper("Vinyl Wallpaper", 1200, 0.53, 10.05)
	tile := model.NewTile("Ceramic Tile 30x30", 850, 8, 0.3, 0.3)

	return []model.CalculationResult{
		model.NewCalculationResult(wallpaper, 23.17, 5, 6000, 10),
		model.NewCalculationResult(tile, 12.5, 20, 17000, 10),
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	if err := ExportPDF(path, buildTestResults(), "RUB"); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PDF file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not start with PDF header")
	}
}

func TestExportPDF_SingleResultNoSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.pdf")

	results := buildTestResults()[:1]
	if err := ExportPDF(path, results, "RUB"); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestExportPDF_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, nil, "RUB"); err == nil {
		t.Error("expected error for empty results")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created for empty results")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := ExportLabels(path, buildTestResults(), "RUB"); err != nil {
		t.Fatalf("ExportLabels failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty label sheet")
	}
}

func TestExportLabels_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, nil, "RUB"); err == nil {
		t.Error("expected error for empty results")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	results := buildTestResults()
	labels := CollectLabelInfos(results)

	if len(labels) != len(results) {
		t.Fatalf("expected %d labels, got %d", len(results), len(labels))
	}
	if labels[0].Material != "Vinyl Wallpaper" {
		t.Errorf("unexpected material: %s", labels[0].Material)
	}
	if labels[0].Units != 5 {
		t.Errorf("expected 5 units, got %d", labels[0].Units)
	}
	if labels[1].Kind != string(model.KindTile) {
		t.Errorf("expected tile kind, got %s", labels[1].Kind)
	}
}

func TestDefaultFilename(t *testing.T) {
	name := DefaultFilename("pdf")
	if !strings.HasPrefix(name, "calculation_report_") {
		t.Errorf("unexpected prefix: %s", name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("unexpected suffix: %s", name)
	}
}
