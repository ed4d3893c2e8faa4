package model

import (
	"math"
	"testing"
)

func TestNewWallpaperCoverage(t *testing.T) {
	w := NewWallpaper("Vinyl", 1200, 0.53, 10.05)
	if math.Abs(w.UnitCoverage-5.3265) > 1e-6 {
		t.Errorf("expected coverage 5.3265, got %.6f", w.UnitCoverage)
	}
	if w.Kind != KindWallpaper {
		t.Errorf("expected kind wallpaper, got %s", w.Kind)
	}
	if err := w.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestNewTileCoverage(t *testing.T) {
	tile := NewTile("Ceramic", 850, 8, 0.3, 0.3)
	if math.Abs(tile.UnitCoverage-0.72) > 1e-9 {
		t.Errorf("expected coverage 0.72, got %.6f", tile.UnitCoverage)
	}
	if tile.PiecesPerBox != 8 {
		t.Errorf("expected 8 tiles per box, got %d", tile.PiecesPerBox)
	}
}

func TestNewLaminateCoverage(t *testing.T) {
	lam := NewLaminate("Oak", 1450, 8, 0.193, 1.380)
	expected := 0.193 * 1.380 * 8
	if math.Abs(lam.UnitCoverage-expected) > 1e-9 {
		t.Errorf("expected coverage %.6f, got %.6f", expected, lam.UnitCoverage)
	}
}

func TestNewMaterialPlain(t *testing.T) {
	m := NewMaterial("Paint", 300, 2.5)
	if m.Kind != KindPlain {
		t.Errorf("expected kind plain, got %s", m.Kind)
	}
	if m.UnitCoverage != 2.5 {
		t.Errorf("expected coverage 2.5, got %g", m.UnitCoverage)
	}
	if m.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestMaterialValidate(t *testing.T) {
	m := NewMaterial("Bad", 100, 0)
	if err := m.Validate(); err == nil {
		t.Error("expected error for zero coverage")
	}

	m = NewMaterial("Bad", -1, 1)
	if err := m.Validate(); err == nil {
		t.Error("expected error for negative price")
	}

	m = NewMaterial("", 100, 1)
	if err := m.Validate(); err == nil {
		t.Error("expected error for empty name")
	}

	// Free material with positive coverage is valid
	m = NewMaterial("Leftover", 0, 1.5)
	if err := m.Validate(); err != nil {
		t.Errorf("unexpected error for zero price: %v", err)
	}
}

func TestCatalogFindAndRemove(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat.Materials) == 0 {
		t.Fatal("expected default catalog to be non-empty")
	}

	first := cat.Materials[0]
	if found := cat.FindByID(first.ID); found == nil || found.Name != first.Name {
		t.Errorf("FindByID failed for %q", first.ID)
	}
	if found := cat.FindByName(first.Name); found == nil {
		t.Errorf("FindByName failed for %q", first.Name)
	}
	if found := cat.FindByID("nope"); found != nil {
		t.Error("expected nil for unknown ID")
	}

	count := len(cat.Materials)
	if !cat.Remove(first.ID) {
		t.Error("expected Remove to report success")
	}
	if len(cat.Materials) != count-1 {
		t.Errorf("expected %d materials after remove, got %d", count-1, len(cat.Materials))
	}
	if cat.Remove(first.ID) {
		t.Error("expected second Remove to fail")
	}
}

func TestCatalogNames(t *testing.T) {
	cat := Catalog{}
	cat.Add(NewMaterial("A", 1, 1))
	cat.Add(NewMaterial("B", 2, 2))
	names := cat.Names()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestResultTotals(t *testing.T) {
	m := NewMaterial("X", 100, 1)
	results := []CalculationResult{
		NewCalculationResult(m, 10, 11, 1100, 10),
		NewCalculationResult(m, 5, 6, 600, 10),
	}
	if got := TotalArea(results); got != 15 {
		t.Errorf("expected total area 15, got %g", got)
	}
	if got := TotalCost(results); got != 1700 {
		t.Errorf("expected total cost 1700, got %g", got)
	}
}

func TestResultAreaWithReserve(t *testing.T) {
	m := NewMaterial("X", 100, 1)
	r := NewCalculationResult(m, 23.17, 5, 500, 10)
	if math.Abs(r.AreaWithReserve()-25.487) > 1e-9 {
		t.Errorf("expected area with reserve 25.487, got %.6f", r.AreaWithReserve())
	}
}

func TestRoomPerimeter(t *testing.T) {
	room := Room{Length: 3, Width: 2}
	if got := room.Perimeter(); got != 10 {
		t.Errorf("expected perimeter 10, got %g", got)
	}
}
