package model

import (
	"fmt"

	"github.com/google/uuid"
)

// MaterialKind identifies how a material's unit coverage was derived.
type MaterialKind string

const (
	KindPlain     MaterialKind = "plain"     // Coverage given directly
	KindWallpaper MaterialKind = "wallpaper" // Coverage from roll width x length
	KindTile      MaterialKind = "tile"      // Coverage from tile dims x tiles per box
	KindLaminate  MaterialKind = "laminate"  // Coverage from plank dims x planks per pack
)

// Standard physical dimensions in meters, used by catalog presets and
// importers when a row omits them.
const (
	StandardRollWidth   = 0.53
	StandardRollLength  = 10.05
	StandardTileWidth   = 0.3
	StandardTileHeight  = 0.3
	StandardPlankWidth  = 0.193
	StandardPlankLength = 1.380
)

// Material represents a purchasable finishing material. UnitCoverage is the
// area in square meters covered by one purchasable unit (roll, box, pack).
// The calculator only ever reads PricePerUnit and UnitCoverage; the kind and
// physical dimensions are informational.
type Material struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Kind         MaterialKind `json:"kind"`
	PricePerUnit float64      `json:"price_per_unit"`
	UnitCoverage float64      `json:"unit_coverage"` // m² per unit

	// Physical dimensions that derived the coverage.
	// Only the fields relevant to the kind are set.
	RollWidth    float64 `json:"roll_width,omitempty"`    // m
	RollLength   float64 `json:"roll_length,omitempty"`   // m
	PieceWidth   float64 `json:"piece_width,omitempty"`   // m (tile or plank)
	PieceLength  float64 `json:"piece_length,omitempty"`  // m (tile or plank)
	PiecesPerBox int     `json:"pieces_per_box,omitempty"`
}

// NewMaterial creates a plain material with the coverage given directly.
func NewMaterial(name string, pricePerUnit, unitCoverage float64) Material {
	return Material{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Kind:         KindPlain,
		PricePerUnit: pricePerUnit,
		UnitCoverage: unitCoverage,
	}
}

// NewWallpaper creates a sheet-roll material. Coverage is rollWidth x rollLength.
func NewWallpaper(name string, pricePerRoll, rollWidth, rollLength float64) Material {
	return Material{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Kind:         KindWallpaper,
		PricePerUnit: pricePerRoll,
		UnitCoverage: rollWidth * rollLength,
		RollWidth:    rollWidth,
		RollLength:   rollLength,
	}
}

// NewTile creates a tiled material sold by the box.
// Coverage is tileWidth x tileHeight x tilesPerBox.
func NewTile(name string, pricePerBox float64, tilesPerBox int, tileWidth, tileHeight float64) Material {
	return Material{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Kind:         KindTile,
		PricePerUnit: pricePerBox,
		UnitCoverage: tileWidth * tileHeight * float64(tilesPerBox),
		PieceWidth:   tileWidth,
		PieceLength:  tileHeight,
		PiecesPerBox: tilesPerBox,
	}
}

// NewLaminate creates a plank material sold by the pack.
// Coverage is plankWidth x plankLength x planksPerPack.
func NewLaminate(name string, pricePerPack float64, planksPerPack int, plankWidth, plankLength float64) Material {
	return Material{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Kind:         KindLaminate,
		PricePerUnit: pricePerPack,
		UnitCoverage: plankWidth * plankLength * float64(planksPerPack),
		PieceWidth:   plankWidth,
		PieceLength:  plankLength,
		PiecesPerBox: planksPerPack,
	}
}

// Validate checks the invariants the calculator relies on.
func (m Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("material name must not be empty")
	}
	if m.UnitCoverage <= 0 {
		return fmt.Errorf("material %q: unit coverage must be positive, got %g", m.Name, m.UnitCoverage)
	}
	if m.PricePerUnit < 0 {
		return fmt.Errorf("material %q: price per unit must not be negative, got %g", m.Name, m.PricePerUnit)
	}
	return nil
}

func (m Material) String() string {
	return fmt.Sprintf("%s (%s) - %.2f per unit, covers %.4f m²", m.Name, m.Kind, m.PricePerUnit, m.UnitCoverage)
}
