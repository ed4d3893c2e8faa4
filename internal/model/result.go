package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CalculationResult is an immutable record of one material calculation.
// It is created only by the calculator; callers hold it by value.
type CalculationResult struct {
	ID             string   `json:"id"`
	Material       Material `json:"material"`
	Area           float64  `json:"area"`            // m² requested (before reserve)
	UnitsNeeded    int      `json:"units_needed"`    // whole purchasable units
	TotalCost      float64  `json:"total_cost"`
	ReservePercent float64  `json:"reserve_percent"` // [0,100]
	CreatedAt      string   `json:"created_at"`      // RFC3339 UTC
}

// NewCalculationResult stamps a result with a fresh ID and creation time.
func NewCalculationResult(m Material, area float64, unitsNeeded int, totalCost, reservePercent float64) CalculationResult {
	return CalculationResult{
		ID:             uuid.New().String()[:8],
		Material:       m,
		Area:           area,
		UnitsNeeded:    unitsNeeded,
		TotalCost:      totalCost,
		ReservePercent: reservePercent,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// AreaWithReserve returns the area the units were sized for.
func (r CalculationResult) AreaWithReserve() float64 {
	return r.Area * (1 + r.ReservePercent/100)
}

func (r CalculationResult) String() string {
	return fmt.Sprintf("%s: %.2f m² + %.0f%% reserve -> %d units, %.2f total",
		r.Material.Name, r.Area, r.ReservePercent, r.UnitsNeeded, r.TotalCost)
}

// TotalArea sums the requested areas of a result sequence.
func TotalArea(results []CalculationResult) float64 {
	var total float64
	for _, r := range results {
		total += r.Area
	}
	return total
}

// TotalCost sums the costs of a result sequence.
func TotalCost(results []CalculationResult) float64 {
	var total float64
	for _, r := range results {
		total += r.TotalCost
	}
	return total
}
