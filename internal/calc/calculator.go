package calc

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/renocalc/internal/model"
)

// MaterialCalculator computes material quantities and costs for a surface
// area, keeping an append-only history of every calculation it performs.
// Instances are not safe for concurrent use; each logical session owns one.
type MaterialCalculator struct {
	reservePercent float64
	history        []model.CalculationResult
}

// NewMaterialCalculator creates a calculator with the default reserve margin.
func NewMaterialCalculator() *MaterialCalculator {
	return &MaterialCalculator{reservePercent: model.DefaultReservePercent}
}

// ReservePercent returns the current reserve margin in percent.
func (c *MaterialCalculator) ReservePercent() float64 {
	return c.reservePercent
}

// SetReservePercent updates the reserve margin. Valid range is [0,100] inclusive.
func (c *MaterialCalculator) SetReservePercent(v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: reserve percent must be between 0 and 100, got %g", ErrInvalidArgument, v)
	}
	c.reservePercent = v
	return nil
}

// Calculate computes how many units of material are needed to cover the
// given area plus the reserve margin, and what they cost. Partial units
// cannot be purchased, so the unit count rounds up. The result is appended
// to the calculator's history.
func (c *MaterialCalculator) Calculate(m model.Material, area float64) (model.CalculationResult, error) {
	if area <= 0 {
		return model.CalculationResult{}, fmt.Errorf("%w: area must be positive, got %g", ErrInvalidArgument, area)
	}
	if err := m.Validate(); err != nil {
		return model.CalculationResult{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	areaWithReserve := area * (1 + c.reservePercent/100)
	unitsNeeded := int(math.Ceil(areaWithReserve / m.UnitCoverage))
	totalCost := float64(unitsNeeded) * m.PricePerUnit

	result := model.NewCalculationResult(m, area, unitsNeeded, totalCost, c.reservePercent)
	c.history = append(c.history, result)
	return result, nil
}

// History returns a copy of all recorded calculations in order.
// Mutating the returned slice does not affect the calculator.
func (c *MaterialCalculator) History() []model.CalculationResult {
	cp := make([]model.CalculationResult, len(c.history))
	copy(cp, c.history)
	return cp
}

// ClearHistory removes all recorded calculations.
func (c *MaterialCalculator) ClearHistory() {
	c.history = nil
}

// CompareMaterials calculates every candidate material for the same area and
// returns the results sorted by total cost ascending. Ties keep the input
// order. Each candidate goes through Calculate, so comparisons are recorded
// in history like any other calculation.
func (c *MaterialCalculator) CompareMaterials(materials []model.Material, area float64) ([]model.CalculationResult, error) {
	if len(materials) == 0 {
		return nil, fmt.Errorf("%w: materials list must not be empty", ErrInvalidArgument)
	}

	results := make([]model.CalculationResult, 0, len(materials))
	for _, m := range materials {
		result, err := c.Calculate(m, area)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalCost < results[j].TotalCost
	})
	return results, nil
}

func (c *MaterialCalculator) String() string {
	return fmt.Sprintf("MaterialCalculator(reserve: %g%%, calculations: %d)", c.reservePercent, len(c.history))
}
