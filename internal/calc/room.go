package calc

import (
	"fmt"

	"github.com/piwi3910/renocalc/internal/model"
)

// RoomCalculator derives coverable area from room geometry and delegates
// the material calculation to an owned MaterialCalculator.
type RoomCalculator struct {
	calc *MaterialCalculator
}

// NewRoomCalculator creates a RoomCalculator with its own MaterialCalculator.
func NewRoomCalculator() *RoomCalculator {
	return &RoomCalculator{calc: NewMaterialCalculator()}
}

// Calculator exposes the owned MaterialCalculator, e.g. for history access.
func (rc *RoomCalculator) Calculator() *MaterialCalculator {
	return rc.calc
}

// ReservePercent returns the delegated reserve margin.
func (rc *RoomCalculator) ReservePercent() float64 {
	return rc.calc.ReservePercent()
}

// SetReservePercent delegates to the owned MaterialCalculator.
func (rc *RoomCalculator) SetReservePercent(v float64) error {
	return rc.calc.SetReservePercent(v)
}

// FloorArea returns length * width for a rectangular floor.
func (rc *RoomCalculator) FloorArea(length, width float64) (float64, error) {
	if length <= 0 || width <= 0 {
		return 0, fmt.Errorf("%w: length and width must be positive, got %g x %g", ErrInvalidArgument, length, width)
	}
	return length * width, nil
}

// WallArea returns the wall area for the given perimeter and ceiling height,
// minus door and window openings. The openings may not consume the entire wall.
func (rc *RoomCalculator) WallArea(perimeter, height, doorArea, windowArea float64) (float64, error) {
	if perimeter <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: perimeter and height must be positive, got %g and %g", ErrInvalidArgument, perimeter, height)
	}
	if doorArea < 0 || windowArea < 0 {
		return 0, fmt.Errorf("%w: door and window areas must not be negative, got %g and %g", ErrInvalidArgument, doorArea, windowArea)
	}

	area := perimeter*height - doorArea - windowArea
	if area <= 0 {
		return 0, fmt.Errorf("%w: wall area after subtracting openings must be positive, got %g", ErrInvalidArgument, area)
	}
	return area, nil
}

// CalculateForRoom derives the coverable area from the room geometry and
// runs the material calculation for it. Wall calculations require the room
// height and assume a rectangular perimeter.
func (rc *RoomCalculator) CalculateForRoom(m model.Material, room model.Room) (model.CalculationResult, error) {
	var (
		area float64
		err  error
	)

	switch room.Surface {
	case model.SurfaceFloor:
		area, err = rc.FloorArea(room.Length, room.Width)
	case model.SurfaceWall:
		if room.Height <= 0 {
			return model.CalculationResult{}, fmt.Errorf("%w: room height is required for wall calculations", ErrInvalidArgument)
		}
		area, err = rc.WallArea(room.Perimeter(), room.Height, room.DoorArea, room.WindowArea)
	default:
		return model.CalculationResult{}, fmt.Errorf("%w: surface type must be %q or %q, got %q",
			ErrInvalidArgument, model.SurfaceFloor, model.SurfaceWall, room.Surface)
	}
	if err != nil {
		return model.CalculationResult{}, err
	}

	return rc.calc.Calculate(m, area)
}
