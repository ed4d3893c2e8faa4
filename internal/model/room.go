package model

// SurfaceType is the target surface of a room calculation.
type SurfaceType string

const (
	SurfaceFloor SurfaceType = "floor"
	SurfaceWall  SurfaceType = "wall"
)

// Room describes a rectangular room. All lengths are in meters, areas in m².
// Height and the opening areas only matter for wall calculations.
type Room struct {
	Length     float64     `json:"length"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height,omitempty"`
	DoorArea   float64     `json:"door_area,omitempty"`
	WindowArea float64     `json:"window_area,omitempty"`
	Surface    SurfaceType `json:"surface"`
}

// Perimeter returns the rectangular room perimeter, 2*(length+width).
func (r Room) Perimeter() float64 {
	return 2 * (r.Length + r.Width)
}
