package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// Point is a 2D coordinate in meters.
type Point struct {
	X float64
	Y float64
}

// FloorPlan describes one closed room outline extracted from a drawing.
// Coordinates in the source file are interpreted as meters.
type FloorPlan struct {
	Label     string
	Area      float64 // m², shoelace area of the outline
	Perimeter float64 // m, summed edge lengths
	Length    float64 // m, bounding box extent in X
	Width     float64 // m, bounding box extent in Y
	Outline   []Point
}

// PlanImportResult holds the results of a floor-plan import operation.
type PlanImportResult struct {
	Plans    []FloorPlan
	Errors   []string
	Warnings []string
}

// segment represents a line segment between two points, used for chaining
// disconnected LINE and ARC entities into closed outlines.
type segment struct {
	start Point
	end   Point
}

// ImportFloorPlan imports room floor plans from a DXF file. Each closed
// shape (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) becomes a
// FloorPlan with its area, perimeter, and bounding box, ready to feed a
// floor calculation.
func ImportFloorPlan(path string) PlanImportResult {
	result := PlanImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]Point
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := make([]Point, 0, len(e.Vertices))
			hasBulge := false
			for i, v := range e.Vertices {
				if i < len(e.Bulges) && math.Abs(e.Bulges[i]) > 1e-9 {
					hasBulge = true
				}
				outline = append(outline, Point{X: v[0], Y: v[1]})
			}
			if hasBulge {
				result.Warnings = append(result.Warnings,
					"Curved polyline edges approximated as straight segments")
			}
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleOutline(e, 64))

		case *entity.Arc:
			pts := arcPoints(e, 32)
			for i := 0; i < len(pts)-1; i++ {
				segments = append(segments, segment{start: pts[i], end: pts[i+1]})
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: Point{X: e.Start[0], Y: e.Start[1]},
				end:   Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	for _, chained := range chainSegments(segments, 0.001) {
		if len(chained) >= 3 {
			outlines = append(outlines, chained)
		}
	}

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed room outlines found in DXF file")
		return result
	}

	buildPlans(outlines, &result)

	if len(result.Plans) == 0 {
		result.Errors = append(result.Errors, "All room outlines were degenerate")
	}

	return result
}

// buildPlans converts closed outlines into labeled floor plans, largest room
// first. Degenerate outlines are skipped with a warning and do not consume a
// room number.
func buildPlans(outlines [][]Point, result *PlanImportResult) {
	sort.Slice(outlines, func(i, j int) bool {
		return shoelaceArea(outlines[i]) > shoelaceArea(outlines[j])
	})

	for _, outline := range outlines {
		area := shoelaceArea(outline)
		length, width := boundingBox(outline)

		if area < 1e-6 || length < 1e-3 || width < 1e-3 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate outline (%.3f x %.3f m)", length, width))
			continue
		}

		result.Plans = append(result.Plans, FloorPlan{
			Label:     fmt.Sprintf("Room %d", len(result.Plans)+1),
			Area:      area,
			Perimeter: outlinePerimeter(outline),
			Length:    length,
			Width:     width,
			Outline:   outline,
		})
	}
}

// circleOutline approximates a circle as a regular polygon.
func circleOutline(c *entity.Circle, numSegments int) []Point {
	outline := make([]Point, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		outline[i] = Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return outline
}

// arcPoints converts a DXF ARC entity to a series of points along the arc.
func arcPoints(a *entity.Arc, numSegments int) []Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]Point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]Point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]Point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []Point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// A closed chain repeats its first point at the end; drop the duplicate.
		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			chain = chain[:len(chain)-1]
			if len(chain) >= 3 {
				outlines = append(outlines, chain)
			}
		}
		// Open chains are dropped: a room outline must close.
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b Point, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// shoelaceArea computes the absolute polygon area.
func shoelaceArea(outline []Point) float64 {
	n := len(outline)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += outline[i].X * outline[j].Y
		area -= outline[j].X * outline[i].Y
	}
	return math.Abs(area) / 2
}

// outlinePerimeter sums the edge lengths of a closed polygon.
func outlinePerimeter(outline []Point) float64 {
	n := len(outline)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		dx := outline[j].X - outline[i].X
		dy := outline[j].Y - outline[i].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

// boundingBox returns the X and Y extents of an outline.
func boundingBox(outline []Point) (length, width float64) {
	if len(outline) == 0 {
		return 0, 0
	}
	minX, maxX := outline[0].X, outline[0].X
	minY, maxY := outline[0].Y, outline[0].Y
	for _, p := range outline[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return maxX - minX, maxY - minY
}
