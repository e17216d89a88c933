package raster

import "github.com/bward3321/pixelforge/pkg/grid"

// Line rasterizes the segment p0→p1 with integer Bresenham. The result
// starts at p0, ends at p1, is 8-connected and contains each endpoint
// exactly once. Identical endpoints yield a single point.
func Line(p0, p1 grid.Point) []grid.Point {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	points := make([]grid.Point, 0, max(dx, -dy)+1)
	x, y := p0.X, p0.Y
	e := dx + dy
	for {
		points = append(points, grid.Pt(x, y))
		if x == p1.X && y == p1.Y {
			return points
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Polyline joins consecutive vertices with Line, emitting shared vertices
// once.
func Polyline(vertices ...grid.Point) []grid.Point {
	if len(vertices) == 0 {
		return nil
	}
	out := []grid.Point{vertices[0]}
	for i := 1; i < len(vertices); i++ {
		out = append(out, Line(vertices[i-1], vertices[i])[1:]...)
	}
	return out
}
