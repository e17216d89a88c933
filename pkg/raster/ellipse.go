package raster

import (
	"math"

	"github.com/bward3321/pixelforge/pkg/grid"
)

// SamplesPerRadius sets the angular sampling density of ellipse outlines:
// an outline with radii (rx, ry) is sampled max(rx,ry)*SamplesPerRadius
// times around the full turn.
var SamplesPerRadius = 8

// Circle rasterizes a circle of radius r around c.
func Circle(c grid.Point, r int, filled bool) []grid.Point {
	return Ellipse(c, r, r, filled)
}

// Ellipse rasterizes an axis-aligned ellipse centred on c. Equal radii use
// the midpoint circle algorithm; unequal radii scan the bounding box
// (filled) or sample the parametric boundary (outline). Negative radii are
// taken by absolute value. The result is deduplicated and unordered.
func Ellipse(c grid.Point, rx, ry int, filled bool) []grid.Point {
	rx, ry = abs(rx), abs(ry)
	switch {
	case rx == ry:
		return midpointCircle(c, rx, filled)
	case rx == 0 || ry == 0:
		// Degenerate ellipse collapses to a segment through the centre.
		return Line(grid.Pt(c.X-rx, c.Y-ry), grid.Pt(c.X+rx, c.Y+ry))
	case filled:
		return filledEllipse(c, rx, ry)
	default:
		return ellipseOutline(c, rx, ry)
	}
}

// midpointCircle walks one octant with an incremental error term and
// reflects each step into the other seven.
func midpointCircle(c grid.Point, r int, filled bool) []grid.Point {
	var points []grid.Point
	x, y := r, 0
	e := 1 - r
	for x >= y {
		if filled {
			points = appendSpan(points, c.X-x, c.X+x, c.Y+y)
			points = appendSpan(points, c.X-x, c.X+x, c.Y-y)
			points = appendSpan(points, c.X-y, c.X+y, c.Y+x)
			points = appendSpan(points, c.X-y, c.X+y, c.Y-x)
		} else {
			points = append(points,
				grid.Pt(c.X+x, c.Y+y), grid.Pt(c.X-x, c.Y+y),
				grid.Pt(c.X+x, c.Y-y), grid.Pt(c.X-x, c.Y-y),
				grid.Pt(c.X+y, c.Y+x), grid.Pt(c.X-y, c.Y+x),
				grid.Pt(c.X+y, c.Y-x), grid.Pt(c.X-y, c.Y-x),
			)
		}
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
	return Dedup(points)
}

func appendSpan(points []grid.Point, x0, x1, y int) []grid.Point {
	for x := x0; x <= x1; x++ {
		points = append(points, grid.Pt(x, y))
	}
	return points
}

func filledEllipse(c grid.Point, rx, ry int) []grid.Point {
	var points []grid.Point
	frx, fry := float64(rx), float64(ry)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx, ny := float64(dx)/frx, float64(dy)/fry
			if nx*nx+ny*ny <= 1 {
				points = append(points, grid.Pt(c.X+dx, c.Y+dy))
			}
		}
	}
	return points
}

func ellipseOutline(c grid.Point, rx, ry int) []grid.Point {
	steps := max(rx, ry) * max(SamplesPerRadius, 1)
	points := make([]grid.Point, 0, steps)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := c.X + int(math.Round(float64(rx)*math.Cos(theta)))
		y := c.Y + int(math.Round(float64(ry)*math.Sin(theta)))
		points = append(points, grid.Pt(x, y))
	}
	return Dedup(points)
}
