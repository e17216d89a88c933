package raster

import "github.com/bward3321/pixelforge/pkg/grid"

// Rect rasterizes the axis-aligned box with corners p0 and p1 (in any
// order). Filled returns every cell; outline returns border cells only,
// each once, including 1-wide or 1-tall boxes.
func Rect(p0, p1 grid.Point, filled bool) []grid.Point {
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)

	if filled || x0 == x1 || y0 == y1 {
		points := make([]grid.Point, 0, (x1-x0+1)*(y1-y0+1))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				points = append(points, grid.Pt(x, y))
			}
		}
		return points
	}

	points := make([]grid.Point, 0, 2*(x1-x0+1)+2*(y1-y0-1))
	for x := x0; x <= x1; x++ {
		points = append(points, grid.Pt(x, y0), grid.Pt(x, y1))
	}
	for y := y0 + 1; y < y1; y++ {
		points = append(points, grid.Pt(x0, y), grid.Pt(x1, y))
	}
	return points
}
