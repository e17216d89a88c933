package raster

import "github.com/bward3321/pixelforge/pkg/grid"

// Brush returns the footprint of a square brush of the given size centred
// on c. Sizes up to 1 return c alone; even sizes bias the centre toward the
// top-left (floor).
func Brush(c grid.Point, size int) []grid.Point {
	if size <= 1 {
		return []grid.Point{c}
	}
	off := (size - 1) / 2
	points := make([]grid.Point, 0, size*size)
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			points = append(points, grid.Pt(c.X-off+dx, c.Y-off+dy))
		}
	}
	return points
}

// Stamp expands every point of a path by the brush footprint and removes
// duplicates.
func Stamp(path []grid.Point, size int) []grid.Point {
	if size <= 1 {
		return Dedup(path)
	}
	var out []grid.Point
	for _, p := range path {
		out = append(out, Brush(p, size)...)
	}
	return Dedup(out)
}
