package raster

import "github.com/bward3321/pixelforge/pkg/grid"

// Dedup removes repeated points, keeping the first occurrence of each.
func Dedup(points []grid.Point) []grid.Point {
	seen := make(map[grid.Point]struct{}, len(points))
	out := make([]grid.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Clip drops points outside a width×height grid.
func Clip(points []grid.Point, width, height int) []grid.Point {
	out := points[:0:0]
	for _, p := range points {
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			out = append(out, p)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
