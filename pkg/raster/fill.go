package raster

import "github.com/bward3321/pixelforge/pkg/grid"

// conn4 lists the orthogonal neighbour offsets.
var conn4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FillRegion returns the 4-connected region of cells equal to the cell at
// (x, y), in traversal order. Absent counts as a color. An out-of-bounds
// seed yields nil.
//
// The traversal uses an explicit stack and a visited bitmap, so each cell
// is visited at most once and the work is bounded by width*height.
func FillRegion(g *grid.Grid, x, y int) []grid.Point {
	if !g.InBounds(x, y) {
		return nil
	}
	target := g.At(x, y)
	visited := make([]bool, g.Len())
	stack := []int{g.Index(x, y)}
	visited[stack[0]] = true

	var region []grid.Point
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ux, uy := g.Coordinate(i)
		region = append(region, grid.Pt(ux, uy))

		for _, d := range conn4 {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			vi := g.Index(vx, vy)
			if visited[vi] || !g.At(vx, vy).Equal(target) {
				continue
			}
			visited[vi] = true
			stack = append(stack, vi)
		}
	}
	return region
}

// FloodFill repaints the 4-connected region containing (x, y) with fill and
// returns the new grid. When the seed is out of bounds, or the seed cell
// already equals fill, g itself is returned (same pointer, no copy).
func FloodFill(g *grid.Grid, x, y int, fill grid.Cell) *grid.Grid {
	if !g.InBounds(x, y) || g.At(x, y).Equal(fill) {
		return g
	}
	out, err := g.Paint(FillRegion(g, x, y), fill)
	if err != nil {
		// Region points come from g and are always in bounds.
		panic(err)
	}
	return out
}
