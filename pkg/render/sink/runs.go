package sink

import "github.com/bward3321/pixelforge/pkg/grid"

// Run is a horizontal stretch of identically colored cells.
type Run struct {
	X, Y  int
	Len   int
	Color grid.Color
}

// Runs run-length encodes every row of g. Absent cells break runs and
// produce nothing.
func Runs(g *grid.Grid) []Run {
	var runs []Run
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); {
			c, ok := g.At(x, y).Color()
			if !ok {
				x++
				continue
			}
			start := x
			for x < g.Width() && g.At(x, y).Equal(grid.Filled(c)) {
				x++
			}
			runs = append(runs, Run{X: start, Y: y, Len: x - start, Color: c})
		}
	}
	return runs
}
