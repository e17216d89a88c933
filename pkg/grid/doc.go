// Package grid provides the color grid that every pixelforge tool draws on.
//
// A [Grid] is a fixed-size, row-major matrix of [Cell] values. A cell is
// either a concrete RGBA [Color] or [Absent] ("transparent/unset"); the two
// are stored by value in a single flat slice, so reads are bounds-checked
// index arithmetic with no per-cell allocation.
//
// # Copy-on-write
//
// Grids are never mutated in place. [Grid.Apply] (and its single-cell form
// [Grid.Set]) returns a new grid equal to the receiver except for the given
// writes:
//
//	g, _ := grid.New(16, 16)
//	red := grid.Filled(grid.Color{R: 255, A: 255})
//	g2, err := g.Apply(grid.Write{X: 3, Y: 4, Cell: red})
//	// g is still fully absent; g2 has one red cell.
//
// A write outside the grid extent is rejected with an OUT_OF_BOUNDS error
// and no grid is returned.
//
// # Coordinates
//
// Coordinates are (x=column, y=row), zero-indexed, x in [0,width) and y in
// [0,height). [Grid.Index] and [Grid.Coordinate] convert between points and
// flat row-major indices.
package grid
