package grid

import (
	"encoding/binary"
	"fmt"

	"github.com/bward3321/pixelforge/pkg/errors"
)

// Point is an (x, y) grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Write is a single cell assignment applied by Grid.Apply.
type Write struct {
	X, Y int
	Cell Cell
}

// Grid is an immutable width×height matrix of cells in row-major order.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a fully absent grid. Both dimensions must be at least 1.
func New(width, height int) (*Grid, error) {
	if err := errors.ValidateDimension("grid width", width); err != nil {
		return nil, err
	}
	if err := errors.ValidateDimension("grid height", height); err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// MustNew is New for dimensions known to be valid; it panics otherwise.
func MustNew(width, height int) *Grid {
	g, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// FromRows builds a width×height grid from possibly ragged rows. Missing
// rows and cells are padded with Absent; cells beyond the declared extent
// are dropped.
func FromRows(rows [][]Cell, width, height int) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height && y < len(rows); y++ {
		copy(g.cells[y*width:(y+1)*width], rows[y])
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns width*height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index converts (x, y) to a row-major index. The caller must ensure the
// point is in bounds.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to (x, y).
func (g *Grid) Coordinate(i int) (x, y int) { return i % g.width, i / g.width }

// At returns the cell at (x, y). Out-of-bounds reads return Absent.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Absent
	}
	return g.cells[g.Index(x, y)]
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]Cell, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Apply returns a new grid with the writes applied in order (a later write
// to the same cell wins). The receiver is left untouched. Any out-of-bounds
// write rejects the whole batch.
func (g *Grid) Apply(writes ...Write) (*Grid, error) {
	for _, w := range writes {
		if !g.InBounds(w.X, w.Y) {
			return nil, errors.New(errors.ErrCodeOutOfBounds,
				"write at (%d,%d) outside %dx%d grid", w.X, w.Y, g.width, g.height)
		}
	}
	out := g.Clone()
	for _, w := range writes {
		out.cells[out.Index(w.X, w.Y)] = w.Cell
	}
	return out, nil
}

// Set returns a new grid with a single cell changed.
func (g *Grid) Set(x, y int, c Cell) (*Grid, error) {
	return g.Apply(Write{X: x, Y: y, Cell: c})
}

// Paint returns a new grid with every point set to c. Points must be in
// bounds.
func (g *Grid) Paint(points []Point, c Cell) (*Grid, error) {
	writes := make([]Write, len(points))
	for i, p := range points {
		writes[i] = Write{X: p.X, Y: p.Y, Cell: c}
	}
	return g.Apply(writes...)
}

// Resize returns a new width×height grid holding the overlapping top-left
// region of g; new cells are Absent.
func (g *Grid) Resize(width, height int) (*Grid, error) {
	out, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height && y < g.height; y++ {
		n := min(width, g.width)
		copy(out.cells[y*width:y*width+n], g.cells[y*g.width:y*g.width+n])
	}
	return out, nil
}

// Equal reports whether both grids have the same dimensions and equal cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if !g.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of set (non-absent) cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c.set {
			n++
		}
	}
	return n
}

// Bytes returns a canonical binary encoding of the grid, suitable for
// content hashing: little-endian uint32 width and height followed by five
// bytes per cell (set flag, R, G, B, A). Absent cells encode as zeros.
func (g *Grid) Bytes() []byte {
	buf := make([]byte, 8, 8+5*len(g.cells))
	binary.LittleEndian.PutUint32(buf[0:], uint32(g.width))
	binary.LittleEndian.PutUint32(buf[4:], uint32(g.height))
	for _, c := range g.cells {
		if !c.set {
			buf = append(buf, 0, 0, 0, 0, 0)
			continue
		}
		buf = append(buf, 1, c.color.R, c.color.G, c.color.B, c.color.A)
	}
	return buf
}

// Palette returns the distinct set colors in first-appearance (row-major)
// order.
func (g *Grid) Palette() []Color {
	seen := make(map[Color]bool)
	var out []Color
	for _, c := range g.cells {
		if c.set && !seen[c.color] {
			seen[c.color] = true
			out = append(out, c.color)
		}
	}
	return out
}
