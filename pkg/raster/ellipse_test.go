package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bward3321/pixelforge/pkg/grid"
)

func pointSet(pts []grid.Point) map[grid.Point]bool {
	m := make(map[grid.Point]bool, len(pts))
	for _, p := range pts {
		m[p] = true
	}
	return m
}

func TestCircle_ZeroRadius(t *testing.T) {
	c := grid.Pt(4, 4)
	assert.Equal(t, []grid.Point{c}, Circle(c, 0, false))
	assert.Equal(t, []grid.Point{c}, Circle(c, 0, true))
}

func TestCircle_OutlineSymmetricAndUnique(t *testing.T) {
	c := grid.Pt(10, 10)
	for r := 1; r <= 8; r++ {
		pts := Circle(c, r, false)
		assert.Len(t, Dedup(pts), len(pts), "r=%d has duplicates", r)

		set := pointSet(pts)
		for p := range set {
			dx, dy := p.X-c.X, p.Y-c.Y
			for _, q := range []grid.Point{
				{c.X - dx, c.Y + dy}, {c.X + dx, c.Y - dy}, {c.X + dy, c.Y + dx},
			} {
				assert.True(t, set[q], "r=%d: %v present but reflection %v missing", r, p, q)
			}
			// Boundary points lie within one cell of the true radius.
			d2 := dx*dx + dy*dy
			assert.LessOrEqual(t, d2, (r+1)*(r+1))
			assert.GreaterOrEqual(t, d2, (r-1)*(r-1))
		}
		assert.True(t, set[grid.Pt(c.X+r, c.Y)])
		assert.True(t, set[grid.Pt(c.X, c.Y-r)])
	}
}

func TestCircle_FilledContainsOutline(t *testing.T) {
	c := grid.Pt(0, 0)
	for r := 1; r <= 6; r++ {
		filled := pointSet(Circle(c, r, true))
		assert.Len(t, Dedup(Circle(c, r, true)), len(filled))
		assert.True(t, filled[c])
		for _, p := range Circle(c, r, false) {
			assert.True(t, filled[p], "r=%d: outline point %v missing from fill", r, p)
		}
	}
}

func TestCircle_RadiusOneFilled(t *testing.T) {
	got := pointSet(Circle(grid.Pt(1, 1), 1, true))
	want := pointSet([]grid.Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}})
	assert.Equal(t, want, got)
}

func TestEllipse_FilledSatisfiesInequality(t *testing.T) {
	c := grid.Pt(20, 20)
	rx, ry := 7, 3
	pts := Ellipse(c, rx, ry, true)
	set := pointSet(pts)
	assert.Len(t, set, len(pts))

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx, ny := float64(dx)/float64(rx), float64(dy)/float64(ry)
			inside := nx*nx+ny*ny <= 1
			assert.Equal(t, inside, set[grid.Pt(c.X+dx, c.Y+dy)], "cell offset (%d,%d)", dx, dy)
		}
	}
}

func TestEllipse_OutlineExtremes(t *testing.T) {
	c := grid.Pt(0, 0)
	pts := Ellipse(c, 6, 2, false)
	set := pointSet(pts)
	assert.Len(t, set, len(pts))
	for _, p := range []grid.Point{{6, 0}, {-6, 0}, {0, 2}, {0, -2}} {
		assert.True(t, set[p], "missing extreme %v", p)
	}
	for p := range set {
		assert.LessOrEqual(t, abs(p.X), 6)
		assert.LessOrEqual(t, abs(p.Y), 2)
	}
}

func TestEllipse_SampleDensityIsTunable(t *testing.T) {
	old := SamplesPerRadius
	defer func() { SamplesPerRadius = old }()

	SamplesPerRadius = 1
	sparse := Ellipse(grid.Pt(0, 0), 10, 4, false)
	SamplesPerRadius = 16
	dense := Ellipse(grid.Pt(0, 0), 10, 4, false)
	assert.Greater(t, len(dense), len(sparse))
}

func TestEllipse_Degenerate(t *testing.T) {
	pts := Ellipse(grid.Pt(5, 5), 0, 2, true)
	assert.Equal(t, []grid.Point{{5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 7}}, pts)

	pts = Ellipse(grid.Pt(5, 5), -2, 0, false)
	assert.Len(t, pts, 5)
}
