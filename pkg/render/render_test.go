package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/raster"
)

// framed returns a 3x3 grid with a black border and a white centre.
func framed(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.MustNew(3, 3).Paint(raster.Rect(grid.Pt(0, 0), grid.Pt(2, 2), false), grid.Filled(grid.Black))
	require.NoError(t, err)
	g, err = g.Set(1, 1, grid.Filled(grid.White))
	require.NoError(t, err)
	return g
}

func TestImage_OneToOne(t *testing.T) {
	g, err := grid.MustNew(2, 1).Set(0, 0, grid.Filled(grid.Color{R: 10, G: 20, B: 30, A: 128}))
	require.NoError(t, err)

	img := Image(g)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA{10, 20, 30, 128}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(1, 0), "absent must be fully transparent")
}

func TestImage_Background(t *testing.T) {
	g, _ := grid.MustNew(2, 1).Set(0, 0, grid.Filled(grid.Black))
	img := Image(g, WithBackground(grid.White))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(1, 0))
}

func TestScale_FramedGridNearestNeighbour(t *testing.T) {
	img, err := Scale(framed(t), 96, 96)
	require.NoError(t, err)
	require.Equal(t, 96, img.Bounds().Dx())
	require.Equal(t, 96, img.Bounds().Dy())

	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	assert.Equal(t, black, img.NRGBAAt(0, 0))
	assert.Equal(t, white, img.NRGBAAt(48, 48))

	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			want := black
			if x >= 32 && x < 64 && y >= 32 && y < 64 {
				want = white
			}
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v (no blending allowed)", x, y, got, want)
			}
		}
	}
}

func TestScale_AbsentStaysTransparent(t *testing.T) {
	g, _ := grid.MustNew(2, 2).Set(0, 0, grid.Filled(grid.Black))
	img, err := Scale(g, 7, 5)
	require.NoError(t, err)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			px := img.NRGBAAt(x, y)
			assert.True(t, px.A == 0 || px.A == 255, "pixel (%d,%d) alpha %d", x, y, px.A)
		}
	}
	assert.Equal(t, uint8(0), img.NRGBAAt(6, 4).A)
}

func TestScale_Downscale(t *testing.T) {
	g, err := grid.MustNew(4, 4).Paint(raster.Rect(grid.Pt(0, 0), grid.Pt(3, 3), true), grid.Filled(grid.Black))
	require.NoError(t, err)
	img, err := Scale(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(1, 1))
}

func TestScale_RejectsNonPositive(t *testing.T) {
	g := grid.MustNew(2, 2)
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		img, err := Scale(g, dims[0], dims[1])
		assert.Nil(t, img)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidDimension))
	}
	_, err := ScaleFactor(g, 0)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDimension))
}

func TestScaleFactor_Blocks(t *testing.T) {
	img, err := ScaleFactor(framed(t), 4)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(4, 4))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(7, 7))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(8, 8))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(3, 3))
}

func TestScaleFactor_TranslucentExact(t *testing.T) {
	g := grid.MustNew(1, 1)
	for a := 1; a < 255; a++ {
		for v := 0; v < 256; v++ {
			c := grid.Color{R: uint8(v), G: uint8(v), B: uint8(v), A: uint8(a)}
			src, err := g.Set(0, 0, grid.Filled(c))
			require.NoError(t, err)
			img, err := ScaleFactor(src, 4)
			require.NoError(t, err)
			want := c.NRGBA()
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if got := img.NRGBAAt(x, y); got != want {
						t.Fatalf("%s at (%d,%d) became %v", c.Hex(), x, y, got)
					}
				}
			}
		}
	}
}

func TestScale_TranslucentNonInteger(t *testing.T) {
	left := grid.Color{R: 1, G: 1, B: 1, A: 1}
	right := grid.Color{R: 200, G: 17, B: 99, A: 127}
	g, err := grid.MustNew(2, 1).Set(0, 0, grid.Filled(left))
	require.NoError(t, err)
	g, err = g.Set(1, 0, grid.Filled(right))
	require.NoError(t, err)

	img, err := Scale(g, 7, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			want := left.NRGBA()
			if x >= 3 {
				want = right.NRGBA()
			}
			assert.Equal(t, want, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}
