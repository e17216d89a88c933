package source

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/render/sink"
)

// PNG reads and writes sprites stored as 1:1 PNG images.
type PNG struct{}

func (PNG) Type() string              { return "png" }
func (PNG) Supports(path string) bool { return hasExt(path, ".png") }

// Decode maps every pixel to a cell. Fully transparent pixels are absent.
func (PNG) Decode(data []byte) (*grid.Grid, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode png sprite")
	}
	return FromImage(img)
}

func (PNG) Encode(g *grid.Grid) ([]byte, error) {
	return sink.RenderPNG(g)
}

// FromImage converts img pixel-for-pixel into a grid. Paletted, gray and
// premultiplied images are first normalized to straight alpha.
func FromImage(img image.Image) (*grid.Grid, error) {
	b := img.Bounds()
	g, err := grid.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	src := toNRGBA(img)
	writes := make([]grid.Write, 0, b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := src.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			writes = append(writes, grid.Write{X: x, Y: y, Cell: grid.Filled(grid.FromNRGBA(c))})
		}
	}
	return g.Apply(writes...)
}

// toNRGBA returns img as a zero-origin NRGBA buffer.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
