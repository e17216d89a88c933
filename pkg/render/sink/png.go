package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      int
	width      int
	height     int
	background *grid.Color
}

// WithScale sets the integer scale factor (default 1): every cell becomes a
// scale×scale block.
func WithScale(k int) PNGOption {
	return func(r *pngRenderer) { r.scale = k }
}

// WithSize renders at an explicit pixel size instead of an integer scale.
func WithSize(width, height int) PNGOption {
	return func(r *pngRenderer) { r.width, r.height = width, height }
}

// WithBackground fills absent cells with c.
func WithBackground(c grid.Color) PNGOption {
	return func(r *pngRenderer) { r.background = &c }
}

// RenderPNG renders g and encodes it as PNG.
func RenderPNG(g *grid.Grid, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	var renderOpts []render.Option
	if r.background != nil {
		renderOpts = append(renderOpts, render.WithBackground(*r.background))
	}

	var (
		img *image.NRGBA
		err error
	)
	if r.width != 0 || r.height != 0 {
		img, err = render.Scale(g, r.width, r.height, renderOpts...)
	} else {
		img, err = render.ScaleFactor(g, r.scale, renderOpts...)
	}
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

// EncodePNG losslessly encodes img with maximum compression.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "encode png")
	}
	return buf.Bytes(), nil
}
