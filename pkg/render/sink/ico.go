package sink

import (
	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/ico"
	"github.com/bward3321/pixelforge/pkg/render"
)

// DefaultICOSizes are the edge lengths written when none are requested.
var DefaultICOSizes = []int{16, 32, 48}

// RenderICO renders g at each size (square, nearest-neighbour), encodes
// each rendering as PNG and assembles an .ico container with the images in
// the given order. An empty size list yields a valid, empty container.
func RenderICO(g *grid.Grid, sizes []int) ([]byte, error) {
	for _, s := range sizes {
		if err := errors.ValidateDimension("icon size", s); err != nil {
			return nil, err
		}
		if s > ico.MaxSize {
			return nil, errors.New(errors.ErrCodeInvalidDimension, "icon size %d exceeds %d", s, ico.MaxSize)
		}
	}

	images := make([]ico.Image, 0, len(sizes))
	for _, s := range sizes {
		img, err := render.Scale(g, s, s)
		if err != nil {
			return nil, err
		}
		data, err := EncodePNG(img)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "icon image %dx%d", s, s)
		}
		images = append(images, ico.Image{Size: s, Data: data})
	}
	return ico.Encode(images)
}
