package grid

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/bward3321/pixelforge/pkg/errors"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool { return c.A == 255 }

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBHex formats only the color channels as "#rrggbb".
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// FromNRGBA converts a standard library color to a Color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional). Short and six-digit forms are fully opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, errors.New(errors.ErrCodeInvalidInput, "invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid hex color %q", s)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Cell is a grid cell: a Color or the absent value.
// The zero Cell is Absent.
type Cell struct {
	color Color
	set   bool
}

// Absent is the transparent/unset cell.
var Absent Cell

// Filled returns a cell holding c.
func Filled(c Color) Cell { return Cell{color: c, set: true} }

// Color returns the cell color and whether the cell is set.
func (c Cell) Color() (Color, bool) { return c.color, c.set }

// IsAbsent reports whether the cell is unset.
func (c Cell) IsAbsent() bool { return !c.set }

// Equal reports whether both cells are absent, or both are set to the same
// color.
func (c Cell) Equal(o Cell) bool {
	if !c.set || !o.set {
		return c.set == o.set
	}
	return c.color == o.color
}

// NRGBA returns the raster color of the cell; absent cells are fully
// transparent black.
func (c Cell) NRGBA() color.NRGBA {
	if !c.set {
		return color.NRGBA{}
	}
	return c.color.NRGBA()
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if !c.set {
		return "absent"
	}
	return c.color.Hex()
}
