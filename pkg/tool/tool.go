// Package tool applies editor drawing tools to a grid.
//
// A [Stroke] names a tool, its geometry and the cell to write. [Apply]
// turns it into coordinates with the raster algorithms, expands them by the
// brush footprint and the active mirror mode, deduplicates, clips to the
// canvas and writes them copy-on-write. The input grid is never modified.
package tool

import (
	"strings"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/raster"
)

// Kind identifies a drawing tool.
type Kind string

const (
	Pencil  Kind = "pencil"
	Eraser  Kind = "eraser"
	Line    Kind = "line"
	Rect    Kind = "rect"
	Ellipse Kind = "ellipse"
	Fill    Kind = "fill"
)

// ValidKinds is the set of supported tools.
var ValidKinds = map[Kind]bool{
	Pencil:  true,
	Eraser:  true,
	Line:    true,
	Rect:    true,
	Ellipse: true,
	Fill:    true,
}

// ParseKind parses a tool name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !ValidKinds[k] {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"invalid tool: %q (must be pencil, eraser, line, rect, ellipse or fill)", s)
	}
	return k, nil
}

// Stroke is one tool application.
type Stroke struct {
	Tool Kind
	// From is the press point (pencil/eraser/fill target, shape anchor,
	// ellipse centre).
	From grid.Point
	// To is the release point. For pencil and eraser a To different from
	// From draws a connected line of brush stamps.
	To grid.Point
	// Cell is written by every tool except the eraser.
	Cell grid.Cell
	// Size is the brush size for pencil, eraser and line.
	Size int
	// Filled selects solid rectangles and ellipses.
	Filled bool
	// Mirror replicates the stroke across the canvas centre axes.
	Mirror raster.MirrorMode
}

// Apply performs the stroke on g and returns the resulting grid. Points
// falling outside the canvas are dropped; a stroke that writes nothing
// returns g itself.
func Apply(g *grid.Grid, s Stroke) (*grid.Grid, error) {
	if !ValidKinds[s.Tool] {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid tool: %q", s.Tool)
	}
	if s.Tool == Fill {
		return applyFill(g, s), nil
	}

	cell := s.Cell
	if s.Tool == Eraser {
		cell = grid.Absent
	}

	points := Footprint(s)
	points = raster.MirrorAll(points, g.Width(), g.Height(), s.Mirror)
	points = raster.Clip(points, g.Width(), g.Height())
	if len(points) == 0 {
		return g, nil
	}
	return g.Paint(points, cell)
}

// Footprint returns the unmirrored, unclipped coordinates a non-fill
// stroke covers.
func Footprint(s Stroke) []grid.Point {
	switch s.Tool {
	case Pencil, Eraser, Line:
		return raster.Stamp(raster.Line(s.From, s.To), s.Size)
	case Rect:
		return raster.Rect(s.From, s.To, s.Filled)
	case Ellipse:
		rx, ry := s.To.X-s.From.X, s.To.Y-s.From.Y
		return raster.Ellipse(s.From, rx, ry, s.Filled)
	default:
		return nil
	}
}

// applyFill floods from the seed and from each of its mirror images, in
// order, so every reflected region receives the same color.
func applyFill(g *grid.Grid, s Stroke) *grid.Grid {
	seeds := raster.Dedup(raster.Mirror(s.From, g.Width(), g.Height(), s.Mirror))
	out := g
	for _, p := range seeds {
		out = raster.FloodFill(out, p.X, p.Y, s.Cell)
	}
	return out
}

// Pick returns the cell under p (the eyedropper). Out-of-bounds points read
// as Absent.
func Pick(g *grid.Grid, p grid.Point) grid.Cell {
	return g.At(p.X, p.Y)
}
