package raster

import (
	"strings"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
)

// MirrorMode selects symmetry reflections applied to drawing targets.
type MirrorMode int

const (
	MirrorOff MirrorMode = iota
	MirrorHorizontal
	MirrorVertical
	MirrorQuad
)

var mirrorNames = map[MirrorMode]string{
	MirrorOff:        "off",
	MirrorHorizontal: "horizontal",
	MirrorVertical:   "vertical",
	MirrorQuad:       "quad",
}

// String implements fmt.Stringer.
func (m MirrorMode) String() string {
	if s, ok := mirrorNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMirrorMode parses "off", "horizontal", "vertical" or "quad"
// (case-insensitive). The empty string is MirrorOff.
func ParseMirrorMode(s string) (MirrorMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MirrorOff, nil
	}
	for m, name := range mirrorNames {
		if name == s {
			return m, nil
		}
	}
	return MirrorOff, errors.New(errors.ErrCodeInvalidInput,
		"invalid mirror mode: %q (must be off, horizontal, vertical or quad)", s)
}

// Mirror returns p followed by its reflections across the vertical and/or
// horizontal centre axes of a width×height grid. Coincident reflections
// (points on an axis) are not removed; callers dedupe before writing.
func Mirror(p grid.Point, width, height int, mode MirrorMode) []grid.Point {
	rx, ry := width-1-p.X, height-1-p.Y
	switch mode {
	case MirrorHorizontal:
		return []grid.Point{p, grid.Pt(rx, p.Y)}
	case MirrorVertical:
		return []grid.Point{p, grid.Pt(p.X, ry)}
	case MirrorQuad:
		return []grid.Point{p, grid.Pt(rx, p.Y), grid.Pt(p.X, ry), grid.Pt(rx, ry)}
	default:
		return []grid.Point{p}
	}
}

// MirrorAll expands every point and deduplicates the result.
func MirrorAll(points []grid.Point, width, height int, mode MirrorMode) []grid.Point {
	if mode == MirrorOff {
		return Dedup(points)
	}
	out := make([]grid.Point, 0, len(points)*4)
	for _, p := range points {
		out = append(out, Mirror(p, width, height, mode)...)
	}
	return Dedup(out)
}
