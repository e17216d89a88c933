// Package raster implements the classic pixel rasterization algorithms used
// by the drawing tools: Bresenham lines, midpoint circles and scan-tested
// ellipses, rectangles, brush footprints, symmetry mirroring and 4-connected
// flood fill.
//
// Every function except [FloodFill] is pure: it maps geometric parameters to
// a list of [grid.Point] values and never touches a grid. Callers apply a
// color by passing the points to [grid.Grid.Paint], usually after running
// them through [Mirror], [Dedup] and [Clip] (the [tool] package does this).
//
// Point order is only a contract for [Line], which walks from the first
// endpoint to the second. Ellipse, rectangle and fill results are
// deduplicated but otherwise unordered.
//
// [tool]: github.com/bward3321/pixelforge/pkg/tool
package raster
