// Package sink provides the output encoders for color grids.
//
// # Overview
//
// A "sink" turns a [grid.Grid] into the bytes of one file format:
//
//   - PNG: lossless raster at an integer scale or explicit size
//   - SVG: run-length encoded vector output, one rect per same-color run
//   - ICO: multi-size icon container with embedded PNG images
//   - PDF: printable pattern sheet
//
// Every sink is a pure function of the grid and its options; no state is
// kept between calls, so concurrent exports of the same grid are safe.
//
// # PNG Output
//
//	data, err := sink.RenderPNG(g, sink.WithScale(8))
//	data, err := sink.RenderPNG(g, sink.WithSize(180, 180), sink.WithBackground(grid.White))
//
// Scaling always goes through [render.Scale], i.e. nearest-neighbour.
//
// # SVG Output
//
// [RenderSVG] walks each row and merges consecutive cells of identical
// color into a single rect spanning run×1 grid units. The viewBox is the
// grid size in cells and shape-rendering is crispEdges. Opaque colors omit
// fill-opacity; translucent colors carry it rounded to two decimals; absent
// cells emit nothing. [ParseSVG] samples such a document back into a grid.
//
// # ICO Output
//
// [RenderICO] renders the grid once per requested size, PNG-encodes each
// rendering and assembles them with [ico.Encode].
//
// # Errors
//
// Non-positive sizes fail with INVALID_DIMENSION before any rendering; a
// failing encoder surfaces as ENCODING_FAILURE.
//
// [render.Scale]: github.com/bward3321/pixelforge/pkg/render.Scale
// [ico.Encode]: github.com/bward3321/pixelforge/pkg/ico.Encode
package sink
