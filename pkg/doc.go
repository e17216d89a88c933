// Package pkg provides the core libraries for pixelforge pixel-art editing
// and export.
//
// # Overview
//
// pixelforge keeps a sprite as an immutable color grid and turns it into
// lossless output files. The pkg directory is organized into:
//
//  1. [grid] - the cell matrix, colors and the absent state
//  2. [raster], [tool] - line, rectangle, ellipse, brush, mirror and fill
//  3. [render], [render/sink], [ico] - pixel rendering and file encoders
//  4. [favicon] - the website favicon package
//  5. [source] - sprite documents on disk
//  6. [pipeline], [cache], [observability] - cached export orchestration
//
// # Data Flow
//
//	sprite.toml / .json / .png
//	         ↓
//	    [source] (decode to grid)
//	         ↓
//	    [tool] strokes (optional, copy-on-write)
//	         ↓
//	    [pipeline] Runner.Export (cache lookup per format)
//	         ↓
//	    [render/sink] / [favicon]
//	         ↓
//	    PNG / SVG / ICO / PDF / favicon zip
//
// # Quick Start
//
//	g, _ := source.LoadFile("heart.toml")
//	g, _ = tool.Apply(g, tool.Stroke{
//	    Tool: tool.Fill,
//	    From: grid.Pt(4, 4),
//	    Cell: grid.Filled(grid.Color{R: 230, G: 57, B: 70, A: 255}),
//	})
//	png, _ := sink.RenderPNG(g, sink.WithScale(16))
//
// # Errors
//
// Every package returns [errors.Error] values carrying a machine-readable
// code such as INVALID_DIMENSION, OUT_OF_BOUNDS or ENCODING_FAILURE.
//
// [grid]: github.com/bward3321/pixelforge/pkg/grid
// [raster]: github.com/bward3321/pixelforge/pkg/raster
// [tool]: github.com/bward3321/pixelforge/pkg/tool
// [render]: github.com/bward3321/pixelforge/pkg/render
// [render/sink]: github.com/bward3321/pixelforge/pkg/render/sink
// [ico]: github.com/bward3321/pixelforge/pkg/ico
// [favicon]: github.com/bward3321/pixelforge/pkg/favicon
// [source]: github.com/bward3321/pixelforge/pkg/source
// [pipeline]: github.com/bward3321/pixelforge/pkg/pipeline
// [cache]: github.com/bward3321/pixelforge/pkg/cache
// [observability]: github.com/bward3321/pixelforge/pkg/observability
// [errors.Error]: github.com/bward3321/pixelforge/pkg/errors.Error
package pkg
