// Package render converts color grids into raster images.
//
// # Overview
//
// Rendering is a two-step process:
//
//  1. [Image] composes a 1:1 buffer straight from the grid: one pixel per
//     cell, absent cells fully transparent (or the background, if given).
//  2. [Scale] resamples that buffer to any target size with
//     nearest-neighbour sampling, copying the straight-alpha bytes of the
//     source pixel under each destination pixel centre. No interpolation,
//     smoothing or premultiplication happens, so hard edges and
//     translucent colors survive any upscale or downscale factor.
//
// [ScaleFactor] is the integer form used by the raster exporter: each cell
// becomes a k×k block.
//
//	img, err := render.Scale(g, 96, 96)
//	img, err := render.ScaleFactor(g, 8, render.WithBackground(grid.White))
//
// Target sizes must be positive; zero or negative sizes are rejected with
// an INVALID_DIMENSION error before any pixels are produced.
//
// The exporters built on top of this package live in [sink].
//
// [sink]: github.com/bward3321/pixelforge/pkg/render/sink
package render
