// Package render converts SVG documents into raster images.
//
// # Overview
//
// A [Rasterizer] renders an SVG at an exact pixel size, either over a solid
// background color or on a transparent canvas, and returns an *image.NRGBA
// (non-premultiplied, so alpha can be replaced without changing color).
//
// # Backends
//
//   - [OKSVG] (default): pure Go, built on srwiley/oksvg and srwiley/rasterx.
//     The document must declare a viewBox.
//   - [RSVG]: shells out to rsvg-convert from librsvg for full SVG support.
//
// Select a backend by name:
//
//	r, err := render.New("oksvg")
//	img, err := r.Rasterize(ctx, svg, 2000, 2000, color.NRGBA{8, 8, 8, 255})
//
// Malformed documents fail with an INVALID_FORMAT error; a missing
// rsvg-convert binary fails with UNSUPPORTED.
package render
