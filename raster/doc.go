// Package raster draws emotext output into an in-memory RGBA image.
//
// Canvas implements emotext.Sink: glyphs are rasterised through
// text.GlyphDrawer, decoration lines are filled as anti-aliased quads with
// golang.org/x/image/vector. The result can be written as PNG, and
// EncodeGIF renders a sequence of frames driven by an emotext.Clock into an
// animated GIF.
//
// Importing the package registers the "raster" recording backend.
package raster
