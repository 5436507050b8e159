package raster

import "errors"

var (
	// ErrNoImage is returned when output is requested from a canvas that
	// was never sized with Begin.
	ErrNoImage = errors.New("raster: canvas has no image")

	// ErrNoFrames is returned by EncodeGIF when asked for zero frames.
	ErrNoFrames = errors.New("raster: animation has no frames")
)
