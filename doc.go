// Package emotext draws short strings of styled, animated text.
//
// Text carries its own styling through a small toggle markup:
//
//	*italic*  **bold**  ~wave~  ~~strike~~  __underline__
//
// and '\n' for line breaks. Render walks the string once, picks one of four
// font variants from the bold and italic toggles, places every visible
// character on a pen cursor, adds a sinusoidal offset to characters inside
// a wave, and emits glyph and line instructions to a Sink.
//
// # Quick Start
//
//	fam, _ := text.GoFamily()
//	fonts, _ := emotext.FamilyFaces(fam, 32)
//
//	canvas := raster.NewCanvas(640, 160)
//	defer canvas.Close()
//
//	var clock emotext.Clock
//	opts := emotext.DefaultOptions()
//	opts.Time = clock.Time()
//	emotext.Render(canvas, fonts, "**Hello**, ~wavy~ __world__", emotext.Pt(20, 20), opts)
//	_ = canvas.SavePNG("hello.png")
//
// # Animation
//
// The wave animation is driven by an explicit Clock owned by the caller's
// frame loop. Advance it once per frame and pass Time in Options; Render
// reads it once per call and never advances it.
//
// # Sinks
//
// Package raster draws into an image, package recording captures the
// instructions for inspection or replay. Any type implementing Sink can be
// used.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - glyph positions are the top-left of their line box
package emotext
