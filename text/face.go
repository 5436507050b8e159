package text

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
//
// Faces returned by FontSource.Face are safe for concurrent use. The
// interface may be implemented elsewhere, for example by fixed-metric
// faces in tests; such faces may return a nil Source and are then
// measured but not rasterised.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// GlyphAdvance returns the horizontal advance of r in pixels.
	// Some fonts report zero for certain glyphs.
	GlyphAdvance(r rune) float64

	// GlyphBounds returns the ink bounding box of r relative to its origin
	// on the baseline.
	GlyphBounds(r rune) Rect

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Hinting returns the hinting mode used to rasterise the face.
	Hinting() Hinting
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fm := parsed.Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:    fm.Ascent,
		Descent:   descent,
		LineGap:   fm.LineGap,
		XHeight:   fm.XHeight,
		CapHeight: fm.CapHeight,
	}
}

// glyph returns the cached metrics of r at this face's size.
// The parsed font is read before the cache lock is taken; the cache
// callback must not acquire the source lock.
func (f *sourceFace) glyph(r rune) glyphMetrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return glyphMetrics{}
	}
	return f.source.metrics.getOrCreate(glyphKey{r: r, size: f.size}, func() glyphMetrics {
		gid := parsed.GlyphIndex(r)
		return glyphMetrics{
			gid:     gid,
			advance: parsed.GlyphAdvance(gid, f.size),
			bounds:  parsed.GlyphBounds(gid, f.size),
		}
	})
}

// GlyphAdvance implements Face.GlyphAdvance.
func (f *sourceFace) GlyphAdvance(r rune) float64 {
	return f.glyph(r).advance
}

// GlyphBounds implements Face.GlyphBounds.
func (f *sourceFace) GlyphBounds(r rune) Rect {
	return f.glyph(r).bounds
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.glyph(r).gid != 0
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Hinting implements Face.Hinting.
func (f *sourceFace) Hinting() Hinting {
	return f.config.hinting
}
