package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// It reads advances and extents straight from the hmtx/glyf tables, without
// the pixel-grid rounding applied by x/image.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
// font.Face is not safe for concurrent use, so access is serialised.
type gotextParsedFont struct {
	mu   sync.Mutex
	face *font.Face
}

// Name implements ParsedFont.Name using the family from the name table.
func (f *gotextParsedFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.Describe().Family
}

// FullName implements ParsedFont.FullName.
// go-text only exposes the family, so this is always "".
func (f *gotextParsedFont) FullName() string { return "" }

// scale converts font units to pixels at ppem. Caller must hold f.mu.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := f.face.Upem()
	if upem == 0 {
		return 0
	}
	return ppem / float64(upem)
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid) //nolint:gosec // glyph ids of TrueType fonts fit in 16 bits
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv := f.face.HorizontalAdvance(font.GID(glyphIndex))
	return float64(adv) * f.scale(ppem)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
// go-text extents are Y up with a negative height; the result is Y down.
func (f *gotextParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.GlyphExtents(font.GID(glyphIndex))
	if !ok {
		return Rect{}
	}
	s := f.scale(ppem)
	return Rect{
		MinX: float64(ext.XBearing) * s,
		MinY: -float64(ext.YBearing) * s,
		MaxX: float64(ext.XBearing+ext.Width) * s,
		MaxY: -float64(ext.YBearing+ext.Height) * s,
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}
	s := f.scale(ppem)
	return FontMetrics{
		Ascent:    float64(ext.Ascender) * s,
		Descent:   float64(ext.Descender) * s,
		LineGap:   float64(ext.LineGap) * s,
		XHeight:   float64(f.face.LineMetric(font.XHeight)) * s,
		CapHeight: float64(f.face.LineMetric(font.CapHeight)) * s,
	}
}
