package emotext

import (
	"image/color"

	"github.com/gogpu/emotext/text"
)

// fakeFace is a text.Face with fixed, exactly representable metrics.
// Every rune advances 10px unless overridden.
type fakeFace struct {
	name   string
	size   float64
	adv    map[rune]float64
	bounds map[rune]text.Rect
}

func newFakeFace(size float64) *fakeFace {
	return &fakeFace{name: "fake", size: size, adv: map[rune]float64{}, bounds: map[rune]text.Rect{}}
}

func (f *fakeFace) Metrics() text.Metrics {
	return text.Metrics{Ascent: f.size * 0.8, Descent: f.size * 0.2}
}

func (f *fakeFace) GlyphAdvance(r rune) float64 {
	if a, ok := f.adv[r]; ok {
		return a
	}
	return 10
}

func (f *fakeFace) GlyphBounds(r rune) text.Rect {
	if b, ok := f.bounds[r]; ok {
		return b
	}
	return text.Rect{MaxX: f.GlyphAdvance(r), MinY: -f.size * 0.7}
}

func (f *fakeFace) HasGlyph(rune) bool        { return true }
func (f *fakeFace) Source() *text.FontSource { return nil }
func (f *fakeFace) Size() float64            { return f.size }
func (f *fakeFace) Hinting() text.Hinting    { return text.HintingNone }

// glyphCall and lineCall are the instructions captured by traceSink.
type glyphCall struct {
	face text.Face
	r    rune
	pos  Point
	size float64
	col  color.Color
}

type lineCall struct {
	p1, p2 Point
	col    color.Color
}

// traceSink records every instruction it receives.
type traceSink struct {
	glyphs []glyphCall
	lines  []lineCall
}

func (s *traceSink) DrawGlyph(face text.Face, r rune, pos Point, size float64, col color.Color) {
	s.glyphs = append(s.glyphs, glyphCall{face, r, pos, size, col})
}

func (s *traceSink) DrawLine(p1, p2 Point, col color.Color) {
	s.lines = append(s.lines, lineCall{p1, p2, col})
}

// glyph returns the first recorded glyph for r.
func (s *traceSink) glyph(r rune) (glyphCall, bool) {
	for _, g := range s.glyphs {
		if g.r == r {
			return g, true
		}
	}
	return glyphCall{}, false
}

// fakeFonts returns a FontSet with four distinct fake faces of size 10.
func fakeFonts() (FontSet, [4]*fakeFace) {
	var faces [4]*fakeFace
	for i, name := range []string{"regular", "italic", "bold", "bold-italic"} {
		faces[i] = newFakeFace(10)
		faces[i].name = name
	}
	fs, err := NewFontSet(faces[0], faces[1], faces[2], faces[3])
	if err != nil {
		panic(err)
	}
	return fs, faces
}
