package emotext

import (
	"image/color"

	"github.com/gogpu/emotext/markup"
	"github.com/gogpu/emotext/text"
)

// Options configures one Render call.
type Options struct {
	// Size is the requested font size in pixels. Zero or negative means
	// the size of the regular face.
	Size float64

	// LetterSpacing is added after every codepoint, whitespace included.
	LetterSpacing float64

	// LineSpacing is the line step as a ratio of the font size.
	LineSpacing float64

	// Time is the animation clock value, sampled once for the whole call.
	Time float64

	// Color of glyphs and decoration lines. Nil means black.
	Color color.Color

	// Wave parameterises text between single '~' markers.
	Wave Wave

	// Reveal, when positive, processes only the first Reveal codepoints
	// of the input (markers included), for typewriter effects.
	Reveal int
}

// DefaultOptions returns options with letter spacing 1, single line spacing,
// black text and the default wave.
func DefaultOptions() Options {
	return Options{
		LetterSpacing: 1,
		LineSpacing:   1,
		Color:         color.Black,
		Wave:          DefaultWave(),
	}
}

// Extent is the size of a laid-out block of text.
type Extent struct {
	Width, Height float64
}

// Result summarises a Render call.
type Result struct {
	// Style is the style in effect after the last processed codepoint.
	// Unterminated markup leaves flags set.
	Style markup.Style

	// Cursor is the final pen state.
	Cursor Cursor

	// Extent is the size of the laid-out block. Width is the widest line
	// without its trailing letter spacing; Height is the top of the last
	// line plus the font size.
	Extent Extent

	// Glyphs is the number of DrawGlyph calls issued.
	Glyphs int

	// Codepoints is the number of codepoints processed.
	Codepoints int
}

// Render lays out s with the inline markup described in package markup and
// sends the resulting draw instructions to sink. pos is the top-left corner
// of the first line. A nil sink lays out without drawing.
//
// Render never fails: malformed UTF-8 is drawn as markup.Replacement and
// unterminated markup stays in effect to the end of s.
func Render(sink Sink, fonts FontSet, s string, pos Point, opts Options) Result {
	regular := fonts.Face(markup.Regular)
	if regular == nil {
		Logger().Warn("emotext: render without a regular face")
		return Result{}
	}
	if sink == nil {
		sink = Discard
	}
	col := opts.Color
	if col == nil {
		col = color.Black
	}
	base := regular.Size()
	size := opts.Size
	if size <= 0 {
		size = base
	}

	var (
		sc        markup.Scanner
		st        markup.Style
		cur       = Cursor{LineHeight: lineStep(base, opts.LineSpacing, size)}
		res       Result
		lineRunes int
		fallbacks int
	)
	sc.Reset(s)

	closeLine := func() {
		if lineRunes > 0 {
			res.Extent.Width = max(res.Extent.Width, cur.PenX-opts.LetterSpacing)
		}
		lineRunes = 0
	}

	for {
		ev, ok := sc.Next()
		if !ok || (opts.Reveal > 0 && ev.Index >= opts.Reveal) {
			break
		}
		if st.Apply(ev) {
			continue
		}
		if ev.Kind == markup.EventLineBreak {
			closeLine()
			cur.LineBreak()
			continue
		}

		face := fonts.Face(st.Variant())
		w, fellBack := glyphWidth(face, ev.Rune, size)
		if fellBack {
			fallbacks++
		}

		if ev.Visible() {
			p := pos.Add(cur.Offset())
			if st.Wave {
				p = p.Add(opts.Wave.Offset(opts.Time, ev.Index))
			}
			sink.DrawGlyph(face, ev.Rune, p, size, col)
			if st.Strike {
				y := p.Y + size/2
				sink.DrawLine(Pt(p.X, y), Pt(p.X+w, y), col)
			}
			if st.Underline {
				y := p.Y + size
				sink.DrawLine(Pt(p.X, y), Pt(p.X+w, y), col)
			}
			res.Glyphs++
		}

		cur.Advance(w, opts.LetterSpacing)
		lineRunes++
	}
	closeLine()

	res.Style = st
	res.Cursor = cur
	res.Codepoints = sc.Index()
	if res.Codepoints > 0 {
		res.Extent.Height = float64(cur.PenY) + size
	}

	if fallbacks > 0 {
		Logger().Debug("emotext: advance fell back to glyph bounds", "glyphs", fallbacks)
	}
	if !st.Off() {
		Logger().Debug("emotext: unterminated style at end of text", "style", st.Flags().String())
	}
	return res
}

// glyphWidth returns the horizontal room r takes at size: the face's advance,
// or its bounding-box width when the font reports a zero advance.
func glyphWidth(face text.Face, r rune, size float64) (w float64, fellBack bool) {
	scale := scaleFactor(face.Size(), size)
	if adv := face.GlyphAdvance(r); adv != 0 {
		return adv * scale, false
	}
	return face.GlyphBounds(r).Width() * scale, true
}

// Draw renders s with a single face for every variant, letter spacing 1
// and the default wave. Toggles are still tracked, so decorations and wave
// motion show even though bold and italic do not change the typeface.
func Draw(sink Sink, face text.Face, s string, pos Point, size, lineSpacing, t float64, col color.Color) Result {
	opts := DefaultOptions()
	opts.Size = size
	opts.LineSpacing = lineSpacing
	opts.Time = t
	opts.Color = col
	return Render(sink, SingleFace(face), s, pos, opts)
}

// Measure lays out s without drawing and returns its extent.
func Measure(fonts FontSet, s string, opts Options) Extent {
	return Render(Discard, fonts, s, Point{}, opts).Extent
}
