package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// drawKey identifies a rasterising face.
type drawKey struct {
	source  *FontSource
	size    float64
	hinting Hinting
}

// GlyphDrawer rasterises single glyphs into a destination image.
// It keeps one x/image face per (source, size, hinting) and must be closed
// to release them.
//
// GlyphDrawer is not safe for concurrent use.
type GlyphDrawer struct {
	Dst   draw.Image
	faces map[drawKey]font.Face
}

// NewGlyphDrawer returns a GlyphDrawer targeting dst.
func NewGlyphDrawer(dst draw.Image) *GlyphDrawer {
	return &GlyphDrawer{
		Dst:   dst,
		faces: make(map[drawKey]font.Face),
	}
}

// DrawGlyph draws r with face scaled to size. (x, y) is the top-left corner
// of the glyph's line box; the baseline sits one ascent below it.
// It returns an error if the face cannot be rasterised, for example when it
// has no FontSource or the source was closed.
func (d *GlyphDrawer) DrawGlyph(face Face, r rune, x, y, size float64, col color.Color) error {
	if face == nil || face.Source() == nil {
		return ErrSourceClosed
	}
	xf, err := d.face(face.Source(), size, face.Hinting())
	if err != nil {
		return err
	}

	ascent := xf.Metrics().Ascent
	fd := &font.Drawer{
		Dst:  d.Dst,
		Src:  image.NewUniform(col),
		Face: xf,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y) + ascent},
	}
	fd.DrawString(string(r))
	return nil
}

func (d *GlyphDrawer) face(src *FontSource, size float64, h Hinting) (font.Face, error) {
	key := drawKey{source: src, size: size, hinting: h}
	if f, ok := d.faces[key]; ok {
		return f, nil
	}
	otf, err := src.rasterFont()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(h),
	})
	if err != nil {
		return nil, err
	}
	d.faces[key] = f
	return f, nil
}

// Close releases every cached face.
func (d *GlyphDrawer) Close() error {
	var first error
	for k, f := range d.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(d.faces, k)
	}
	return first
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
