package emotext

import (
	"github.com/gogpu/emotext/markup"
	"github.com/gogpu/emotext/text"
)

// FontSet maps each markup.Variant to a face.
// The zero value has no faces; Render draws nothing with it.
type FontSet struct {
	faces [markup.NumVariants]text.Face
}

// NewFontSet builds a FontSet. Only regular is required; a nil variant falls
// back to regular, so its toggles are still tracked but do not change the
// typeface.
func NewFontSet(regular, italic, bold, boldItalic text.Face) (FontSet, error) {
	if regular == nil {
		return FontSet{}, ErrNoRegularFace
	}
	fs := FontSet{faces: [markup.NumVariants]text.Face{
		markup.Regular:    regular,
		markup.Italic:     italic,
		markup.Bold:       bold,
		markup.BoldItalic: boldItalic,
	}}
	for i, f := range fs.faces {
		if f == nil {
			fs.faces[i] = regular
		}
	}
	return fs, nil
}

// SingleFace returns a FontSet that uses face for every variant.
func SingleFace(face text.Face) FontSet {
	var fs FontSet
	for i := range fs.faces {
		fs.faces[i] = face
	}
	return fs
}

// FamilyFaces creates faces of the given size for every font of fam.
func FamilyFaces(fam *text.Family, size float64, opts ...text.FaceOption) (FontSet, error) {
	if fam == nil || fam.Regular == nil {
		return FontSet{}, ErrNoRegularFace
	}
	face := func(s *text.FontSource) text.Face {
		if s == nil {
			return nil
		}
		return s.Face(size, opts...)
	}
	return NewFontSet(face(fam.Regular), face(fam.Italic), face(fam.Bold), face(fam.BoldItalic))
}

// Face returns the face for v, or nil for an unknown variant.
func (fs FontSet) Face(v markup.Variant) text.Face {
	if int(v) >= len(fs.faces) {
		return nil
	}
	return fs.faces[v]
}

// BaseSize returns the size of the regular face, the size at which glyph
// metrics are reported before scaling. It is 0 for an empty FontSet.
func (fs FontSet) BaseSize() float64 {
	if fs.faces[markup.Regular] == nil {
		return 0
	}
	return fs.faces[markup.Regular].Size()
}
