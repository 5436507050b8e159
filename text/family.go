package text

import (
	"errors"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family groups the four fonts used by styled text.
// Missing variants fall back to Regular when the family is built with
// LoadFamily.
type Family struct {
	Regular    *FontSource
	Italic     *FontSource
	Bold       *FontSource
	BoldItalic *FontSource
}

// GoFamily returns the Go fonts bundled with golang.org/x/image.
func GoFamily(opts ...SourceOption) (*Family, error) {
	return newFamily([4][]byte{goregular.TTF, goitalic.TTF, gobold.TTF, gobolditalic.TTF}, opts)
}

func newFamily(data [4][]byte, opts []SourceOption) (*Family, error) {
	var srcs [4]*FontSource
	for i, d := range data {
		s, err := NewFontSource(d, opts...)
		if err != nil {
			closeAll(srcs[:i])
			return nil, err
		}
		srcs[i] = s
	}
	return &Family{Regular: srcs[0], Italic: srcs[1], Bold: srcs[2], BoldItalic: srcs[3]}, nil
}

// LoadFamily loads a family from font files. Only regular is required; an
// empty path for any other variant reuses the regular font, so toggles for
// that variant still track but do not change the typeface.
func LoadFamily(regular, italic, bold, boldItalic string, opts ...SourceOption) (*Family, error) {
	if regular == "" {
		return nil, ErrNoRegularFont
	}
	reg, err := NewFontSourceFromFile(regular, opts...)
	if err != nil {
		return nil, err
	}
	fam := &Family{Regular: reg, Italic: reg, Bold: reg, BoldItalic: reg}

	for _, v := range []struct {
		path string
		dst  **FontSource
	}{
		{italic, &fam.Italic},
		{bold, &fam.Bold},
		{boldItalic, &fam.BoldItalic},
	} {
		if v.path == "" {
			continue
		}
		s, err := NewFontSourceFromFile(v.path, opts...)
		if err != nil {
			_ = fam.Close()
			return nil, err
		}
		*v.dst = s
	}
	return fam, nil
}

// Close closes every distinct source of the family.
func (f *Family) Close() error {
	seen := make(map[*FontSource]bool, 4)
	var errs []error
	for _, s := range []*FontSource{f.Regular, f.Italic, f.Bold, f.BoldItalic} {
		if s == nil || seen[s] {
			continue
		}
		seen[s] = true
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func closeAll(srcs []*FontSource) {
	for _, s := range srcs {
		if s != nil {
			_ = s.Close()
		}
	}
}
