// Package text loads fonts and answers the glyph questions emotext asks while
// laying out styled text: how wide is this glyph, what is its bounding box,
// and how is it rasterised.
//
// The package separates two kinds of object:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight view of a FontSource at a specific size
//
// Font data is parsed by a pluggable FontParser. Two backends are built in:
// "ximage" (golang.org/x/image/font/opentype, the default) and "gotext"
// (github.com/go-text/typesetting). Glyph rasterisation always goes through
// golang.org/x/image.
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(24)
//	w := face.GlyphAdvance('W')
//
// # Font families
//
// Styled text needs up to four fonts. A Family groups them; GoFamily returns
// the Go fonts bundled with golang.org/x/image:
//
//	fam, err := text.GoFamily()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer fam.Close()
package text
