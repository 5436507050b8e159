package recording

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/gogpu/emotext/text"
)

// Palette for Dump. Colors are disabled automatically when stdout is not a
// terminal; set color.NoColor to override.
var (
	dumpIndex = color.New(color.FgHiBlack)
	dumpGlyph = color.New(color.FgCyan)
	dumpLine  = color.New(color.FgMagenta)
	dumpRune  = color.New(color.FgYellow, color.Bold)
	dumpFace  = color.New(color.FgGreen)
)

// Dump writes a human readable listing of r to w: one header line, the
// resource tables, then one line per command.
func Dump(w io.Writer, r *Recording) error {
	bw := bufio.NewWriter(w)
	glyphs, lines := r.Count()
	fmt.Fprintf(bw, "recording %dx%d: %d glyphs, %d lines\n", r.Width(), r.Height(), glyphs, lines)

	res := r.Resources()
	for i := range res.FaceCount() {
		f := res.Face(FaceRef(i))
		fmt.Fprintf(bw, "  face %d: ", i)
		dumpFace.Fprintf(bw, "%s", faceName(f))
		if f != nil {
			fmt.Fprintf(bw, " @ %gpx", f.Size())
		}
		fmt.Fprintln(bw)
	}
	for i := range res.ColorCount() {
		cr, cg, cb, ca := res.Color(ColorRef(i)).RGBA()
		fmt.Fprintf(bw, "  color %d: #%02x%02x%02x%02x\n", i, cr>>8, cg>>8, cb>>8, ca>>8)
	}

	for i, cmd := range r.Commands() {
		dumpIndex.Fprintf(bw, "%04d ", i)
		switch c := cmd.(type) {
		case DrawGlyphCommand:
			dumpGlyph.Fprint(bw, c.Type().String())
			fmt.Fprint(bw, " ")
			dumpRune.Fprintf(bw, "%q", c.Rune)
			fmt.Fprintf(bw, " at (%.2f, %.2f) size %g face %d color %d\n",
				c.Pos.X, c.Pos.Y, c.Size, c.Face, c.Color)
		case DrawLineCommand:
			dumpLine.Fprint(bw, c.Type().String())
			fmt.Fprintf(bw, " (%.2f, %.2f) -> (%.2f, %.2f) color %d\n",
				c.From.X, c.From.Y, c.To.X, c.To.Y, c.Color)
		default:
			fmt.Fprintf(bw, "%v\n", cmd.Type())
		}
	}
	return bw.Flush()
}

func faceName(f text.Face) string {
	if f == nil {
		return "<nil>"
	}
	if src := f.Source(); src != nil {
		return src.Name()
	}
	return fmt.Sprintf("%T", f)
}
