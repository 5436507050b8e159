package emotext

import (
	"image/color"

	"github.com/gogpu/emotext/text"
)

// Sink receives the draw instructions produced by Render.
//
// Positions are in pixels with Y down. The pos passed to DrawGlyph is the
// top-left corner of the glyph's line box (not the baseline), already
// including any wave offset. Decoration lines are horizontal and are passed
// as their two end points.
//
// A Sink never owns the faces it is given; it may rasterise them but must
// not close their sources.
type Sink interface {
	// DrawGlyph draws r with face scaled to size pixels per em.
	DrawGlyph(face text.Face, r rune, pos Point, size float64, col color.Color)

	// DrawLine draws a line segment from p1 to p2.
	DrawLine(p1, p2 Point, col color.Color)
}

// discard is a Sink that drops every instruction.
type discard struct{}

func (discard) DrawGlyph(text.Face, rune, Point, float64, color.Color) {}
func (discard) DrawLine(Point, Point, color.Color)                     {}

// Discard is a Sink on which all draw calls succeed without doing anything.
var Discard Sink = discard{}
