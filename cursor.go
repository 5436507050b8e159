package emotext

// Cursor tracks the pen while a string is laid out.
// PenX grows left to right within a line and is reset by a line break;
// PenY only grows, in whole pixels.
type Cursor struct {
	PenX       float64
	PenY       int
	LineHeight float64
}

// Advance moves the pen right by width plus spacing.
func (c *Cursor) Advance(width, spacing float64) {
	c.PenX += width + spacing
}

// LineBreak moves the pen to the start of the next line.
func (c *Cursor) LineBreak() {
	c.PenY += int(c.LineHeight)
	c.PenX = 0
}

// Offset returns the pen position relative to the text origin.
func (c Cursor) Offset() Point {
	return Point{X: c.PenX, Y: float64(c.PenY)}
}

// lineStep returns the vertical distance between lines for fonts whose
// metrics are reported at baseSize and drawn at size.
func lineStep(baseSize, lineSpacing, size float64) float64 {
	return baseSize * lineSpacing * scaleFactor(baseSize, size)
}

// scaleFactor converts metrics reported at baseSize to size.
func scaleFactor(baseSize, size float64) float64 {
	if baseSize <= 0 {
		return 1
	}
	return size / baseSize
}
