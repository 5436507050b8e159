package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/emotext"
	"github.com/gogpu/emotext/recording"
	"github.com/gogpu/emotext/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Canvas is an emotext.Sink that paints into an *image.RGBA.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend and recording.ImageBackend.
//
// Canvas is not safe for concurrent use. Close releases the rasterising
// faces it caches.
type Canvas struct {
	img    *image.RGBA
	glyphs *text.GlyphDrawer
	rast   *vector.Rasterizer

	// LineWidth is the thickness of decoration lines in pixels.
	LineWidth float64

	failed int
}

var (
	_ emotext.Sink            = (*Canvas)(nil)
	_ recording.WriterBackend = (*Canvas)(nil)
	_ recording.FileBackend   = (*Canvas)(nil)
	_ recording.ImageBackend  = (*Canvas)(nil)
)

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := NewBackend()
	_ = c.Begin(width, height)
	return c
}

// NewBackend returns a canvas without pixels. Begin must be called before
// drawing; recording.Recording.Playback does that.
func NewBackend() *Canvas {
	return &Canvas{LineWidth: 1}
}

// Begin allocates a transparent image of the given size, discarding any
// previous content.
func (c *Canvas) Begin(width, height int) error {
	width, height = max(width, 0), max(height, 0)
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if c.glyphs == nil {
		c.glyphs = text.NewGlyphDrawer(c.img)
	} else {
		c.glyphs.Dst = c.img
	}
	if c.rast == nil {
		c.rast = vector.NewRasterizer(0, 0)
	}
	c.failed = 0
	return nil
}

// End implements recording.Backend.
func (c *Canvas) End() error {
	if c.failed > 0 {
		emotext.Logger().Warn("raster: glyphs skipped", "count", c.failed)
	}
	return nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	if c.img == nil {
		return 0
	}
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	if c.img == nil {
		return 0
	}
	return c.img.Rect.Dy()
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	if c.img == nil {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawGlyph implements emotext.Sink. Faces that cannot be rasterised, such
// as faces without a FontSource, are skipped and logged.
func (c *Canvas) DrawGlyph(face text.Face, r rune, pos emotext.Point, size float64, col color.Color) {
	if c.img == nil {
		return
	}
	if col == nil {
		col = color.Black
	}
	if err := c.glyphs.DrawGlyph(face, r, pos.X, pos.Y, size, col); err != nil {
		c.failed++
		emotext.Logger().Debug("raster: glyph not drawn", "rune", string(r), "err", err)
	}
}

// DrawLine implements emotext.Sink. The segment is filled as a quad
// LineWidth pixels thick, centred on the line from p1 to p2. Only the
// quad's pixel bounding box is rasterised.
func (c *Canvas) DrawLine(p1, p2 emotext.Point, col color.Color) {
	if c.img == nil {
		return
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	if col == nil {
		col = color.Black
	}
	half := max(c.LineWidth, 0) / 2
	nx, ny := -dy/length*half, dx/length*half
	quad := [4]emotext.Point{
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p2.X + nx, Y: p2.Y + ny},
		{X: p2.X - nx, Y: p2.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
	}

	box := quadBounds(quad).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}
	ox, oy := float64(box.Min.X), float64(box.Min.Y)

	c.rast.Reset(box.Dx(), box.Dy())
	c.rast.DrawOp = draw.Over
	c.rast.MoveTo(float32(quad[0].X-ox), float32(quad[0].Y-oy))
	for _, p := range quad[1:] {
		c.rast.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.rast.ClosePath()
	c.rast.Draw(c.img, box, image.NewUniform(col), image.Point{})
}

// quadBounds returns the smallest integer rectangle containing q.
func quadBounds(q [4]emotext.Point) image.Rectangle {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// Image returns the canvas pixels, or nil before Begin.
func (c *Canvas) Image() image.Image {
	if c.img == nil {
		return nil
	}
	return c.img
}

// RGBA returns the underlying image, or nil before Begin.
func (c *Canvas) RGBA() *image.RGBA {
	return c.img
}

// WriteTo encodes the canvas as PNG.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if c.img == nil {
		return 0, ErrNoImage
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, c.img)
	return cw.n, err
}

// SaveToFile saves the canvas to a PNG file.
func (c *Canvas) SaveToFile(path string) error {
	return c.SavePNG(path)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases the cached rasterising faces.
func (c *Canvas) Close() error {
	if c.glyphs == nil {
		return nil
	}
	return c.glyphs.Close()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
