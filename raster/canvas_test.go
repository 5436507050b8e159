package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/emotext"
	"github.com/gogpu/emotext/recording"
	"github.com/gogpu/emotext/text"
)

func goFonts(t *testing.T, size float64) emotext.FontSet {
	t.Helper()
	fam, err := text.GoFamily()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = fam.Close() })
	fs, err := emotext.FamilyFaces(fam, size)
	if err != nil {
		t.Fatal(err)
	}
	return fs
}

// inkBounds returns the bounding box of non-transparent pixels.
func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := NewCanvas(w, h)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCanvasSize(t *testing.T) {
	c := newTestCanvas(t, 120, 40)
	if c.Width() != 120 || c.Height() != 40 {
		t.Errorf("size = %dx%d, want 120x40", c.Width(), c.Height())
	}
	if !inkBounds(c.RGBA()).Empty() {
		t.Error("new canvas should be transparent")
	}
}

func TestCanvasRender(t *testing.T) {
	c := newTestCanvas(t, 200, 60)
	res := emotext.Render(c, goFonts(t, 24), "Hi **there**", emotext.Pt(10, 10), emotext.DefaultOptions())

	ink := inkBounds(c.RGBA())
	if ink.Empty() {
		t.Fatal("Render drew nothing")
	}
	if ink.Min.X < 9 || ink.Min.Y < 10 {
		t.Errorf("ink %v starts before the text origin", ink)
	}
	if float64(ink.Max.X) > 10+res.Extent.Width+2 {
		t.Errorf("ink %v wider than extent %v", ink, res.Extent)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := newTestCanvas(t, 50, 20)
	red := color.RGBA{R: 255, A: 255}
	c.LineWidth = 2
	c.DrawLine(emotext.Pt(5, 10), emotext.Pt(45, 10), red)

	ink := inkBounds(c.RGBA())
	if ink != image.Rect(5, 9, 45, 11) {
		t.Errorf("line ink = %v, want (5,9)-(45,11)", ink)
	}
	if got := c.RGBA().RGBAAt(20, 9); got.R < 250 || got.A < 250 || got.G != 0 {
		t.Errorf("pixel (20, 9) = %v, want %v", got, red)
	}
}

func TestCanvasDrawLineRasterisesOnlyItsBox(t *testing.T) {
	c := newTestCanvas(t, 1920, 1080)
	for i := range 300 {
		x := float64(i%200) * 9
		y := float64(20 + (i/200)*30)
		c.DrawLine(emotext.Pt(x, y), emotext.Pt(x+6, y), color.Black)
	}
	if got := c.rast.Size(); got.X > 7 || got.Y > 2 {
		t.Errorf("rasterizer sized %v for a 6px segment", got)
	}
	ink := inkBounds(c.RGBA())
	if ink.Min.Y != 19 || ink.Max.Y != 51 {
		t.Errorf("ink rows %d..%d, want 19..51", ink.Min.Y, ink.Max.Y)
	}
}

func TestCanvasDrawLineClipped(t *testing.T) {
	c := newTestCanvas(t, 20, 10)
	c.DrawLine(emotext.Pt(-10, 5), emotext.Pt(10, 5), color.Black)
	if ink := inkBounds(c.RGBA()); ink != image.Rect(0, 4, 10, 6) {
		t.Errorf("clipped line ink = %v, want (0,4)-(10,6)", ink)
	}

	c.DrawLine(emotext.Pt(30, 5), emotext.Pt(40, 5), color.Black)
	c.DrawLine(emotext.Pt(0, -5), emotext.Pt(10, -5), color.Black)
	if ink := inkBounds(c.RGBA()); ink != image.Rect(0, 4, 10, 6) {
		t.Errorf("off-canvas lines drew pixels: %v", ink)
	}
}

func BenchmarkCanvasDrawLine(b *testing.B) {
	c := NewCanvas(1920, 1080)
	defer func() { _ = c.Close() }()
	b.ReportAllocs()
	for b.Loop() {
		c.DrawLine(emotext.Pt(100, 500), emotext.Pt(106, 500), color.Black)
	}
}

func TestCanvasDrawLineDegenerate(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.DrawLine(emotext.Pt(3, 3), emotext.Pt(3, 3), color.Black)
	if !inkBounds(c.RGBA()).Empty() {
		t.Error("zero-length line drew pixels")
	}
}

func TestCanvasStrikethrough(t *testing.T) {
	c := newTestCanvas(t, 100, 40)
	opts := emotext.DefaultOptions()
	opts.Color = color.RGBA{B: 255, A: 255}
	emotext.Render(c, goFonts(t, 20), "~~-~~", emotext.Pt(0, 0), opts)

	// The strike runs through y = 10; check a pixel on it that the glyph
	// itself does not cover.
	if c.RGBA().RGBAAt(1, 10).A == 0 {
		t.Error("no strike line at y = size/2")
	}
}

func TestCanvasSkipsFacesWithoutSource(t *testing.T) {
	c := newTestCanvas(t, 20, 20)
	c.DrawGlyph(nil, 'x', emotext.Point{}, 12, color.Black)
	if c.failed != 1 {
		t.Errorf("failed = %d, want 1", c.failed)
	}
	if err := c.End(); err != nil {
		t.Errorf("End: %v", err)
	}
}

func TestCanvasClear(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	c.Clear(color.White)
	if got := c.RGBA().RGBAAt(3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white", got)
	}
}

func TestCanvasWriteTo(t *testing.T) {
	c := newTestCanvas(t, 16, 8)
	c.Clear(color.Black)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size %v", img.Bounds())
	}

	if _, err := NewBackend().WriteTo(&buf); !errors.Is(err, ErrNoImage) {
		t.Errorf("WriteTo before Begin err = %v, want ErrNoImage", err)
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c := newTestCanvas(t, 8, 8)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	b, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*Canvas); !ok {
		t.Fatalf("backend is %T, want *Canvas", b)
	}
}

func TestPlaybackMatchesDirectRender(t *testing.T) {
	fonts := goFonts(t, 18)
	opts := emotext.DefaultOptions()
	opts.Time = 0.4
	const s = "**b** *i* ~wave~ __u__ ~~s~~"

	direct := newTestCanvas(t, 260, 40)
	emotext.Render(direct, fonts, s, emotext.Pt(4, 4), opts)

	rec := recording.NewRecorder(260, 40)
	emotext.Render(rec, fonts, s, emotext.Pt(4, 4), opts)

	replayed := NewBackend()
	t.Cleanup(func() { _ = replayed.Close() })
	if err := rec.FinishRecording().Playback(replayed); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(direct.RGBA().Pix, replayed.RGBA().Pix) {
		t.Error("playback differs from direct rendering")
	}
}
