package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/gogpu/emotext"
)

// FrameFunc draws one animation frame onto sink at clock time t.
type FrameFunc func(sink emotext.Sink, t float64)

// GIFOptions configures EncodeGIF.
type GIFOptions struct {
	Width, Height int

	// Frames is the number of frames to render.
	Frames int

	// FPS is the frame rate; the clock advances 1/FPS seconds per frame.
	// Zero means 25.
	FPS float64

	// Background is painted before every frame. Nil means white.
	Background color.Color

	// Palette quantises frames. Nil means palette.Plan9.
	Palette color.Palette
}

func (o GIFOptions) frameDuration() time.Duration {
	fps := o.FPS
	if fps <= 0 {
		fps = 25
	}
	return time.Duration(float64(time.Second) / fps)
}

// EncodeGIF renders opts.Frames frames with frame and writes them to w as a
// looping animated GIF. Each frame is drawn at the time of an emotext.Clock
// that starts at zero and ticks once per frame.
func EncodeGIF(w io.Writer, opts GIFOptions, frame FrameFunc) error {
	if opts.Frames <= 0 {
		return ErrNoFrames
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	pal := opts.Palette
	if pal == nil {
		pal = palette.Plan9
	}
	step := opts.frameDuration()
	delay := max(int(step/(10*time.Millisecond)), 1)

	canvas := NewCanvas(opts.Width, opts.Height)
	defer func() { _ = canvas.Close() }()

	var clock emotext.Clock
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, opts.Frames),
		Delay: make([]int, 0, opts.Frames),
	}
	for range opts.Frames {
		canvas.Clear(bg)
		frame(canvas, clock.Time())

		pm := image.NewPaletted(canvas.img.Bounds(), pal)
		draw.Draw(pm, pm.Rect, canvas.img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)
		clock.Tick(step)
	}
	emotext.Logger().Debug("raster: encoding gif", "frames", opts.Frames, "delay", delay)
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("raster: encode gif: %w", err)
	}
	return nil
}

// SaveGIF is EncodeGIF into a file.
func SaveGIF(path string, opts GIFOptions, frame FrameFunc) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, opts, frame); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
