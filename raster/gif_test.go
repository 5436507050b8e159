package raster

import (
	"bytes"
	"errors"
	"image/gif"
	"path/filepath"
	"testing"

	"github.com/gogpu/emotext"
)

func TestEncodeGIF(t *testing.T) {
	fonts := goFonts(t, 20)
	opts := emotext.DefaultOptions()

	var times []float64
	var buf bytes.Buffer
	err := EncodeGIF(&buf, GIFOptions{Width: 120, Height: 40, Frames: 4, FPS: 10}, func(sink emotext.Sink, t float64) {
		times = append(times, t)
		opts.Time = t
		emotext.Render(sink, fonts, "~wave~", emotext.Pt(5, 5), opts)
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 0.1, 0.2, 0.3}
	if len(times) != len(want) {
		t.Fatalf("frames drawn = %d, want %d", len(times), len(want))
	}
	for i := range want {
		if !near(times[i], want[i]) {
			t.Errorf("frame %d at t=%v, want %v", i, times[i], want[i])
		}
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 4 {
		t.Fatalf("decoded %d frames, want 4", len(anim.Image))
	}
	if anim.Delay[0] != 10 {
		t.Errorf("delay = %d, want 10", anim.Delay[0])
	}
	if bytes.Equal(anim.Image[0].Pix, anim.Image[1].Pix) {
		t.Error("wave text should move between frames")
	}
}

func TestEncodeGIFNoFrames(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeGIF(&buf, GIFOptions{Width: 4, Height: 4}, func(emotext.Sink, float64) {})
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}

func TestSaveGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	err := SaveGIF(path, GIFOptions{Width: 8, Height: 8, Frames: 2}, func(emotext.Sink, float64) {})
	if err != nil {
		t.Fatal(err)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
