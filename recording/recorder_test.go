package recording

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/emotext"
	"github.com/gogpu/emotext/text"
)

func goFace(t *testing.T, size float64) text.Face {
	t.Helper()
	fam, err := text.GoFamily()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = fam.Close() })
	return fam.Regular.Face(size)
}

func record(t *testing.T, s string) *Recording {
	t.Helper()
	rec := NewRecorder(320, 80)
	opts := emotext.DefaultOptions()
	opts.Color = color.RGBA{R: 200, A: 255}
	emotext.Render(rec, emotext.SingleFace(goFace(t, 16)), s, emotext.Pt(4, 4), opts)
	return rec.FinishRecording()
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	if rec.Width() != 800 || rec.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", rec.Width(), rec.Height())
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
}

func TestRecorderCapturesRender(t *testing.T) {
	r := record(t, "ab ~~c~~ __d__")

	glyphs, lines := r.Count()
	if glyphs != 4 || lines != 2 {
		t.Fatalf("Count() = %d, %d; want 4, 2", glyphs, lines)
	}

	want := []CommandType{CmdDrawGlyph, CmdDrawGlyph, CmdDrawGlyph, CmdDrawLine, CmdDrawGlyph, CmdDrawLine}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("commands = %d, want %d", len(cmds), len(want))
	}
	for i, c := range cmds {
		if c.Type() != want[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), want[i])
		}
	}

	first := cmds[0].(DrawGlyphCommand)
	if first.Rune != 'a' || first.Pos != emotext.Pt(4, 4) || first.Size != 16 {
		t.Errorf("first command = %+v", first)
	}
}

func TestRecorderPoolsResources(t *testing.T) {
	r := record(t, "hello ~~world~~")
	res := r.Resources()
	if res.FaceCount() != 1 {
		t.Errorf("FaceCount() = %d, want 1", res.FaceCount())
	}
	if res.ColorCount() != 1 {
		t.Errorf("ColorCount() = %d, want 1", res.ColorCount())
	}
	if res.Face(FaceRef(5)) != nil || res.Color(ColorRef(5)) != nil {
		t.Error("out of range refs should resolve to nil")
	}
}

func TestResourcePoolColors(t *testing.T) {
	p := NewResourcePool()
	red := p.AddColor(color.RGBA{R: 255, A: 255})
	red2 := p.AddColor(color.NRGBA{R: 255, A: 255})
	black := p.AddColor(nil)
	if red != red2 {
		t.Error("equal colors should share a reference")
	}
	if black == red {
		t.Error("black and red share a reference")
	}
	if p.Color(black) != color.Black {
		t.Error("nil color should be stored as black")
	}

	p.Clear()
	if p.ColorCount() != 0 || p.FaceCount() != 0 {
		t.Error("Clear() left resources behind")
	}
}

func TestRecordingReplay(t *testing.T) {
	r := record(t, "**x** ~~y~~")

	again := NewRecorder(r.Width(), r.Height())
	r.Replay(again)
	copied := again.FinishRecording()

	if len(copied.Commands()) != len(r.Commands()) {
		t.Fatalf("replayed %d commands, want %d", len(copied.Commands()), len(r.Commands()))
	}
	for i := range r.Commands() {
		if copied.Commands()[i] != r.Commands()[i] {
			t.Errorf("command %d differs: %v vs %v", i, copied.Commands()[i], r.Commands()[i])
		}
	}
}

func TestRecordingPlayback(t *testing.T) {
	r := record(t, "a ~~b~~")
	b := newMockBackend("mock")

	if err := r.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	if b.beginCalls != 1 || b.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", b.beginCalls, b.endCalls)
	}
	if b.width != 320 || b.height != 80 {
		t.Errorf("Begin got %dx%d", b.width, b.height)
	}
	if string(b.glyphs) != "ab" || b.lines != 1 {
		t.Errorf("replayed glyphs %q lines %d", string(b.glyphs), b.lines)
	}
}

func TestRecordingPlaybackBeginError(t *testing.T) {
	r := record(t, "a")
	b := newMockBackend("mock")
	b.beginErr = errors.New("boom")

	if err := r.Playback(b); !errors.Is(err, b.beginErr) {
		t.Errorf("err = %v, want begin error", err)
	}
	if len(b.glyphs) != 0 || b.endCalls != 0 {
		t.Error("nothing should be drawn after a failed Begin")
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdDrawGlyph, "DrawGlyph"},
		{CmdDrawLine, "DrawLine"},
		{CommandType(254), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.ct, got, tt.want)
		}
	}
}

func TestRefValidity(t *testing.T) {
	if FaceRef(InvalidRef).IsValid() || ColorRef(InvalidRef).IsValid() {
		t.Error("InvalidRef reported valid")
	}
	if !FaceRef(0).IsValid() || !ColorRef(0).IsValid() {
		t.Error("zero ref reported invalid")
	}
}

func TestRecordingPlaybackClearsBackground(t *testing.T) {
	rec := NewRecorder(10, 10)
	r := rec.FinishRecording()
	b := newMockBackend("mock")
	if err := r.Playback(b); err != nil {
		t.Fatal(err)
	}
	if b.cleared != nil {
		t.Errorf("cleared to %v without a background", b.cleared)
	}

	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	rec = NewRecorder(10, 10)
	rec.SetBackground(bg)
	r = rec.FinishRecording()
	if r.Background() != bg {
		t.Errorf("Background() = %v, want %v", r.Background(), bg)
	}
	b = newMockBackend("mock")
	if err := r.Playback(b); err != nil {
		t.Fatal(err)
	}
	if b.cleared != bg {
		t.Errorf("cleared to %v, want %v", b.cleared, bg)
	}
}
