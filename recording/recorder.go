package recording

import (
	"image/color"

	"github.com/gogpu/emotext"
	"github.com/gogpu/emotext/text"
)

// Recorder captures draw instructions as commands. It implements
// emotext.Sink, so it can be passed straight to emotext.Render. Use
// FinishRecording to obtain an immutable Recording that can be replayed.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	emotext.Render(rec, fonts, "~~gone~~", emotext.Pt(0, 0), opts)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	background    color.Color
	commands      []Command
	resources     *ResourcePool
}

var _ emotext.Sink = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a canvas of the given dimensions.
// The dimensions are handed to backends on playback.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// DrawGlyph implements emotext.Sink.
func (r *Recorder) DrawGlyph(face text.Face, ch rune, pos emotext.Point, size float64, col color.Color) {
	r.commands = append(r.commands, DrawGlyphCommand{
		Face:  r.resources.AddFace(face),
		Rune:  ch,
		Pos:   pos,
		Size:  size,
		Color: r.resources.AddColor(col),
	})
}

// DrawLine implements emotext.Sink.
func (r *Recorder) DrawLine(p1, p2 emotext.Point, col color.Color) {
	r.commands = append(r.commands, DrawLineCommand{
		From:  p1,
		To:    p2,
		Color: r.resources.AddColor(col),
	})
}

// SetBackground sets the color backends are cleared to before playback.
// Nil, the default, leaves the backend's initial surface untouched.
func (r *Recorder) SetBackground(col color.Color) {
	r.background = col
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:      r.width,
		height:     r.height,
		background: r.background,
		commands:   r.commands,
		resources:  r.resources,
	}
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend or emotext.Sink.
type Recording struct {
	width, height int
	background    color.Color
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Background returns the playback background, or nil.
func (r *Recording) Background() color.Color {
	return r.background
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of glyph and line commands.
func (r *Recording) Count() (glyphs, lines int) {
	for _, cmd := range r.commands {
		switch cmd.Type() {
		case CmdDrawGlyph:
			glyphs++
		case CmdDrawLine:
			lines++
		}
	}
	return glyphs, lines
}

// Replay sends every command to sink in recording order.
func (r *Recording) Replay(sink emotext.Sink) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawGlyphCommand:
			sink.DrawGlyph(r.resources.Face(c.Face), c.Rune, c.Pos, c.Size, r.resources.Color(c.Color))
		case DrawLineCommand:
			sink.DrawLine(c.From, c.To, r.resources.Color(c.Color))
		}
	}
}

// Playback replays the recording to the given backend, bracketed by
// Begin and End. A recording with a background clears the backend first.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	if r.background != nil {
		backend.Clear(r.background)
	}
	r.Replay(backend)
	return backend.End()
}
