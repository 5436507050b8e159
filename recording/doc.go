// Package recording captures the draw instructions of an emotext render so
// they can be inspected, dumped, or replayed to other sinks.
//
// A Recorder is an emotext.Sink. Every DrawGlyph and DrawLine call becomes a
// typed command; faces and colors are kept once in a ResourcePool and
// referenced by handle. FinishRecording returns an immutable Recording.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(640, 120)
//	emotext.Render(rec, fonts, "**hello** ~world~", emotext.Pt(10, 10), opts)
//	r := rec.FinishRecording()
//
//	// Print the command list.
//	recording.Dump(os.Stdout, r)
//
//	// Replay onto a registered backend.
//	b, _ := recording.NewBackend("raster")
//	r.Playback(b)
//	b.(recording.FileBackend).SaveToFile("out.png")
//
// # Backend Registration
//
// Backends register themselves from init, following the database/sql driver
// pattern. Importing github.com/gogpu/emotext/raster registers "raster".
package recording
