package recording

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/emotext"
)

// Backend is an emotext.Sink with a lifecycle. Backends receive the
// recorded draw instructions on Playback and turn them into their output
// format.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	emotext.Sink

	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// Clear fills the whole surface with col.
	Clear(col color.Color)

	// End finalizes the rendering and prepares the output.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() image.Image
}
