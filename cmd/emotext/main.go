// Command emotext renders marked-up text to a PNG image or an animated GIF.
//
//	emotext -text 'Hello **bold** ~wavy~ world' -output hello.png
//	emotext -text '~wheee~' -output wave.gif -frames 40
//	emotext -in note.txt -charset windows-1252 -dump
//	emotext -text '*hi*' -output - > hi.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/gogpu/emotext"
	"github.com/gogpu/emotext/raster"
	"github.com/gogpu/emotext/recording"
	"github.com/gogpu/emotext/text"
)

const sample = `**emotext** renders *italic*, ~~strike~~, __underline__\nand ~wavy~ text.`

type config struct {
	text, in, charset string

	regular, italic, bold, boldItalic string
	parser                            string

	size, spacing, lineSpacing, time float64
	fg, bg                           string
	width, height, padding           int

	output  string
	backend string
	frames  int
	fps     float64
	reveal  bool
	dump    bool
	verbose bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("emotext: %v", err)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("emotext", flag.ContinueOnError)
	fs.StringVar(&cfg.text, "text", sample, `text to render; the two characters \n start a new line`)
	fs.StringVar(&cfg.in, "in", "", "read the text from a file instead (- for stdin)")
	fs.StringVar(&cfg.charset, "charset", "", "charset of -in, e.g. latin1, windows-1252, shift_jis (default: raw UTF-8)")
	fs.StringVar(&cfg.regular, "regular", "", "regular font file (default: Go fonts)")
	fs.StringVar(&cfg.italic, "italic", "", "italic font file")
	fs.StringVar(&cfg.bold, "bold", "", "bold font file")
	fs.StringVar(&cfg.boldItalic, "bolditalic", "", "bold italic font file")
	fs.StringVar(&cfg.parser, "parser", text.ParserXImage, "font parser backend: ximage or gotext")
	fs.Float64Var(&cfg.size, "size", 32, "font size in pixels")
	fs.Float64Var(&cfg.spacing, "spacing", 1, "letter spacing in pixels")
	fs.Float64Var(&cfg.lineSpacing, "line", 1.25, "line spacing ratio")
	fs.Float64Var(&cfg.time, "time", 0, "animation time in seconds for still images")
	fs.StringVar(&cfg.fg, "color", "#202020", "text color")
	fs.StringVar(&cfg.bg, "bg", "#ffffff", "background color")
	fs.IntVar(&cfg.width, "width", 0, "image width (default: fit the text)")
	fs.IntVar(&cfg.height, "height", 0, "image height (default: fit the text)")
	fs.IntVar(&cfg.padding, "padding", 16, "margin around the text when fitting")
	fs.StringVar(&cfg.output, "output", "emotext.png", "output file (- for stdout); a .gif extension writes an animation")
	fs.StringVar(&cfg.backend, "backend", "raster", "backend for still images: "+strings.Join(recording.Backends(), ", "))
	fs.IntVar(&cfg.frames, "frames", 30, "number of GIF frames")
	fs.Float64Var(&cfg.fps, "fps", 25, "GIF frame rate")
	fs.BoolVar(&cfg.reveal, "reveal", false, "type the text out over the GIF frames")
	fs.BoolVar(&cfg.dump, "dump", false, "print the draw commands instead of writing an image")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.verbose {
		emotext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	src, err := loadText(cfg, stdin)
	if err != nil {
		return err
	}

	fam, err := loadFamily(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = fam.Close() }()

	fonts, err := emotext.FamilyFaces(fam, cfg.size)
	if err != nil {
		return err
	}

	fg, err := emotext.ParseHex(cfg.fg)
	if err != nil {
		return fmt.Errorf("-color: %w", err)
	}
	bg, err := emotext.ParseHex(cfg.bg)
	if err != nil {
		return fmt.Errorf("-bg: %w", err)
	}

	opts := emotext.DefaultOptions()
	opts.Size = cfg.size
	opts.LetterSpacing = cfg.spacing
	opts.LineSpacing = cfg.lineSpacing
	opts.Time = cfg.time
	opts.Color = fg

	w, h := canvasSize(cfg, fonts, src, opts)
	origin := emotext.Pt(float64(cfg.padding), float64(cfg.padding))

	if cfg.dump {
		rec := recording.NewRecorder(w, h)
		emotext.Render(rec, fonts, src, origin, opts)
		return recording.Dump(stdout, rec.FinishRecording())
	}

	if cfg.output != "-" && strings.EqualFold(filepath.Ext(cfg.output), ".gif") {
		total := len([]rune(src))
		err = raster.SaveGIF(cfg.output, raster.GIFOptions{
			Width: w, Height: h, Frames: cfg.frames, FPS: cfg.fps, Background: bg,
		}, func(sink emotext.Sink, t float64) {
			o := opts
			o.Time = t
			if cfg.reveal {
				o.Reveal = revealAt(t, cfg.frames, cfg.fps, total)
			}
			emotext.Render(sink, fonts, src, origin, o)
		})
		if err != nil {
			return err
		}
		log.Printf("animation saved to %s (%dx%d, %d frames)", cfg.output, w, h, cfg.frames)
		return nil
	}

	rec := recording.NewRecorder(w, h)
	rec.SetBackground(bg)
	emotext.Render(rec, fonts, src, origin, opts)
	return playback(rec.FinishRecording(), cfg.backend, cfg.output, stdout)
}

// playback replays r on the named backend and writes the result to output,
// or to stdout when output is "-".
func playback(r *recording.Recording, name, output string, stdout io.Writer) error {
	b, err := recording.NewBackend(name)
	if err != nil {
		return fmt.Errorf("-backend: %w", err)
	}
	if c, ok := b.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	if err := r.Playback(b); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	if output == "-" {
		wb, ok := b.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("backend %q cannot write to a stream", name)
		}
		_, err := wb.WriteTo(stdout)
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot save files", name)
	}
	if err := fb.SaveToFile(output); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	size := image.Pt(r.Width(), r.Height())
	if ib, ok := b.(recording.ImageBackend); ok && ib.Image() != nil {
		size = ib.Image().Bounds().Size()
	}
	log.Printf("image saved to %s (%dx%d)", output, size.X, size.Y)
	return nil
}

// loadText returns the markup to render, decoded to UTF-8.
func loadText(cfg *config, stdin io.Reader) (string, error) {
	if cfg.in == "" {
		return strings.ReplaceAll(cfg.text, `\n`, "\n"), nil
	}
	var (
		data []byte
		err  error
	)
	if cfg.in == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(cfg.in)
	}
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return decode(data, cfg.charset)
}

// decode converts data from charset to UTF-8. An empty charset passes the
// bytes through untouched, so invalid UTF-8 reaches the renderer as is.
func decode(data []byte, charset string) (string, error) {
	if charset == "" {
		return string(data), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("charset %q: %w", charset, err)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", charset, err)
	}
	return string(out), nil
}

func loadFamily(cfg *config) (*text.Family, error) {
	opts := []text.SourceOption{text.WithParser(cfg.parser)}
	if cfg.regular == "" {
		return text.GoFamily(opts...)
	}
	return text.LoadFamily(cfg.regular, cfg.italic, cfg.bold, cfg.boldItalic, opts...)
}

// canvasSize returns the requested size, filling in unset dimensions from
// the measured text plus padding and the wave amplitude.
func canvasSize(cfg *config, fonts emotext.FontSet, s string, opts emotext.Options) (int, int) {
	w, h := cfg.width, cfg.height
	if w > 0 && h > 0 {
		return w, h
	}
	ext := emotext.Measure(fonts, s, opts)
	pad := 2 * float64(cfg.padding)
	if w <= 0 {
		w = int(math.Ceil(ext.Width + pad + 2*opts.Wave.AmplitudeX))
	}
	if h <= 0 {
		h = int(math.Ceil(ext.Height + pad + 2*opts.Wave.AmplitudeY))
	}
	return max(w, 1), max(h, 1)
}

// revealAt returns how many codepoints are visible at time t when the text
// is typed out over the first three quarters of the animation.
func revealAt(t float64, frames int, fps float64, total int) int {
	if fps <= 0 {
		fps = 25
	}
	span := 0.75 * float64(frames) / fps
	if span <= 0 || t >= span {
		return total
	}
	return max(1, int(float64(total)*t/span))
}
