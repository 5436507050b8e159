package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	// mu protects data, parsed and raster.
	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont

	// raster is the x/image font used to rasterise glyphs. It is the parsed
	// font itself for the ximage backend and parsed lazily otherwise.
	raster *opentype.Font

	name    string
	metrics *metricsCache
	config  sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure caching and parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:    dataCopy,
		parsed:  parsed,
		metrics: newMetricsCache(config.cacheLimit),
		config:  config,
	}
	s.addr = s
	if xp, ok := parsed.(*ximageParsedFont); ok {
		s.raster = xp.font
	}
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Multiple faces can be created from the same FontSource; they share its
// glyph metrics cache.
//
// Panics if s is nil (e.g. when the NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the parser backend that loaded the font.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// Parsed returns the parsed font for advanced operations.
// It returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// rasterFont returns the x/image font used for glyph rasterisation,
// parsing the source data on first use when the metrics backend is not
// x/image.
func (s *FontSource) rasterFont() (*opentype.Font, error) {
	s.copyCheck()

	s.mu.RLock()
	f, closed := s.raster, s.data == nil
	s.mu.RUnlock()
	if f != nil {
		return f, nil
	}
	if closed {
		return nil, ErrSourceClosed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raster != nil {
		return s.raster, nil
	}
	if s.data == nil {
		return nil, ErrSourceClosed
	}
	f, err := opentype.Parse(s.data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for rasterisation: %w", err)
	}
	s.raster = f
	return f, nil
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	s.data = nil
	s.parsed = nil
	s.raster = nil
	s.mu.Unlock()

	s.metrics.clear()
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
