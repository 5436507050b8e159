package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoRegularFont is returned when a Family is built without a regular font.
	ErrNoRegularFont = errors.New("text: family has no regular font")

	// ErrSourceClosed is returned when a closed FontSource is used for rasterisation.
	ErrSourceClosed = errors.New("text: font source is closed")
)
