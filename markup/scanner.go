package markup

import "unicode/utf8"

// Replacement is substituted for byte sequences that are not valid UTF-8.
const Replacement = '?'

// Marker characters.
const (
	markItalic    = '*'
	markWave      = '~'
	markUnderline = '_'
)

// Decode decodes the codepoint starting at byte offset off of s.
// It returns the codepoint and the number of bytes it occupies.
//
// An invalid or truncated sequence yields Replacement with size 1, so callers
// advancing by size always make progress. At or past the end of s Decode
// returns (0, 0).
func Decode(s string, off int) (r rune, size int) {
	if off < 0 || off >= len(s) {
		return 0, 0
	}
	r, size = utf8.DecodeRuneInString(s[off:])
	if r == utf8.RuneError && size <= 1 {
		return Replacement, 1
	}
	return r, size
}

// Scanner produces markup events from a UTF-8 string.
// The cursor only moves forward. The zero value scans the empty string.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	src   string
	off   int
	index int
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{src: s}
}

// Reset repositions the scanner at the start of s.
func (sc *Scanner) Reset(s string) {
	sc.src = s
	sc.off = 0
	sc.index = 0
}

// Offset returns the byte offset of the next event.
func (sc *Scanner) Offset() int {
	return sc.off
}

// Index returns the phase index of the next event, i.e. the number of
// codepoints consumed so far.
func (sc *Scanner) Index() int {
	return sc.index
}

// Done reports whether the whole input has been consumed.
func (sc *Scanner) Done() bool {
	return sc.off >= len(sc.src)
}

// Next returns the next event and true, or a zero Event and false once the
// input is exhausted.
func (sc *Scanner) Next() (Event, bool) {
	if sc.off >= len(sc.src) {
		return Event{}, false
	}

	r, size := Decode(sc.src, sc.off)
	ev := Event{
		Kind:   EventRune,
		Rune:   r,
		Offset: sc.off,
		Size:   size,
		Index:  sc.index,
	}
	runes := 1

	switch r {
	case '\n':
		ev.Kind = EventLineBreak
	case markItalic:
		ev.Kind, ev.Flag = EventToggle, FlagItalic
		if sc.doubled(r, size) {
			ev.Flag = FlagBold
			ev.Size, runes = size+1, 2
		}
	case markWave:
		ev.Kind, ev.Flag = EventToggle, FlagWave
		if sc.doubled(r, size) {
			ev.Flag = FlagStrike
			ev.Size, runes = size+1, 2
		}
	case markUnderline:
		if sc.doubled(r, size) {
			ev.Kind, ev.Flag = EventToggle, FlagUnderline
			ev.Size, runes = size+1, 2
		}
	}

	sc.off += ev.Size
	sc.index += runes
	return ev, true
}

// doubled reports whether the codepoint following the current one (of the
// given size) is mark again. Looking past the end of input is no match.
func (sc *Scanner) doubled(mark rune, size int) bool {
	next, n := Decode(sc.src, sc.off+size)
	return n > 0 && next == mark
}
