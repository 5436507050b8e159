package markup

// EventKind classifies a scanner Event.
type EventKind uint8

const (
	// EventRune is an ordinary codepoint to be laid out.
	EventRune EventKind = iota
	// EventToggle is a marker that flips a style flag.
	EventToggle
	// EventLineBreak is a '\n'.
	EventLineBreak
)

// String returns the string representation of the kind.
func (k EventKind) String() string {
	switch k {
	case EventRune:
		return "Rune"
	case EventToggle:
		return "Toggle"
	case EventLineBreak:
		return "LineBreak"
	default:
		return "Unknown"
	}
}

// Event is one step of a Scanner.
type Event struct {
	Kind EventKind

	// Rune is the decoded codepoint. For toggles it is the marker character.
	Rune rune

	// Flag is the style flag flipped by a toggle; zero otherwise.
	Flag Flag

	// Offset is the byte offset of the event in the input.
	Offset int

	// Size is the number of bytes consumed (2 for a doubled marker).
	Size int

	// Index is the phase index: the absolute codepoint position of the
	// event in the input, counting markers, whitespace and line breaks.
	Index int
}

// Visible reports whether the event is a codepoint that produces ink.
// Whitespace runes still take up room on the line but are not drawn.
func (e Event) Visible() bool {
	return e.Kind == EventRune && !IsSpace(e.Rune)
}

// IsSpace reports whether r is laid out but never drawn.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
