package markup

import "strings"

// Flag identifies one of the five style toggles.
// Flags may be OR-ed together to describe a set of active styles.
type Flag uint8

const (
	FlagBold      Flag = 1 << iota // **
	FlagItalic                     // *
	FlagWave                       // ~
	FlagStrike                     // ~~
	FlagUnderline                  // __
)

var flagNames = [...]struct {
	f    Flag
	name string
}{
	{FlagBold, "bold"},
	{FlagItalic, "italic"},
	{FlagWave, "wave"},
	{FlagStrike, "strike"},
	{FlagUnderline, "underline"},
}

// String returns the flag names joined by '+', or "none".
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "+")
}

// Variant selects one of the four font resources.
type Variant uint8

const (
	Regular Variant = iota
	Italic
	Bold
	BoldItalic

	// NumVariants is the number of font variants.
	NumVariants = 4
)

// VariantOf maps the (bold, italic) pair to a font variant.
func VariantOf(bold, italic bool) Variant {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case Regular:
		return "regular"
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case BoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// Style holds the five independent style toggles.
// The zero value has every style off.
type Style struct {
	Bold      bool
	Italic    bool
	Wave      bool
	Strike    bool
	Underline bool
}

// Toggle flips every flag set in f.
func (s *Style) Toggle(f Flag) {
	if f&FlagBold != 0 {
		s.Bold = !s.Bold
	}
	if f&FlagItalic != 0 {
		s.Italic = !s.Italic
	}
	if f&FlagWave != 0 {
		s.Wave = !s.Wave
	}
	if f&FlagStrike != 0 {
		s.Strike = !s.Strike
	}
	if f&FlagUnderline != 0 {
		s.Underline = !s.Underline
	}
}

// Apply updates the style from a toggle event and reports whether the event
// was consumed. Non-toggle events leave the style unchanged.
func (s *Style) Apply(ev Event) bool {
	if ev.Kind != EventToggle {
		return false
	}
	s.Toggle(ev.Flag)
	return true
}

// Variant returns the font variant for the current bold and italic flags.
func (s Style) Variant() Variant {
	return VariantOf(s.Bold, s.Italic)
}

// Flags returns the set of active styles.
func (s Style) Flags() Flag {
	var f Flag
	if s.Bold {
		f |= FlagBold
	}
	if s.Italic {
		f |= FlagItalic
	}
	if s.Wave {
		f |= FlagWave
	}
	if s.Strike {
		f |= FlagStrike
	}
	if s.Underline {
		f |= FlagUnderline
	}
	return f
}

// Off reports whether every style is off.
func (s Style) Off() bool {
	return s == Style{}
}
