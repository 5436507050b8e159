package recording

import (
	"fmt"

	"github.com/gogpu/emotext"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawGlyph CommandType = iota // Draw one glyph
	CmdDrawLine                     // Draw a decoration line
)

var commandTypeNames = [...]string{
	CmdDrawGlyph: "DrawGlyph",
	CmdDrawLine:  "DrawLine",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FaceRef is a reference to a face in the resource pool.
type FaceRef uint32

// ColorRef is a reference to a color in the resource pool.
type ColorRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid face.
func (r FaceRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid color.
func (r ColorRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// DrawGlyphCommand draws a single glyph. Pos is the top-left corner of the
// glyph's line box, wave offset included.
type DrawGlyphCommand struct {
	Face  FaceRef
	Rune  rune
	Pos   emotext.Point
	Size  float64
	Color ColorRef
}

// Type implements Command.
func (DrawGlyphCommand) Type() CommandType { return CmdDrawGlyph }

func (c DrawGlyphCommand) String() string {
	return fmt.Sprintf("DrawGlyph(%q, face=%d, pos=(%.2f, %.2f), size=%g, color=%d)",
		c.Rune, c.Face, c.Pos.X, c.Pos.Y, c.Size, c.Color)
}

// DrawLineCommand draws a strike or underline segment.
type DrawLineCommand struct {
	From, To emotext.Point
	Color    ColorRef
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

func (c DrawLineCommand) String() string {
	return fmt.Sprintf("DrawLine((%.2f, %.2f)-(%.2f, %.2f), color=%d)",
		c.From.X, c.From.Y, c.To.X, c.To.Y, c.Color)
}
