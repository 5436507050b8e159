package recording

import (
	"image/color"

	"github.com/gogpu/emotext/text"
)

// ResourcePool stores the faces and colors referenced by recording commands.
// Each distinct face and each distinct color value is stored once.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	faces     []text.Face
	faceIndex map[text.Face]FaceRef

	colors     []color.Color
	colorIndex map[[4]uint32]ColorRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		faces:      make([]text.Face, 0, 4),
		faceIndex:  make(map[text.Face]FaceRef, 4),
		colors:     make([]color.Color, 0, 4),
		colorIndex: make(map[[4]uint32]ColorRef, 4),
	}
}

// AddFace adds a face to the pool and returns its reference.
// Adding the same face again returns the existing reference.
func (p *ResourcePool) AddFace(face text.Face) FaceRef {
	if ref, ok := p.faceIndex[face]; ok {
		return ref
	}
	p.faces = append(p.faces, face)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := FaceRef(uint32(len(p.faces) - 1))
	p.faceIndex[face] = ref
	return ref
}

// Face returns the face for the given reference, or nil if it is invalid.
func (p *ResourcePool) Face(ref FaceRef) text.Face {
	if int(ref) >= len(p.faces) {
		return nil
	}
	return p.faces[ref]
}

// FaceCount returns the number of faces in the pool.
func (p *ResourcePool) FaceCount() int {
	return len(p.faces)
}

// AddColor adds a color to the pool and returns its reference.
// Colors with the same premultiplied RGBA value share a reference.
// A nil color is stored as black.
func (p *ResourcePool) AddColor(c color.Color) ColorRef {
	if c == nil {
		c = color.Black
	}
	r, g, b, a := c.RGBA()
	key := [4]uint32{r, g, b, a}
	if ref, ok := p.colorIndex[key]; ok {
		return ref
	}
	p.colors = append(p.colors, c)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ColorRef(uint32(len(p.colors) - 1))
	p.colorIndex[key] = ref
	return ref
}

// Color returns the color for the given reference, or nil if it is invalid.
func (p *ResourcePool) Color(ref ColorRef) color.Color {
	if int(ref) >= len(p.colors) {
		return nil
	}
	return p.colors[ref]
}

// ColorCount returns the number of colors in the pool.
func (p *ResourcePool) ColorCount() int {
	return len(p.colors)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.faces = p.faces[:0]
	p.colors = p.colors[:0]
	clear(p.faceIndex)
	clear(p.colorIndex)
}
