package emotext

import "math"

// Wave parameterises the wave animation. The offset applied to the glyph at
// phase index i is
//
//	dx = sin(time*SpeedX - i*PhaseX) * AmplitudeX
//	dy = sin(time*SpeedY - i*PhaseY) * AmplitudeY
//
// The zero Wave produces no motion.
type Wave struct {
	AmplitudeX, AmplitudeY float64 // pixels
	SpeedX, SpeedY         float64 // radians per second
	PhaseX, PhaseY         float64 // radians per codepoint
}

// DefaultWave returns the standard wave: a gentle sway of 1px horizontally
// and 2px vertically.
func DefaultWave() Wave {
	return Wave{
		AmplitudeX: 1,
		AmplitudeY: 2,
		SpeedX:     4,
		SpeedY:     4,
		PhaseX:     0.5,
		PhaseY:     0.5,
	}
}

// Offset returns the displacement of the glyph at phase index i at time t.
func (w Wave) Offset(t float64, i int) Point {
	fi := float64(i)
	return Point{
		X: math.Sin(t*w.SpeedX-fi*w.PhaseX) * w.AmplitudeX,
		Y: math.Sin(t*w.SpeedY-fi*w.PhaseY) * w.AmplitudeY,
	}
}
