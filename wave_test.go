package emotext

import (
	"math"
	"testing"
)

func TestWaveOffset(t *testing.T) {
	w := DefaultWave()
	tests := []struct {
		time float64
		i    int
	}{
		{0, 0},
		{0, 3},
		{1.5, 0},
		{2.25, 7},
	}
	for _, tt := range tests {
		got := w.Offset(tt.time, tt.i)
		wantX := math.Sin(tt.time*4-float64(tt.i)*0.5) * 1
		wantY := math.Sin(tt.time*4-float64(tt.i)*0.5) * 2
		if !near(got.X, wantX) || !near(got.Y, wantY) {
			t.Errorf("Offset(%v, %d) = %+v, want (%v, %v)", tt.time, tt.i, got, wantX, wantY)
		}
	}
}

func TestWaveOffsetAtOrigin(t *testing.T) {
	if got := DefaultWave().Offset(0, 0); got != (Point{}) {
		t.Errorf("Offset(0, 0) = %+v, want zero", got)
	}
}

func TestWaveBounded(t *testing.T) {
	w := DefaultWave()
	for i := range 50 {
		p := w.Offset(float64(i)*0.37, i)
		if math.Abs(p.X) > w.AmplitudeX || math.Abs(p.Y) > w.AmplitudeY {
			t.Fatalf("Offset exceeds amplitude at i=%d: %+v", i, p)
		}
	}
}

func TestZeroWaveIsStill(t *testing.T) {
	var w Wave
	if got := w.Offset(3.3, 9); got != (Point{}) {
		t.Errorf("zero Wave Offset = %+v, want zero", got)
	}
}

func TestWaveNeighboursOutOfPhase(t *testing.T) {
	w := DefaultWave()
	a := w.Offset(1, 1)
	b := w.Offset(1, 2)
	if near(a.Y, b.Y) {
		t.Errorf("adjacent codepoints share dy %v", a.Y)
	}
}
