package text

import "testing"

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: -8, MaxX: 6, MaxY: 2}
	if r.Width() != 5 || r.Height() != 10 {
		t.Errorf("Width/Height = %v/%v, want 5/10", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !(Rect{MinX: 3, MaxX: 3, MaxY: 1}).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestMetricsLineHeight(t *testing.T) {
	m := Metrics{Ascent: 12, Descent: 3, LineGap: 1}
	if m.LineHeight() != 16 {
		t.Errorf("LineHeight() = %v, want 16", m.LineHeight())
	}
}
