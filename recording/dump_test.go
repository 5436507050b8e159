package recording

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDump(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	r := record(t, "hi ~~x~~")
	var buf bytes.Buffer
	if err := Dump(&buf, r); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"recording 320x80: 3 glyphs, 1 lines",
		"face 0: Go",
		"color 0: #c80000ff",
		"0000 DrawGlyph 'h' at (4.00, 4.00) size 16 face 0 color 0",
		"0003 DrawLine",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1+1+1+4 {
		t.Errorf("dump has %d lines, want 7:\n%s", got, out)
	}
}
