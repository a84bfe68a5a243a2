package tui

import (
	"strings"
	"testing"

	"github.com/ropeswing/ropeswing/internal/core"
)

func TestRenderScreenLayout(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.Set(3, 1, '@')

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("First line missing text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "@") {
		t.Errorf("Second line missing player rune: %q", lines[1])
	}
}

func TestRenderScreenColorRuns(t *testing.T) {
	// Mixed-color rows must still emit every rune exactly once, in order.
	s := core.NewScreen(6, 1)
	s.SetColored(0, 0, 'r', core.ColorBrightRed)
	s.SetColored(1, 0, 'r', core.ColorBrightRed)
	s.SetColored(2, 0, 'g', core.ColorGreen)
	s.Set(3, 0, 'd')

	out := RenderScreen(s)

	stripped := make([]rune, 0, len(out))
	for _, r := range out {
		if r == 'r' || r == 'g' || r == 'd' {
			stripped = append(stripped, r)
		}
	}
	if string(stripped) != "rrgd" {
		t.Errorf("Rune sequence %q, want \"rrgd\"", string(stripped))
	}
}
