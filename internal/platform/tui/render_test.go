package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fruitslice/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "Score: 0")
	s.SetColored(3, 1, '█', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 0") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestRendererUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(250))

	out := NewRenderer("#87CEEB").Render(s)
	if !strings.Contains(out, "x") {
		t.Errorf("cell with unknown color not rendered: %q", out)
	}
}
