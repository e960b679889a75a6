package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruitslice/internal/core"
)

// foregrounds maps core.Color to terminal colors.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorGray:         lipgloss.Color("245"),
}

// Renderer converts Screen buffers to styled strings. Every cell shares
// one background color, the field's sky.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
	base   lipgloss.Style
}

// NewRenderer builds the style table for a background such as "#87CEEB".
// An empty background leaves the terminal's own.
func NewRenderer(background string) *Renderer {
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}

	styles := make(map[core.Color]lipgloss.Style, len(foregrounds)+1)
	styles[core.ColorDefault] = base
	for c, fg := range foregrounds {
		styles[c] = base.Foreground(fg)
	}
	return &Renderer{styles: styles, base: base}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[startColor]
			if !ok {
				style = r.base
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with no background color.
func RenderScreen(s *core.Screen) string {
	return NewRenderer("").Render(s)
}
