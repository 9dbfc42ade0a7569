package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/castle-arcade/internal/core"
)

// paletteStyles holds one lipgloss style per palette entry, indexed by color.
var paletteStyles = buildPaletteStyles()

func buildPaletteStyles() []lipgloss.Style {
	palette := core.Palette()
	styles := make([]lipgloss.Style, len(palette))
	for _, c := range palette {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(paletteStyles) {
		return paletteStyles[c]
	}
	return paletteStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string. Each row is
// split into runs of one color so a run costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flushRun(&sb, &run, runColor)
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flushRun(&sb, &run, runColor)
	}
	return sb.String()
}

func flushRun(sb, run *strings.Builder, c core.Color) {
	if run.Len() == 0 {
		return
	}
	if c == core.ColorDefault {
		sb.WriteString(run.String())
	} else {
		sb.WriteString(styleFor(c).Render(run.String()))
	}
	run.Reset()
}
