package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/castle-arcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "Gem", core.ColorBrightCyan)
	s.DrawText(4, 0, "100")
	s.DrawTextColor(0, 1, "troll", core.Color(250))

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Gem 100     " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "troll       " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("empty screen rendered %q", got)
	}
}
