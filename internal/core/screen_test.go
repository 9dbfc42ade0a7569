package core

import (
	"strings"
	"testing"
)

// drawn renders the screen as rows joined with '|' for compact expectations.
func drawn(s *Screen) string {
	return strings.ReplaceAll(s.String(), "\n", "|")
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "platform fill",
			draw: func(s *Screen) { s.FillRect(1, 1, 3, 2, '=', ColorGray) },
			want: "      | ===  | ===  |      ",
		},
		{
			name: "fill clipped at the left edge",
			draw: func(s *Screen) { s.FillRect(-2, 0, 4, 1, '#', ColorBone) },
			want: "##    |      |      |      ",
		},
		{
			name: "fill clipped at the bottom right",
			draw: func(s *Screen) { s.FillRect(4, 2, 5, 5, '~', ColorPurple) },
			want: "      |      |    ~~|    ~~",
		},
		{
			name: "hud text clipped",
			draw: func(s *Screen) { s.DrawTextColor(3, 0, "Gem 80", ColorBrightCyan) },
			want: "   Gem|      |      |      ",
		},
		{
			name: "centered banner",
			draw: func(s *Screen) { s.DrawTextCenteredColor(1, "GO", ColorRed) },
			want: "      |  GO  |      |      ",
		},
		{
			name: "spikes and stair",
			draw: func(s *Screen) {
				s.DrawHLine(0, 3, 3, '^', ColorRed)
				s.DrawVLine(5, 0, 3, '#', ColorGray)
			},
			want: "     #|     #|     #|^^^   ",
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(0, 0, 4, 3, ColorDefault) },
			want: "┌──┐  |│  │  |└──┘  |      ",
		},
		{
			name: "writes off screen are ignored",
			draw: func(s *Screen) {
				s.SetColor(-1, 0, 'X', ColorRed)
				s.SetColor(6, 0, 'X', ColorRed)
				s.DrawText(0, 4, "below")
			},
			want: "      |      |      |      ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 4)
			tt.draw(s)
			if got := drawn(s); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(8, 2)
	s.FillRect(0, 0, 2, 1, 'T', ColorOrange)
	s.DrawTextColor(3, 1, "Gem", ColorBrightCyan)

	checks := []struct {
		x, y int
		want Cell
	}{
		{0, 0, Cell{Rune: 'T', Color: ColorOrange}},
		{1, 0, Cell{Rune: 'T', Color: ColorOrange}},
		{2, 0, Cell{Rune: ' '}},
		{3, 1, Cell{Rune: 'G', Color: ColorBrightCyan}},
		{5, 1, Cell{Rune: 'm', Color: ColorBrightCyan}},
		{-1, 0, Cell{Rune: ' '}},
		{0, 9, Cell{Rune: ' '}},
	}
	for _, c := range checks {
		if got := s.GetCell(c.x, c.y); got != c.want {
			t.Errorf("GetCell(%d, %d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}

	s.Set(0, 0, 'x')
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("Set should reset the color")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(0, 0, 4, 2, '#', ColorRed)
	s.Clear()

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColor(0, 0, "Level 3", ColorBrightYellow)
	s.DrawText(0, 5, "lost")

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Level" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorBrightYellow {
		t.Error("colors should survive a resize")
	}

	s.Resize(8, 4)
	if got := s.Row(0); got != "Level   " {
		t.Errorf("Row(0) after growing = %q", got)
	}
	if got := s.Row(3); got != "        " {
		t.Errorf("new rows should be blank, got %q", got)
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("Row(-1) = %q", got)
	}
}
