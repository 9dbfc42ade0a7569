package castle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// Visual characters for rendering
const (
	FloorChar  = '═'
	StairChar  = '#'
	TrollChar  = 'T'
	DyingChar  = 'x'
	StunChar   = '*'
	GemChar    = '◆'
	CursorChar = 'V'
)

var trapGlyphs = map[string]struct {
	r rune
	c core.Color
}{
	config.EffectDamage:     {'^', core.ColorRed},
	config.EffectDamageStun: {'☼', core.ColorYellow},
	config.EffectSlow:       {'~', core.ColorGreen},
	config.EffectAreaStun:   {'B', core.ColorOrange},
}

// arena maps castle coordinates to screen cells. Row 0 is the HUD and the
// last row is the trap bar.
type arena struct {
	sx, sy float64
}

func (a arena) col(x float64) int { return int(math.Floor(x / a.sx)) }
func (a arena) row(y float64) int { return int(math.Floor(y/a.sy)) + 1 }

func (a arena) span(r core.Rect) (x0, y0, w, h int) {
	x0, y0 = a.col(r.X), a.row(r.Y)
	x1 := int(math.Ceil(r.Right()/a.sx)) - 1
	y1 := int(math.Ceil(r.Bottom()/a.sy))
	return x0, y0, max(x1-x0+1, 1), max(y1-y0+1, 1)
}

// Render draws the castle, its occupants and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Width() == 0 || dst.Height() < 4 {
		return
	}

	a := arena{
		sx: g.cfg.Arena.Width / float64(dst.Width()),
		sy: g.cfg.Arena.Height / float64(dst.Height()-2),
	}
	c := g.world.Castle

	for n := 1; n <= c.Floors(); n++ {
		f := c.Floor(n)
		dst.DrawHLine(0, a.row(f.Y+f.Height), dst.Width(), FloorChar, core.ColorPurple)
		dst.DrawTextColor(1, a.row(f.Y)+1, f.Name, core.ColorGray)
	}
	for _, s := range c.Stairs() {
		top := a.row(c.FloorBaseY(s.To)) + 1
		bottom := a.row(c.FloorBaseY(s.From))
		dst.DrawVLine(a.col(s.X), top, bottom-top, StairChar, core.ColorOrange)
	}

	gx, gy, gw, gh := a.span(g.world.Gem.Rect)
	gemColor := core.ColorBrightMagenta
	if g.world.Gem.HealthFraction() < 0.35 {
		gemColor = core.ColorBrightRed
	}
	dst.FillRect(gx, gy, gw, gh, GemChar, gemColor)

	for _, t := range g.world.Traps {
		g.drawTrap(dst, a, t)
	}
	for _, t := range g.world.Trolls {
		g.drawTroll(dst, a, t)
	}

	if g.state == StatePlaying || g.state == StatePaused {
		cy := c.FloorBaseY(g.cursor.Floor) - g.cfg.Placement.CursorOffset
		dst.SetColor(a.col(g.cursor.X), a.row(cy)-1, CursorChar, core.ColorBrightWhite)
	}

	g.drawHUD(dst)
	g.drawTrapBar(dst)

	switch g.state {
	case StatePaused:
		g.drawBanner(dst, "PAUSED", "P to resume")
	case StateWaveComplete:
		title := "WAVE CLEARED"
		if g.sched.LevelPending() {
			title = "LEVEL CLEARED"
		}
		g.drawBanner(dst, title, fmt.Sprintf("+%d coins  -  Space to continue", g.lastBonus))
	case StateGameOver:
		g.drawBanner(dst, "THE GEM IS LOST", fmt.Sprintf("Score %d  -  R restart, B menu", g.world.Score))
	case StateVictory:
		g.drawBanner(dst, "CASTLE DEFENDED", fmt.Sprintf("Score %d  -  %d trolls defeated", g.world.Score, g.world.Defeated))
	}
}

func (g *Game) drawTrap(dst *core.Screen, a arena, t *Trap) {
	glyph, ok := trapGlyphs[t.Type.Effect]
	if !ok {
		glyph.r, glyph.c = '?', core.ColorWhite
	}
	color := glyph.c
	if t.Triggered {
		color = core.ColorBrightWhite
	} else if !t.CanActivate() {
		color = core.ColorGray
	}
	x0, _, w, _ := a.span(t.Rect)
	dst.DrawHLine(x0, a.row(t.Bottom()), w, glyph.r, color)
}

func (g *Game) drawTroll(dst *core.Screen, a arena, t *Troll) {
	r := t.Rect
	if t.State == TrollClimbing {
		if s, ok := g.world.Castle.StairFrom(t.Floor); ok {
			off := g.cfg.Troll.FloorOffset
			from := g.world.Castle.FloorBaseY(s.From) - off
			to := g.world.Castle.FloorBaseY(s.To) - off
			r.Y = from + (to-from)*t.ClimbProgress()
		}
	}

	ch := TrollChar
	color := core.TrollPalette[t.Variant%len(core.TrollPalette)]
	switch {
	case t.Dying():
		ch, color = DyingChar, core.ColorGray
	case t.State == TrollStunned:
		ch, color = StunChar, core.ColorBrightYellow
	case t.Hurt():
		color = core.ColorBrightRed
	}
	x0, y0, w, h := a.span(r)
	dst.FillRect(x0, y0, w, h, ch, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sched
	hud := fmt.Sprintf(" Level %d/%d  Wave %d/%d   Score %d   Coins %d   Gem %d%%",
		min(s.Level+1, s.Levels()), s.Levels(),
		min(s.Wave+1, len(s.CurrentLevel().Waves)), len(s.CurrentLevel().Waves),
		g.world.Score, g.world.Coins, int(g.world.Gem.HealthFraction()*100))
	dst.DrawTextColor(0, 0, hud, core.ColorBrightCyan)
}

func (g *Game) drawTrapBar(dst *core.Screen) {
	y := dst.Height() - 1
	x := 1
	for i, t := range g.cfg.Traps {
		label := fmt.Sprintf("[%d] %s %d", i+1, t.Name, t.Cost)
		color := core.ColorWhite
		switch {
		case i == g.cursor.Selected:
			color = core.ColorBrightYellow
		case g.world.Coins < t.Cost:
			color = core.ColorGray
		}
		dst.DrawTextColor(x, y, label, color)
		x += len(label) + 2
	}
}

func (g *Game) drawBanner(dst *core.Screen, title, hint string) {
	w := max(len(hint), len(title)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, core.ColorPurple)
	dst.DrawTextCenteredColor(y+1, title, core.ColorBrightRed)
	dst.DrawTextCenteredColor(y+3, hint, core.ColorWhite)
}
