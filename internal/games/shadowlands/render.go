package shadowlands

import (
	"fmt"
	"math"

	"github.com/vovakirdan/castle-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	PlatformChar = '█'
	BoneChar     = '▓'
	CrumbleChar  = '░'
	SpikeChar    = '▲'
	KeyChar      = '◆'
	StarChar     = '*'
)

// viewport maps world coordinates to screen cells. Row 0 is the HUD.
type viewport struct {
	camX, sx, sy float64
}

func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((r.X - v.camX) / v.sx))
	y0 = int(math.Floor(r.Y/v.sy)) + 1
	x1 = int(math.Ceil((r.Right()-v.camX)/v.sx)) - 1
	y1 = int(math.Ceil(r.Bottom()/v.sy)) // +1 for HUD, -1 for inclusive
	return x0, y0, max(x1, x0), max(y1, y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil || dst.Width() == 0 || dst.Height() < 3 {
		return
	}

	v := viewport{
		camX: g.cameraX,
		sx:   g.cfg.Camera.ViewWidth / float64(dst.Width()),
		sy:   g.cfg.Camera.ViewHeight / float64(dst.Height()-1),
	}

	for _, e := range g.entities {
		g.drawEntity(dst, v, e)
	}
	if !g.player.Dead {
		x0, y0, x1, y1 := v.cells(g.player.Rect)
		dst.FillRect(x0, y0, x1-x0+1, y1-y0+1, PlayerChar, core.ColorBrightWhite)
	}

	hud := fmt.Sprintf(" Level %d   Score %d   Lives %d", g.levelNum, g.score, g.lives)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightCyan)

	switch g.state {
	case StatePaused:
		g.drawBanner(dst, "PAUSED", "P to resume")
	case StateGameOver:
		g.drawBanner(dst, "GAME OVER", fmt.Sprintf("Score %d  -  R restart, B menu", g.score))
	}
}

func (g *Game) drawEntity(dst *core.Screen, v viewport, e *Entity) {
	r := e.Rect
	if e.Kind == KindCrumbling {
		r = r.Translate(e.ShakeX, e.ShakeY)
	}
	x0, y0, x1, y1 := v.cells(r)
	w, h := x1-x0+1, y1-y0+1

	switch e.Kind {
	case KindPlatform:
		dst.FillRect(x0, y0, w, h, PlatformChar, core.ColorGray)
	case KindCrumbling:
		ch := BoneChar
		if e.CrumbleProgress() > 0.5 {
			ch = CrumbleChar
		}
		dst.FillRect(x0, y0, w, h, ch, core.ColorBone)
	case KindSpike:
		dst.DrawHLine(x0, y1, w, SpikeChar, core.ColorRed)
	case KindKey:
		dst.FillRect(x0, y0, w, h, KeyChar, core.ColorBrightGreen)
	case KindStar:
		dst.SetColor(x0, y0, StarChar, core.ColorBrightYellow)
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
