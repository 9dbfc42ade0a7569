package castle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// World holds everything that moves in a castle run plus its economy.
// It knows nothing about waves or input; Game drives it.
type World struct {
	cfg    config.CastleConfig
	Castle *Castle
	Trolls []*Troll
	Traps  []*Trap
	Gem    *Gem

	Score    int
	Coins    int
	Defeated int

	events []core.Event
}

// NewWorld creates an empty castle with the gem centred on the top floor.
func NewWorld(cfg config.CastleConfig) *World {
	c := NewCastle(cfg)
	top := c.Floor(c.TopFloor())
	return &World{
		cfg:    cfg,
		Castle: c,
		Gem:    NewGem(cfg.Arena.Width/2-cfg.Gem.Width/2, top.Y+cfg.Gem.OffsetY, cfg.Gem),
	}
}

// Spawn adds a troll at the spawn point on the ground floor.
func (w *World) Spawn(speed float64, health, variant int) *Troll {
	t := NewTroll(w.Castle, w.cfg.Troll, w.cfg.Troll.SpawnX, 1, speed, health)
	t.Variant = variant
	w.Trolls = append(w.Trolls, t)
	return t
}

// Update advances every troll and trap by ms milliseconds, resolves
// collisions, awards kills and drops whatever went inactive. It returns the
// events since the last call in the order they happened.
func (w *World) Update(ms float64) []core.Event {
	for _, t := range w.Trolls {
		t.Update(ms)
	}
	for _, t := range w.Traps {
		t.Update(ms)
	}

	w.checkCollisions()
	w.awardKills()

	w.Trolls = filter(w.Trolls, func(t *Troll) bool { return t.Active })
	w.Traps = filter(w.Traps, func(t *Trap) bool { return t.Active })

	return w.drain()
}

// drain returns the pending events, including those from PlaceTrap, and
// clears the queue.
func (w *World) drain() []core.Event {
	var out []core.Event
	if len(w.events) > 0 {
		out = append(out, w.events...)
	}
	w.events = w.events[:0]
	return out
}

func (w *World) checkCollisions() {
	top := w.Castle.TopFloor()

	for _, troll := range w.Trolls {
		if !troll.Active || troll.Dying() {
			continue
		}

		for _, trap := range w.Traps {
			// A troll killed by an earlier trap spends no further trap uses
			// and no longer reaches the gem this frame.
			if troll.Dying() {
				break
			}
			if !trap.Active || trap.Floor != troll.Floor {
				continue
			}
			if !trap.InTriggerRange(troll) || !trap.CanActivate() {
				continue
			}
			if trap.Area() {
				hit := trap.ActivateArea(w.Trolls)
				w.emit(core.EventTrapTriggered, fmt.Sprintf("%s hit %d", trap.Type.Name, len(hit)))
			} else if trap.Activate(troll) {
				w.emit(core.EventTrapTriggered, trap.Type.Name)
			}
		}

		if !troll.Dying() && troll.Floor == top && troll.Intersects(w.Gem.Rect) {
			w.Gem.TakeDamage(w.cfg.Gem.TrollDamage)
			troll.Active = false
			w.emit(core.EventGemDamaged, fmt.Sprintf("gem %d", w.Gem.Health))
		}
	}
}

// awardKills pays out once per dying troll.
func (w *World) awardKills() {
	for _, t := range w.Trolls {
		if !t.Dying() || t.PointsAwarded {
			continue
		}
		t.PointsAwarded = true
		w.Score += w.cfg.Economy.KillScore
		w.Coins += w.cfg.Economy.KillCoins
		w.Defeated++
		w.emit(core.EventTrollDefeated, fmt.Sprintf("score %d", w.Score))
	}
}

// GameOver reports whether the gem has been destroyed.
func (w *World) GameOver() bool {
	return w.Gem.Destroyed()
}

// TrapCost returns the cost of catalog entry index, clamped.
func (w *World) TrapCost(index int) int {
	return w.cfg.Traps[w.clampTrap(index)].Cost
}

// PlaceTrap buys trap index for a cursor at x on floor. The index and floor
// are clamped. It returns false without side effects when the player cannot
// afford the trap or another trap on that floor is too close.
func (w *World) PlaceTrap(index int, x float64, floor int) bool {
	if len(w.cfg.Traps) == 0 {
		return false
	}
	index = w.clampTrap(index)
	floor = w.Castle.ClampFloor(floor)
	typ := w.cfg.Traps[index]
	p := w.cfg.Placement

	if w.Coins < typ.Cost {
		return false
	}
	tx := x - p.TrapOffsetX
	for _, t := range w.Traps {
		if t.Floor == floor && math.Abs(t.X-tx) < p.MinSpacing {
			return false
		}
	}

	baseY := w.Castle.FloorBaseY(floor) - p.CursorOffset - p.TrapOffsetY
	w.Traps = append(w.Traps, NewTrap(index, typ, tx, baseY+typ.OffsetY, floor))
	w.Coins -= typ.Cost
	w.emit(core.EventTrapPlaced, fmt.Sprintf("%s floor %d", typ.Name, floor))
	return true
}

func (w *World) clampTrap(index int) int {
	return core.Clamp(index, 0, len(w.cfg.Traps)-1)
}

func (w *World) emit(kind core.EventKind, detail string) {
	w.events = append(w.events, core.Event{Kind: kind, Detail: detail})
}

// filter keeps the elements for which keep returns true, in order, reusing
// the backing array.
func filter[T any](s []*T, keep func(*T) bool) []*T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}
