package shadowlands

import (
	"github.com/vovakirdan/castle-arcade/internal/config"
)

// TriggerKind identifies what a trigger scan found.
type TriggerKind int

const (
	TriggerLevelComplete TriggerKind = iota + 1
	TriggerPlayerDeath
	TriggerStarCollected
)

// Trigger is the result of a trigger scan. Entity is nil for pit deaths.
type Trigger struct {
	Kind   TriggerKind
	Entity *Entity
}

// Engine integrates the player against static level geometry.
// Movement is resolved one axis at a time: horizontal first, then vertical.
type Engine struct {
	Gravity          float64
	TerminalVelocity float64
	PitY             float64
	HazardInset      float64
}

// NewEngine builds an engine from configuration.
func NewEngine(cfg config.ShadowlandsConfig) Engine {
	return Engine{
		Gravity:          cfg.Physics.Gravity,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
		PitY:             cfg.Physics.PitY,
		HazardInset:      cfg.Player.HazardInset,
	}
}

// Update applies gravity and moves the player, pushing it out of solids.
// Dead players are left untouched.
func (e Engine) Update(dt float64, player *Entity, entities []*Entity) {
	if player.Dead {
		return
	}

	// Gravity, capped at terminal velocity
	player.VY += e.Gravity * dt
	if player.VY > e.TerminalVelocity {
		player.VY = e.TerminalVelocity
	}

	// Horizontal pass
	player.X += player.VX * dt
	if player.X < 0 {
		player.X = 0
		player.VX = 0
	}
	// Every solid is tested against the box from before resolution, so
	// overlapping walls resolve in entity order and the last one wins.
	box := player.Rect
	for _, ent := range entities {
		if ent.Removed || !ent.Solid() || !box.Intersects(ent.Rect) {
			continue
		}
		if player.VX > 0 {
			player.X = ent.X - player.W
		} else if player.VX < 0 {
			player.X = ent.X + ent.W
		}
	}

	// Vertical pass
	player.Y += player.VY * dt
	box.X, box.Y = player.X, player.Y
	player.Grounded = false
	for _, ent := range entities {
		if ent.Removed || !ent.Solid() || !box.Intersects(ent.Rect) {
			continue
		}
		if player.VY > 0 {
			player.Y = ent.Y - player.H
			player.VY = 0
			player.Grounded = true
			ent.StartCrumble()
		} else if player.VY < 0 {
			player.Y = ent.Y + ent.H
			player.VY = 0
		}
	}
}

// Jump launches the player if it is standing on something.
func (e Engine) Jump(player *Entity) {
	if !player.Grounded {
		return
	}
	player.VY = player.JumpForce
	player.Grounded = false
}

// CheckTriggers scans for the first trigger touching the player, in entity
// order. Keys use the full player box; spikes use a box shrunk by
// HazardInset on every side. Each star triggers once. Falling below PitY is
// checked last.
func (e Engine) CheckTriggers(player *Entity, entities []*Entity) *Trigger {
	full := player.Rect
	hazard := player.Inset(e.HazardInset)

	for _, ent := range entities {
		if ent.Removed {
			continue
		}
		switch ent.Kind {
		case KindKey:
			if full.Intersects(ent.Rect) {
				return &Trigger{Kind: TriggerLevelComplete, Entity: ent}
			}
		case KindSpike:
			if hazard.Intersects(ent.Rect) {
				return &Trigger{Kind: TriggerPlayerDeath, Entity: ent}
			}
		case KindStar:
			if full.Intersects(ent.Rect) {
				ent.Removed = true
				return &Trigger{Kind: TriggerStarCollected, Entity: ent}
			}
		}
	}

	if player.Y > e.PitY {
		return &Trigger{Kind: TriggerPlayerDeath}
	}
	return nil
}
