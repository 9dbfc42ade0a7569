package shadowlands

import (
	"math/rand"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// Kind tags the role of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindSpike
	KindKey
	KindStar
	KindCrumbling // skeleton block: a platform that falls apart after being landed on
)

// String returns the kind name used in logs and snapshots.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindSpike:
		return "spike"
	case KindKey:
		return "key"
	case KindStar:
		return "star"
	case KindCrumbling:
		return "skeleton"
	default:
		return "unknown"
	}
}

// Entity is one object in the level. Only the fields relevant to its Kind
// are used; size never changes after creation.
type Entity struct {
	Kind Kind
	core.Rect

	// Player
	VX, VY    float64
	Grounded  bool
	Dead      bool
	Speed     float64
	JumpForce float64

	// Crumbling block
	Crumbling       bool
	CrumbleTimer    float64
	CrumbleDuration float64
	CrumbleShake    float64
	ShakeX, ShakeY  float64

	// Removed marks the entity for removal at the end of the frame.
	Removed bool
}

// NewPlayer creates the player at (x, y).
func NewPlayer(x, y float64, p config.ShadowlandsPlayer) *Entity {
	return &Entity{
		Kind:      KindPlayer,
		Rect:      core.NewRect(x, y, p.Width, p.Height),
		Speed:     p.Speed,
		JumpForce: p.JumpForce,
	}
}

// NewPlatform creates a solid static block.
func NewPlatform(x, y, w, h float64) *Entity {
	return &Entity{Kind: KindPlatform, Rect: core.NewRect(x, y, w, h)}
}

// NewSkeleton creates a crumbling block.
func NewSkeleton(x, y, w, h, duration, shake float64) *Entity {
	return &Entity{
		Kind:            KindCrumbling,
		Rect:            core.NewRect(x, y, w, h),
		CrumbleDuration: duration,
		CrumbleShake:    shake,
	}
}

// NewSpike creates a hazard.
func NewSpike(x, y, size float64) *Entity {
	return &Entity{Kind: KindSpike, Rect: core.NewRect(x, y, size, size)}
}

// NewKey creates the level goal.
func NewKey(x, y, size float64) *Entity {
	return &Entity{Kind: KindKey, Rect: core.NewRect(x, y, size, size)}
}

// NewStar creates a collectible.
func NewStar(x, y, size float64) *Entity {
	return &Entity{Kind: KindStar, Rect: core.NewRect(x, y, size, size)}
}

// Solid reports whether the entity blocks the player.
func (e *Entity) Solid() bool {
	return e.Kind == KindPlatform || e.Kind == KindCrumbling
}

// StartCrumble begins the crumble countdown. Only the first landing counts.
func (e *Entity) StartCrumble() {
	if e.Kind != KindCrumbling || e.Crumbling {
		return
	}
	e.Crumbling = true
}

// CrumbleProgress returns how far the block is through crumbling, 0..1.
func (e *Entity) CrumbleProgress() float64 {
	if e.Kind != KindCrumbling || e.CrumbleDuration <= 0 {
		return 0
	}
	return core.ClampF(e.CrumbleTimer/e.CrumbleDuration, 0, 1)
}

// Update advances per-entity timers. The RNG only drives the cosmetic shake.
func (e *Entity) Update(dt float64, rng *rand.Rand) {
	if e.Kind != KindCrumbling || !e.Crumbling {
		return
	}

	e.CrumbleTimer += dt
	if e.CrumbleTimer > 0 {
		amp := e.CrumbleShake * e.CrumbleProgress()
		e.ShakeX = (rng.Float64() - 0.5) * amp
		e.ShakeY = (rng.Float64() - 0.5) * amp
	}
	if e.CrumbleTimer >= e.CrumbleDuration {
		e.Removed = true
	}
}
