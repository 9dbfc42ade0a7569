package castle

import (
	"math"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// TrapType is one catalog entry. Behavior is selected by its Effect.
type TrapType = config.TrapSpec

// Trap is a placed trap. Timers are milliseconds.
type Trap struct {
	core.Rect
	Floor int
	Kind  int // index into the catalog
	Type  TrapType

	Uses         int
	Cooldown     float64
	Active       bool
	Triggered    bool
	TriggerTimer float64

	deactivating    bool
	deactivateTimer float64
}

// NewTrap creates a ready trap of the given type. The rect size comes from
// the catalog entry.
func NewTrap(kind int, typ TrapType, x, y float64, floor int) *Trap {
	return &Trap{
		Rect:   core.NewRect(x, y, typ.Width, typ.Height),
		Floor:  floor,
		Kind:   kind,
		Type:   typ,
		Uses:   typ.Uses,
		Active: true,
	}
}

// Area reports whether the trap triggers by proximity and hits every troll
// in its radius.
func (t *Trap) Area() bool {
	return t.Type.Effect == config.EffectAreaStun
}

// Unlimited reports whether the trap never runs out.
func (t *Trap) Unlimited() bool {
	return t.Type.Unlimited()
}

// Update ticks the cooldown, the triggered window and any pending
// deactivation. Use counts are untouched.
func (t *Trap) Update(ms float64) {
	if t.Cooldown > 0 {
		t.Cooldown -= ms
	}
	if t.TriggerTimer > 0 {
		t.TriggerTimer -= ms
		if t.TriggerTimer <= 0 {
			t.Triggered = false
		}
	}
	if t.deactivating {
		t.deactivateTimer -= ms
		if t.deactivateTimer <= 0 {
			t.deactivating = false
			t.Active = false
		}
	}
}

// CanActivate reports whether the trap is armed.
func (t *Trap) CanActivate() bool {
	return t.Cooldown <= 0 && (t.Unlimited() || t.Uses > 0) && t.Active
}

// fire consumes one activation: starts the triggered window, resets the
// cooldown and spends a use. A trap that runs out shuts down for good, after
// DeactivateDelay if the type has one.
func (t *Trap) fire() {
	t.Triggered = true
	t.TriggerTimer = t.Type.TriggerTime
	t.Cooldown = t.Type.Cooldown

	if t.Unlimited() {
		return
	}
	t.Uses--
	if t.Uses > 0 {
		return
	}
	if t.Type.DeactivateDelay > 0 {
		t.deactivating = true
		t.deactivateTimer = t.Type.DeactivateDelay
		return
	}
	t.Active = false
}

// Activate fires the trap at one troll. It returns false and changes
// nothing when the trap is not armed. Area traps treat the troll as their
// only target.
func (t *Trap) Activate(troll *Troll) bool {
	if !t.CanActivate() {
		return false
	}
	t.fire()
	t.apply(troll)
	return true
}

func (t *Trap) apply(troll *Troll) {
	switch t.Type.Effect {
	case config.EffectDamage:
		troll.TakeDamage(t.Type.Damage)
	case config.EffectDamageStun, config.EffectAreaStun:
		troll.TakeDamage(t.Type.Damage)
		troll.Stun(t.Type.StunDuration)
	case config.EffectSlow:
		troll.Slow(t.Type.SlowFactor, t.Type.SlowDuration)
	}
}

// ActivateArea fires the trap once and applies its effect to every active,
// living troll on the same floor whose centre is within Radius of the
// trap's centre. It returns the trolls hit, or nil if the trap is not armed.
func (t *Trap) ActivateArea(trolls []*Troll) []*Troll {
	if !t.CanActivate() {
		return nil
	}
	t.fire()

	var hit []*Troll
	for _, troll := range trolls {
		if troll.Floor != t.Floor || !troll.Active || troll.Dying() {
			continue
		}
		if t.distance(troll) <= t.Type.Radius {
			t.apply(troll)
			hit = append(hit, troll)
		}
	}
	return hit
}

// InTriggerRange reports whether troll sets the trap off: proximity to the
// centre for area traps, box overlap for the rest.
func (t *Trap) InTriggerRange(troll *Troll) bool {
	if t.Area() {
		return t.distance(troll) < t.Type.TriggerRadius
	}
	return t.Intersects(troll.Rect)
}

func (t *Trap) distance(troll *Troll) float64 {
	tx, ty := t.Center()
	cx, cy := troll.Center()
	return math.Hypot(cx-tx, cy-ty)
}

// Gem is what the trolls are after.
type Gem struct {
	core.Rect
	Health    int
	MaxHealth int
}

// NewGem creates a gem at full health.
func NewGem(x, y float64, spec config.GemSpec) *Gem {
	return &Gem{
		Rect:      core.NewRect(x, y, spec.Width, spec.Height),
		Health:    spec.Health,
		MaxHealth: spec.Health,
	}
}

// TakeDamage reduces the gem's health.
func (g *Gem) TakeDamage(n int) {
	g.Health -= n
}

// Destroyed reports whether the gem is gone.
func (g *Gem) Destroyed() bool {
	return g.Health <= 0
}

// HealthFraction is health over max health, clamped to [0, 1].
func (g *Gem) HealthFraction() float64 {
	if g.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(g.Health)/float64(g.MaxHealth), 0, 1)
}
