package castle

import (
	"math"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// TrollState is the troll movement state.
type TrollState int

const (
	TrollWalking TrollState = iota
	TrollStunned
	TrollClimbing
	TrollDying
)

func (s TrollState) String() string {
	switch s {
	case TrollWalking:
		return "walking"
	case TrollStunned:
		return "stunned"
	case TrollClimbing:
		return "climbing"
	case TrollDying:
		return "dying"
	default:
		return "unknown"
	}
}

// Troll walks each floor toward its stair, climbs, and on the top floor
// walks into the gem. All timers are milliseconds.
type Troll struct {
	core.Rect
	Floor     int
	Health    int
	MaxHealth int
	Speed     float64
	BaseSpeed float64
	Direction int
	State     TrollState
	Variant   int

	StunTimer  float64
	SlowTimer  float64
	HurtTimer  float64
	DeathTimer float64
	ClimbTimer float64

	Active        bool
	PointsAwarded bool
	Frame         int

	frameTimer float64
	climbTo    int
	spec       config.TrollSpec
	castle     *Castle
}

// NewTroll places a troll standing on floor at x.
func NewTroll(c *Castle, spec config.TrollSpec, x float64, floor int, speed float64, health int) *Troll {
	floor = c.ClampFloor(floor)
	return &Troll{
		Rect:      core.NewRect(x, c.FloorBaseY(floor)-spec.FloorOffset, spec.Width, spec.Height),
		Floor:     floor,
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
		BaseSpeed: speed,
		Direction: DirectionForFloor(floor),
		State:     TrollWalking,
		Active:    true,
		spec:      spec,
		castle:    c,
	}
}

// Update advances the troll by ms milliseconds.
func (t *Troll) Update(ms float64) {
	if !t.Active {
		return
	}

	switch t.State {
	case TrollDying:
		t.DeathTimer += ms
		if t.DeathTimer > t.spec.DeathDuration {
			t.Active = false
		}
		return
	case TrollClimbing:
		t.ClimbTimer += ms
		if t.ClimbTimer >= t.spec.ClimbDuration {
			t.arrive()
		}
		return
	}

	if t.HurtTimer > 0 {
		t.HurtTimer -= ms
	}

	// Stun halts movement entirely
	if t.StunTimer > 0 {
		t.StunTimer -= ms
		t.State = TrollStunned
		if t.StunTimer <= 0 {
			t.State = TrollWalking
		}
		return
	}

	if t.SlowTimer > 0 {
		t.SlowTimer -= ms
		if t.SlowTimer <= 0 {
			t.Speed = t.BaseSpeed
		}
	}

	t.State = TrollWalking
	t.X += t.Speed * float64(t.Direction) * ms / 1000
	t.checkStairs()

	t.frameTimer += ms
	if t.spec.FrameCount > 0 && t.frameTimer > t.spec.FrameDuration {
		t.Frame = (t.Frame + 1) % t.spec.FrameCount
		t.frameTimer = 0
	}
}

// checkStairs starts a climb once the troll's centre is close to the stair
// leaving its floor. The top floor has no stair.
func (t *Troll) checkStairs() {
	stair, ok := t.castle.StairFrom(t.Floor)
	if !ok {
		return
	}
	cx, _ := t.Center()
	if math.Abs(cx-stair.X) < t.spec.StairReach {
		t.State = TrollClimbing
		t.ClimbTimer = 0
		t.climbTo = stair.To
		t.X = stair.X - t.W/2
	}
}

func (t *Troll) arrive() {
	t.Floor = t.castle.ClampFloor(t.climbTo)
	t.Y = t.castle.FloorBaseY(t.Floor) - t.spec.FloorOffset
	t.State = TrollWalking
	t.ClimbTimer = 0
	t.Direction = DirectionForFloor(t.Floor)
}

// TakeDamage subtracts amount from health. Health may go negative; at zero
// or below the troll starts dying and never recovers.
func (t *Troll) TakeDamage(amount int) {
	t.Health -= amount
	t.HurtTimer = t.spec.HurtDuration
	if t.Health <= 0 && t.State != TrollDying {
		t.State = TrollDying
		t.DeathTimer = 0
	}
}

// Stun freezes the troll for ms milliseconds. Dying trolls ignore it.
func (t *Troll) Stun(ms float64) {
	if t.State == TrollDying {
		return
	}
	t.StunTimer = ms
	t.State = TrollStunned
}

// Slow scales the troll's speed by factor for ms milliseconds.
func (t *Troll) Slow(factor, ms float64) {
	t.Speed = t.BaseSpeed * factor
	t.SlowTimer = ms
}

// Dying reports whether the troll has been killed.
func (t *Troll) Dying() bool {
	return t.State == TrollDying
}

// Hurt reports whether the damage flash is showing.
func (t *Troll) Hurt() bool {
	return t.HurtTimer > 0
}

// ClimbProgress is how far through the current climb the troll is, 0..1.
func (t *Troll) ClimbProgress() float64 {
	if t.State != TrollClimbing || t.spec.ClimbDuration <= 0 {
		return 0
	}
	return core.ClampF(t.ClimbTimer/t.spec.ClimbDuration, 0, 1)
}

// HealthFraction is health over max health, clamped to [0, 1] for display.
func (t *Troll) HealthFraction() float64 {
	if t.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(t.Health)/float64(t.MaxHealth), 0, 1)
}
