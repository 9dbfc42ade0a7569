package castle

import (
	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

// Castle is the static floor and stair layout. Floors are numbered from 1
// at the bottom.
type Castle struct {
	floors []config.FloorSpec
	stairs []config.StairSpec
}

// NewCastle builds the layout from configuration.
func NewCastle(cfg config.CastleConfig) *Castle {
	return &Castle{floors: cfg.Floors, stairs: cfg.Stairs}
}

// Floors returns the number of floors.
func (c *Castle) Floors() int {
	return len(c.floors)
}

// TopFloor is the terminal floor where the gem sits.
func (c *Castle) TopFloor() int {
	return len(c.floors)
}

// ClampFloor forces n into the valid floor range.
func (c *Castle) ClampFloor(n int) int {
	return core.Clamp(n, 1, max(len(c.floors), 1))
}

// Floor returns the layout of floor n, clamped.
func (c *Castle) Floor(n int) config.FloorSpec {
	if len(c.floors) == 0 {
		return config.FloorSpec{}
	}
	return c.floors[c.ClampFloor(n)-1]
}

// FloorBaseY is the y of the walking surface of floor n.
func (c *Castle) FloorBaseY(n int) float64 {
	f := c.Floor(n)
	return f.Y + f.Height
}

// StairFrom returns the stair leaving floor n, if there is one.
func (c *Castle) StairFrom(n int) (config.StairSpec, bool) {
	for _, s := range c.stairs {
		if s.From == n {
			return s, true
		}
	}
	return config.StairSpec{}, false
}

// Stairs returns every stair.
func (c *Castle) Stairs() []config.StairSpec {
	return c.stairs
}

// DirectionForFloor returns the walking direction on a floor: odd floors
// walk right and even floors walk left.
func DirectionForFloor(floor int) int {
	if floor%2 == 0 {
		return -1
	}
	return 1
}
