package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem in the configuration at once.
func (c ShadowlandsConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Physics.Gravity <= 0 {
		add("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.TerminalVelocity <= 0 {
		add("physics.terminal_velocity must be positive, got %v", c.Physics.TerminalVelocity)
	}
	if c.Physics.MaxDT <= 0 {
		add("physics.max_dt must be positive, got %v", c.Physics.MaxDT)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		add("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.JumpForce >= 0 {
		add("player.jump_force must be negative (up), got %v", c.Player.JumpForce)
	}
	if c.Player.Lives < 1 {
		add("player.lives must be at least 1, got %d", c.Player.Lives)
	}
	if 2*c.Player.HazardInset >= c.Entities.SpikeSize {
		add("player.hazard_inset %v swallows the whole spike", c.Player.HazardInset)
	}
	if c.Entities.CrumbleDuration <= 0 {
		add("entities.crumble_duration must be positive, got %v", c.Entities.CrumbleDuration)
	}
	if c.Generator.SegmentsDivisor < 1 || c.Generator.DifficultyDivisor < 1 {
		add("generator divisors must be at least 1")
	}
	if c.Generator.EasyGapMax < c.Generator.EasyGapMin {
		add("generator easy gap range is empty: %d..%d", c.Generator.EasyGapMin, c.Generator.EasyGapMax)
	}
	if c.Generator.GapBaseMax < c.Generator.GapMin {
		add("generator gap range is empty: %d..%d", c.Generator.GapMin, c.Generator.GapBaseMax)
	}

	if len(c.Segments) == 0 {
		add("segments: catalog is empty")
	}
	hasEasy := false
	for i, seg := range c.Segments {
		if seg.Difficulty <= 1 {
			hasEasy = true
		}
		if seg.Width <= 0 {
			add("segments[%d] %q: width must be positive", i, seg.Name)
		}
		for j, item := range seg.Layout {
			switch item.Type {
			case ItemPlatform, ItemSkeleton:
				if item.W <= 0 || item.H <= 0 {
					add("segments[%d].layout[%d]: %s needs a positive size", i, j, item.Type)
				}
			case ItemSpike, ItemStar, ItemKey:
			default:
				add("segments[%d].layout[%d]: unknown type %q", i, j, item.Type)
			}
		}
	}
	if len(c.Segments) > 0 && !hasEasy {
		add("segments: level 1 needs at least one difficulty 1 segment")
	}

	return errors.Join(errs...)
}

// Validate reports every problem in the configuration at once.
func (c CastleConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		add("arena size must be positive")
	}
	if len(c.Floors) == 0 {
		add("floors: at least one floor is required")
	}
	for i, f := range c.Floors {
		if f.ID != i+1 {
			add("floors[%d]: id must be %d, got %d", i, i+1, f.ID)
		}
		if f.Height <= 0 {
			add("floors[%d]: height must be positive", i)
		}
		if i > 0 && f.Y >= c.Floors[i-1].Y {
			add("floors[%d]: must sit above floor %d", i, i)
		}
	}
	for i, s := range c.Stairs {
		if s.From < 1 || s.From > len(c.Floors) || s.To != s.From+1 || s.To > len(c.Floors) {
			add("stairs[%d]: must connect floor n to n+1, got %d -> %d", i, s.From, s.To)
		}
	}
	if c.Troll.Width <= 0 || c.Troll.Height <= 0 {
		add("troll size must be positive")
	}
	if c.Troll.ClimbDuration <= 0 {
		add("troll.climb_duration must be positive")
	}
	if c.Gem.Health <= 0 {
		add("gem.health must be positive, got %d", c.Gem.Health)
	}

	if len(c.Traps) == 0 {
		add("traps: catalog is empty")
	}
	for i, t := range c.Traps {
		if t.Cost < 0 {
			add("traps[%d] %s: cost must not be negative", i, t.Name)
		}
		if t.Uses < 0 {
			add("traps[%d] %s: uses must not be negative (0 = unlimited)", i, t.Name)
		}
		if t.Width <= 0 || t.Height <= 0 {
			add("traps[%d] %s: size must be positive", i, t.Name)
		}
		switch t.Effect {
		case EffectDamage, EffectDamageStun:
		case EffectSlow:
			if t.SlowFactor <= 0 || t.SlowFactor > 1 {
				add("traps[%d] %s: slow_factor must be in (0, 1]", i, t.Name)
			}
		case EffectAreaStun:
			if t.Radius <= 0 || t.TriggerRadius <= 0 {
				add("traps[%d] %s: area traps need radius and trigger_radius", i, t.Name)
			}
		default:
			add("traps[%d] %s: unknown effect %q", i, t.Name, t.Effect)
		}
	}

	if len(c.Levels) == 0 {
		add("levels: at least one level is required")
	}
	for i, l := range c.Levels {
		if len(l.Waves) == 0 {
			add("levels[%d] %q: has no waves", i, l.Name)
		}
		for j, w := range l.Waves {
			if w.TrollCount < 1 {
				add("levels[%d].waves[%d]: troll_count must be at least 1", i, j)
			}
			if w.TrollHealth < 1 || w.TrollSpeed <= 0 {
				add("levels[%d].waves[%d]: trolls need positive health and speed", i, j)
			}
			if w.SpawnDelay < 0 {
				add("levels[%d].waves[%d]: spawn_delay must not be negative", i, j)
			}
		}
	}

	return errors.Join(errs...)
}
