package config

import (
	_ "embed"
)

//go:embed defaults/shadowlands.yaml
var defaultShadowlandsYAML []byte

//go:embed defaults/castle.yaml
var defaultCastleYAML []byte

// DefaultShadowlandsConfig returns the default Shadowlands configuration.
func DefaultShadowlandsConfig() ShadowlandsConfig {
	return ShadowlandsConfig{
		Physics: ShadowlandsPhysics{
			Gravity:          1500,
			TerminalVelocity: 800,
			MaxDT:            0.1,
			PitY:             800,
		},
		Player: ShadowlandsPlayer{
			Width:       30,
			Height:      30,
			Speed:       300,
			JumpForce:   -700,
			StartX:      50,
			StartY:      300,
			Lives:       3,
			HazardInset: 5,
		},
		Entities: ShadowlandsEntities{
			KeySize:         40,
			SpikeSize:       30,
			StarSize:        20,
			CrumbleDuration: 2.0,
			CrumbleShake:    5,
			StarPoints:      100,
		},
		Generator: ShadowlandsGenerator{
			StartPlatform:      RectSpec{X: 0, Y: 400, W: 400, H: 50},
			BaseSegments:       2,
			SegmentsDivisor:    2,
			DifficultyCap:      3,
			DifficultyDivisor:  3,
			EasyLevelMax:       2,
			EasyGapMin:         20,
			EasyGapMax:         60,
			GapMin:             50,
			GapBaseMax:         150,
			GapPerLevel:        10,
			GoalPlatformWidth:  200,
			GoalPlatformHeight: 50,
			GoalPlatformY:      400,
			KeyOffsetX:         80,
			KeyOffsetY:         -60,
			WidthPadding:       500,
		},
		Camera: ShadowlandsCamera{
			LeftBias:   300,
			ViewWidth:  800,
			ViewHeight: 600,
		},
		Segments: []Segment{
			{
				Name:       "stairs",
				Difficulty: 1,
				Width:      1000,
				Layout: []SegmentItem{
					{Type: ItemPlatform, X: 0, Y: 400, W: 200, H: 20},
					{Type: ItemPlatform, X: 300, Y: 350, W: 200, H: 20},
					{Type: ItemPlatform, X: 600, Y: 300, W: 200, H: 20},
				},
			},
			{
				Name:       "spike run",
				Difficulty: 2,
				Width:      1000,
				Layout: []SegmentItem{
					{Type: ItemPlatform, X: 0, Y: 400, W: 300, H: 20},
					{Type: ItemSpike, X: 100, Y: 370},
					{Type: ItemPlatform, X: 400, Y: 350, W: 100, H: 20},
					{Type: ItemPlatform, X: 600, Y: 300, W: 200, H: 20},
					{Type: ItemSpike, X: 700, Y: 270},
				},
			},
			{
				Name:       "bone bridge",
				Difficulty: 3,
				Width:      1200,
				Layout: []SegmentItem{
					{Type: ItemPlatform, X: 0, Y: 400, W: 100, H: 20},
					{Type: ItemSkeleton, X: 200, Y: 400, W: 100, H: 20},
					{Type: ItemSkeleton, X: 400, Y: 400, W: 100, H: 20},
					{Type: ItemPlatform, X: 600, Y: 350, W: 200, H: 20},
					{Type: ItemSpike, X: 700, Y: 320},
					{Type: ItemStar, X: 700, Y: 200},
				},
			},
		},
	}
}

// DefaultCastleConfig returns the default Terror Castle configuration.
func DefaultCastleConfig() CastleConfig {
	return CastleConfig{
		Arena: CastleArena{Width: 900, Height: 600},
		Floors: []FloorSpec{
			{ID: 1, Name: "Ground Floor", Y: 370, Height: 110},
			{ID: 2, Name: "Second Floor", Y: 230, Height: 110},
			{ID: 3, Name: "Treasure Room", Y: 90, Height: 110},
		},
		Stairs: []StairSpec{
			{X: 780, From: 1, To: 2},
			{X: 100, From: 2, To: 3},
		},
		Troll: TrollSpec{
			Width:         50,
			Height:        55,
			ClimbDuration: 800,
			DeathDuration: 500,
			HurtDuration:  200,
			StairReach:    30,
			SpawnX:        -50,
			FloorOffset:   60,
			FrameDuration: 150,
			FrameCount:    4,
		},
		Gem: GemSpec{
			Width:       50,
			Height:      50,
			Health:      100,
			OffsetY:     40,
			TrollDamage: 15,
		},
		Traps: []TrapSpec{
			{
				Name: "Spike", FullName: "Spike Trap", Cost: 10, Damage: 25, Uses: 5,
				Cooldown: 1500, TriggerTime: 400, Width: 70, Height: 25,
				Effect: EffectDamage, Description: "Deals heavy damage",
			},
			{
				Name: "Light", FullName: "Light Machine", Cost: 25, Damage: 10, Uses: 0,
				Cooldown: 2500, StunDuration: 2000, TriggerTime: 400, Width: 70, Height: 50,
				OffsetY: -25, Effect: EffectDamageStun, Description: "Stuns and damages, unlimited uses",
			},
			{
				Name: "Slime", FullName: "Slime Puddle", Cost: 15, Damage: 0, Uses: 10,
				Cooldown: 500, SlowFactor: 0.3, SlowDuration: 3000, TriggerTime: 400,
				Width: 70, Height: 15, OffsetY: 5, Effect: EffectSlow, Description: "Slows trolls down",
			},
			{
				Name: "Bell", FullName: "Bell Trap", Cost: 30, Damage: 5, Uses: 3,
				Cooldown: 4000, StunDuration: 1500, Radius: 150, TriggerRadius: 80,
				TriggerTime: 800, DeactivateDelay: 1000, Width: 50, Height: 55,
				OffsetY: -30, Effect: EffectAreaStun, Description: "Area stun, hits every troll nearby",
			},
		},
		Placement: PlacementSpec{
			MinSpacing:   60,
			CursorSpeed:  350,
			CursorMargin: 50,
			CursorOffset: 40,
			TrapOffsetX:  35,
			TrapOffsetY:  10,
		},
		Economy: EconomySpec{
			KillScore:        100,
			KillCoins:        15,
			DefaultWaveBonus: 20,
		},
		Levels: []LevelSpec{
			{
				Name: "The First Night", StartCoins: 100, WaveBonus: 25,
				Waves: []WaveSpec{
					{TrollCount: 3, SpawnDelay: 2500, TrollSpeed: 40, TrollHealth: 40},
					{TrollCount: 4, SpawnDelay: 2200, TrollSpeed: 45, TrollHealth: 45},
				},
			},
			{
				Name: "Growing Threat", StartCoins: 50, WaveBonus: 30,
				Waves: []WaveSpec{
					{TrollCount: 4, SpawnDelay: 2000, TrollSpeed: 50, TrollHealth: 50},
					{TrollCount: 5, SpawnDelay: 1800, TrollSpeed: 55, TrollHealth: 55},
					{TrollCount: 6, SpawnDelay: 1600, TrollSpeed: 55, TrollHealth: 60},
				},
			},
			{
				Name: "Full Assault", StartCoins: 60, WaveBonus: 35,
				Waves: []WaveSpec{
					{TrollCount: 5, SpawnDelay: 1800, TrollSpeed: 55, TrollHealth: 60},
					{TrollCount: 6, SpawnDelay: 1500, TrollSpeed: 60, TrollHealth: 65},
					{TrollCount: 8, SpawnDelay: 1300, TrollSpeed: 65, TrollHealth: 70},
				},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.4,
				HealthMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shadowlands":
		return defaultShadowlandsYAML
	case "castle":
		return defaultCastleYAML
	default:
		return nil
	}
}
