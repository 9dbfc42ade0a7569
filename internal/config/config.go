// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
//
// Every value the simulations treat as a tunable constant (physics, entity
// sizes, segment and trap catalogs, level and wave tables) lives here so a
// YAML file can override it without touching game code.
package config

// ShadowlandsConfig contains all configuration for the Shadowlands platformer.
type ShadowlandsConfig struct {
	Physics   ShadowlandsPhysics   `yaml:"physics"`
	Player    ShadowlandsPlayer    `yaml:"player"`
	Entities  ShadowlandsEntities  `yaml:"entities"`
	Generator ShadowlandsGenerator `yaml:"generator"`
	Camera    ShadowlandsCamera    `yaml:"camera"`
	Segments  []Segment            `yaml:"segments"`
}

// ShadowlandsPhysics defines world physics. Units are pixels and seconds.
type ShadowlandsPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // px/s^2, downward
	TerminalVelocity float64 `yaml:"terminal_velocity"` // max fall speed px/s
	MaxDT            float64 `yaml:"max_dt"`            // frame delta clamp in seconds
	PitY             float64 `yaml:"pit_y"`             // falling below this kills the player
}

// ShadowlandsPlayer defines the player body and lives.
type ShadowlandsPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	JumpForce   float64 `yaml:"jump_force"` // negative = up
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Lives       int     `yaml:"lives"`
	HazardInset float64 `yaml:"hazard_inset"` // hazards use a box shrunk by this on each side
}

// ShadowlandsEntities defines default sizes and values for level pieces.
type ShadowlandsEntities struct {
	KeySize         float64 `yaml:"key_size"`
	SpikeSize       float64 `yaml:"spike_size"`
	StarSize        float64 `yaml:"star_size"`
	CrumbleDuration float64 `yaml:"crumble_duration"` // seconds
	CrumbleShake    float64 `yaml:"crumble_shake"`    // max shake offset in px
	StarPoints      int     `yaml:"star_points"`
}

// ShadowlandsGenerator controls procedural level stitching.
type ShadowlandsGenerator struct {
	StartPlatform      RectSpec `yaml:"start_platform"`
	BaseSegments       int      `yaml:"base_segments"`
	SegmentsDivisor    int      `yaml:"segments_divisor"`
	DifficultyCap      int      `yaml:"difficulty_cap"`
	DifficultyDivisor  int      `yaml:"difficulty_divisor"`
	EasyLevelMax       int      `yaml:"easy_level_max"`
	EasyGapMin         int      `yaml:"easy_gap_min"`
	EasyGapMax         int      `yaml:"easy_gap_max"`
	GapMin             int      `yaml:"gap_min"`
	GapBaseMax         int      `yaml:"gap_base_max"`
	GapPerLevel        int      `yaml:"gap_per_level"`
	GoalPlatformWidth  float64  `yaml:"goal_platform_width"`
	GoalPlatformHeight float64  `yaml:"goal_platform_height"`
	GoalPlatformY      float64  `yaml:"goal_platform_y"`
	KeyOffsetX         float64  `yaml:"key_offset_x"`
	KeyOffsetY         float64  `yaml:"key_offset_y"`
	WidthPadding       float64  `yaml:"width_padding"`
}

// ShadowlandsCamera controls camera follow.
type ShadowlandsCamera struct {
	LeftBias   float64 `yaml:"left_bias"` // player is kept this far from the left edge
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
}

// RectSpec is a rectangle in YAML form.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Segment is a hand-authored chunk of platformer level.
type Segment struct {
	Name       string        `yaml:"name"`
	Difficulty int           `yaml:"difficulty"`
	Width      float64       `yaml:"width"`
	Layout     []SegmentItem `yaml:"layout"`
}

// SegmentItem places one entity relative to the segment origin.
// W and H may be omitted for spikes and stars to use the default sizes.
type SegmentItem struct {
	Type string  `yaml:"type"` // platform, skeleton, spike, star, key
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w,omitempty"`
	H    float64 `yaml:"h,omitempty"`
}

// Segment item types.
const (
	ItemPlatform = "platform"
	ItemSkeleton = "skeleton"
	ItemSpike    = "spike"
	ItemStar     = "star"
	ItemKey      = "key"
)

// CastleConfig contains all configuration for Terror Castle.
type CastleConfig struct {
	Arena      CastleArena      `yaml:"arena"`
	Floors     []FloorSpec      `yaml:"floors"`
	Stairs     []StairSpec      `yaml:"stairs"`
	Troll      TrollSpec        `yaml:"troll"`
	Gem        GemSpec          `yaml:"gem"`
	Traps      []TrapSpec       `yaml:"traps"`
	Placement  PlacementSpec    `yaml:"placement"`
	Economy    EconomySpec      `yaml:"economy"`
	Levels     []LevelSpec      `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CastleArena is the logical play-field size.
type CastleArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FloorSpec describes one horizontal band of the castle, bottom floor first.
type FloorSpec struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
}

// StairSpec connects two floors at an x position.
type StairSpec struct {
	X    float64 `yaml:"x"`
	From int     `yaml:"from"`
	To   int     `yaml:"to"`
}

// TrollSpec defines troll body and timings. Durations are milliseconds.
type TrollSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ClimbDuration float64 `yaml:"climb_duration"`
	DeathDuration float64 `yaml:"death_duration"`
	HurtDuration  float64 `yaml:"hurt_duration"`
	StairReach    float64 `yaml:"stair_reach"`  // max |center - stair.x| to start climbing
	SpawnX        float64 `yaml:"spawn_x"`      // off-screen left
	FloorOffset   float64 `yaml:"floor_offset"` // y = floor.y + floor.height - offset
	FrameDuration float64 `yaml:"frame_duration"`
	FrameCount    int     `yaml:"frame_count"`
}

// GemSpec defines the objective.
type GemSpec struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Health      int     `yaml:"health"`
	OffsetY     float64 `yaml:"offset_y"` // below the top floor's y
	TrollDamage int     `yaml:"troll_damage"`
}

// Trap effects.
const (
	EffectDamage     = "damage"
	EffectDamageStun = "damage_stun"
	EffectSlow       = "slow"
	EffectAreaStun   = "area_stun"
)

// TrapSpec is one trap catalog entry. Durations are milliseconds.
type TrapSpec struct {
	Name            string  `yaml:"name"`
	FullName        string  `yaml:"full_name"`
	Cost            int     `yaml:"cost"`
	Damage          int     `yaml:"damage"`
	Uses            int     `yaml:"uses"` // 0 = unlimited
	Cooldown        float64 `yaml:"cooldown"`
	StunDuration    float64 `yaml:"stun_duration"`
	SlowFactor      float64 `yaml:"slow_factor"`
	SlowDuration    float64 `yaml:"slow_duration"`
	Radius          float64 `yaml:"radius"`         // area effect radius
	TriggerRadius   float64 `yaml:"trigger_radius"` // proximity trigger for area traps
	TriggerTime     float64 `yaml:"trigger_time"`   // how long the triggered visual lasts
	DeactivateDelay float64 `yaml:"deactivate_delay"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	OffsetY         float64 `yaml:"offset_y"` // relative to the base placement y
	Effect          string  `yaml:"effect"`
	Description     string  `yaml:"description"`
}

// Unlimited reports whether the trap never runs out of uses.
func (t TrapSpec) Unlimited() bool {
	return t.Uses == 0
}

// PlacementSpec controls the placement cursor.
type PlacementSpec struct {
	MinSpacing   float64 `yaml:"min_spacing"`   // min |x| distance between traps on a floor
	CursorSpeed  float64 `yaml:"cursor_speed"`  // px/s
	CursorMargin float64 `yaml:"cursor_margin"` // cursor x is clamped to [margin, width-margin]
	CursorOffset float64 `yaml:"cursor_offset"` // cursor y = floor bottom - offset
	TrapOffsetX  float64 `yaml:"trap_offset_x"` // trap x = cursor.x - offset
	TrapOffsetY  float64 `yaml:"trap_offset_y"` // trap base y = cursor.y - offset
}

// EconomySpec defines rewards.
type EconomySpec struct {
	KillScore        int `yaml:"kill_score"`
	KillCoins        int `yaml:"kill_coins"`
	DefaultWaveBonus int `yaml:"default_wave_bonus"`
}

// LevelSpec is one level of waves.
type LevelSpec struct {
	Name       string     `yaml:"name"`
	StartCoins int        `yaml:"start_coins"`
	WaveBonus  int        `yaml:"wave_bonus"` // 0 = economy default
	Waves      []WaveSpec `yaml:"waves"`
}

// WaveSpec is one wave of trolls.
type WaveSpec struct {
	TrollCount  int     `yaml:"troll_count"`
	SpawnDelay  float64 `yaml:"spawn_delay"` // ms between spawns
	TrollSpeed  float64 `yaml:"troll_speed"` // px/s
	TrollHealth int     `yaml:"troll_health"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = as authored, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at"` // waves cleared / score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to troll speed at max difficulty
	HealthMultiplier float64 `yaml:"health_multiplier"` // added to troll health at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
