package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionWave  = "wave"
	ProgressionScore = "score"
	ProgressionNone  = "none"
)

// DifficultyManager scales wave parameters as a castle run progresses.
// With progression disabled and an initial level of zero it returns the
// authored values unchanged.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64 // level at the start of the run, in [0, 1]
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the starting level. Values outside [0, 1]
// are clamped.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.floor = unit(level)
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level grows during the run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current level in [0, 1]. It grows linearly from the
// initial level and reaches 1 at progression.max_at waves cleared or
// points scored.
func (d *DifficultyManager) Level(wavesCleared, score int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}

	var reached int
	switch d.cfg.Progression.Type {
	case ProgressionWave:
		reached = wavesCleared
	case ProgressionScore:
		reached = score
	default:
		return d.floor
	}

	target := float64(max(d.cfg.Progression.MaxAt, 1))
	return d.floor + unit(float64(reached)/target)*(1-d.floor)
}

// TrollSpeed scales a wave's walking speed.
func (d *DifficultyManager) TrollSpeed(base float64, wavesCleared, score int) float64 {
	return base * d.factor(d.cfg.Scaling.SpeedMultiplier, wavesCleared, score)
}

// TrollHealth scales a wave's troll health, rounded to the nearest point.
func (d *DifficultyManager) TrollHealth(base int, wavesCleared, score int) int {
	return int(math.Round(float64(base) * d.factor(d.cfg.Scaling.HealthMultiplier, wavesCleared, score)))
}

func (d *DifficultyManager) factor(mult float64, wavesCleared, score int) float64 {
	return 1 + d.Level(wavesCleared, score)*mult
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
