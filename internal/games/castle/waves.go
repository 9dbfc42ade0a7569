package castle

import "github.com/vovakirdan/castle-arcade/internal/config"

// Scheduler walks the level and wave tables and times troll spawns.
// Level and Wave are zero-based indexes.
type Scheduler struct {
	levels []config.LevelSpec

	Level         int
	Wave          int
	TrollsToSpawn int
	SpawnTimer    float64

	levelPending bool
}

// NewScheduler creates a scheduler positioned at the first level.
func NewScheduler(levels []config.LevelSpec) *Scheduler {
	return &Scheduler{levels: levels}
}

// CurrentLevel returns the level being played.
func (s *Scheduler) CurrentLevel() config.LevelSpec {
	return s.levels[min(s.Level, len(s.levels)-1)]
}

// CurrentWave returns the wave being played.
func (s *Scheduler) CurrentWave() config.WaveSpec {
	waves := s.CurrentLevel().Waves
	return waves[min(s.Wave, len(waves)-1)]
}

// Levels returns the number of levels.
func (s *Scheduler) Levels() int {
	return len(s.levels)
}

// StartLevel begins the first wave of the current level and returns the
// coins the level grants.
func (s *Scheduler) StartLevel() int {
	s.levelPending = false
	s.Wave = 0
	s.StartWave()
	return s.CurrentLevel().StartCoins
}

// StartWave queues the current wave. The first troll arrives after one full
// spawn delay.
func (s *Scheduler) StartWave() {
	w := s.CurrentWave()
	s.TrollsToSpawn = w.TrollCount
	s.SpawnTimer = w.SpawnDelay
}

// Tick advances the spawn timer and reports whether a troll is due.
func (s *Scheduler) Tick(ms float64) bool {
	if s.TrollsToSpawn <= 0 {
		return false
	}
	s.SpawnTimer -= ms
	if s.SpawnTimer > 0 {
		return false
	}
	s.TrollsToSpawn--
	s.SpawnTimer = s.CurrentWave().SpawnDelay
	return true
}

// WaveComplete reports whether nothing is left to spawn and no troll is
// still active.
func (s *Scheduler) WaveComplete(activeTrolls int) bool {
	return s.TrollsToSpawn == 0 && activeTrolls == 0
}

// WaveBonus is the coin bonus for clearing a wave of the current level.
func (s *Scheduler) WaveBonus(fallback int) int {
	if b := s.CurrentLevel().WaveBonus; b > 0 {
		return b
	}
	return fallback
}

// Advance moves past a cleared wave. It reports victory when the last wave
// of the last level is done. When a level is finished the next one is left
// pending until Resume.
func (s *Scheduler) Advance() (victory bool) {
	s.Wave++
	if s.Wave < len(s.CurrentLevel().Waves) {
		return false
	}
	if s.Level+1 >= len(s.levels) {
		return true
	}
	s.Level++
	s.Wave = 0
	s.levelPending = true
	return false
}

// LevelPending reports whether the next Resume starts a new level.
func (s *Scheduler) LevelPending() bool {
	return s.levelPending
}

// Resume starts whatever comes after a wave break and returns the coins it
// grants: the next level's start coins, or nothing for a wave.
func (s *Scheduler) Resume() int {
	if s.levelPending {
		return s.StartLevel()
	}
	s.StartWave()
	return 0
}
