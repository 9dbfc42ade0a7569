package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  90,
		ScreenH:  30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies a discrete simulation event.
type EventKind string

// Events reported by the simulation packages.
const (
	EventLevelComplete EventKind = "level_complete"
	EventPlayerDeath   EventKind = "player_death"
	EventStarCollected EventKind = "star_collected"
	EventTrapPlaced    EventKind = "trap_placed"
	EventTrapTriggered EventKind = "trap_triggered"
	EventTrollSpawned  EventKind = "troll_spawned"
	EventTrollDefeated EventKind = "troll_defeated"
	EventGemDamaged    EventKind = "gem_damaged"
	EventWaveComplete  EventKind = "wave_complete"
	EventLevelStarted  EventKind = "level_started"
	EventGameOver      EventKind = "game_over"
	EventVictory       EventKind = "victory"
)

// Event is something notable that happened during a step.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Progress is the persisted best run of a game.
type Progress struct {
	MaxLevel  int
	HighScore int
}

// ProgressStore persists progress. Games treat every error as "no saved
// data" and keep running.
type ProgressStore interface {
	SaveProgress(gameID string, level, score int) error
	LoadProgress(gameID string) (*Progress, error)
	RecordScore(gameID string, score int) error
}
