// Package castle implements Terror Castle, a tower-defense game.
// Trolls enter the ground floor, climb the stairs floor by floor and try to
// smash the gem in the treasure room. The player places traps on their path.
package castle

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
	"github.com/vovakirdan/castle-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "castle"

// State is the game's top-level mode.
type State string

const (
	StatePlaying      State = "playing"
	StatePaused       State = "paused"
	StateWaveComplete State = "wave_complete"
	StateGameOver     State = "game_over"
	StateVictory      State = "victory"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = "" // Use config default
	}
	difficultyPreset = p
}

// Cursor is the trap placement cursor.
type Cursor struct {
	X        float64
	Floor    int
	Selected int
}

// Game implements Terror Castle.
type Game struct {
	cfg     config.CastleConfig
	cfgSet  bool
	world   *World
	sched   *Scheduler
	diff    *config.DifficultyManager
	rng     *rand.Rand
	store   core.ProgressStore
	logger  *log.Logger
	runtime core.RuntimeConfig

	state        State
	cursor       Cursor
	wavesCleared int
	lastBonus    int
	tick         uint64
	events       []core.Event
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.CastleConfig) *Game {
	g := New()
	g.cfg = cfg
	g.cfgSet = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Terror Castle"
}

// SetLogger routes simulation logs to logger.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger.WithPrefix(ID)
}

// AttachStore sets where scores and progress are recorded.
func (g *Game) AttachStore(store core.ProgressStore) {
	g.store = store
}

// Reset starts a new run from the first level. Coins start at the first
// level's grant.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.cfgSet {
		cfg, err := config.LoadCastle(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
			cfg = config.DefaultCastleConfig()
		}
		if difficultyPreset != "" {
			config.ApplyCastlePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.world = NewWorld(g.cfg)
	g.sched = NewScheduler(g.cfg.Levels)
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.state = StatePlaying
	g.wavesCleared = 0
	g.lastBonus = 0
	g.tick = 0
	g.events = nil
	g.cursor = Cursor{X: g.cfg.Arena.Width / 2, Floor: 1}

	g.world.Coins += g.sched.StartLevel()
	g.logger.Debug("level started", "level", g.sched.Level+1, "coins", g.world.Coins)
}

// Step advances the game by the elapsed wall-clock time. Defense time is
// not clamped.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.state {
	case StateGameOver, StateVictory:
		return g.result()
	case StateWaveComplete:
		if in.ActionPressed() {
			g.resume()
		}
		return g.result()
	}

	if in.IsJustPressed(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return g.result()
	}

	ms := max(float64(elapsed)/float64(time.Millisecond), 0)
	g.tick++
	g.update(ms, in)
	return g.result()
}

func (g *Game) update(ms float64, in core.InputFrame) {
	g.updateCursor(ms, in)

	if sel, ok := in.TrapSelection(); ok {
		g.cursor.Selected = core.Clamp(sel, 0, len(g.cfg.Traps)-1)
	}

	if in.ActionPressed() {
		g.world.PlaceTrap(g.cursor.Selected, g.cursor.X, g.cursor.Floor)
	}

	if g.sched.Tick(ms) {
		g.spawnTroll()
	}

	g.events = append(g.events, g.world.Update(ms)...)
	g.checkGameState()
}

func (g *Game) updateCursor(ms float64, in core.InputFrame) {
	p := g.cfg.Placement
	move := in.Movement()
	step := p.CursorSpeed * ms / 1000
	if move.Left {
		g.cursor.X -= step
	}
	if move.Right {
		g.cursor.X += step
	}

	// Floors change one per key press
	if in.IsJustPressed(core.ActionUp) && g.cursor.Floor < g.world.Castle.Floors() {
		g.cursor.Floor++
	}
	if in.IsJustPressed(core.ActionDown) && g.cursor.Floor > 1 {
		g.cursor.Floor--
	}

	g.cursor.X = core.ClampF(g.cursor.X, p.CursorMargin, g.cfg.Arena.Width-p.CursorMargin)
}

func (g *Game) spawnTroll() {
	w := g.sched.CurrentWave()
	speed := g.diff.TrollSpeed(w.TrollSpeed, g.wavesCleared, g.world.Score)
	health := g.diff.TrollHealth(w.TrollHealth, g.wavesCleared, g.world.Score)
	g.world.Spawn(speed, health, g.rng.Intn(len(core.TrollPalette)))
	g.emit(core.EventTrollSpawned, fmt.Sprintf("speed %.0f health %d", speed, health))
}

// checkGameState ends the run when the gem falls, otherwise closes out a
// cleared wave. A destroyed gem wins over a cleared wave in the same frame.
func (g *Game) checkGameState() {
	if g.world.GameOver() {
		g.state = StateGameOver
		g.emit(core.EventGameOver, fmt.Sprintf("score %d", g.world.Score))
		g.logger.Info("gem destroyed", "level", g.sched.Level+1, "wave", g.sched.Wave+1, "score", g.world.Score)
		g.finish()
		return
	}

	if !g.sched.WaveComplete(len(g.world.Trolls)) {
		return
	}

	bonus := g.sched.WaveBonus(g.cfg.Economy.DefaultWaveBonus)
	g.world.Coins += bonus
	g.lastBonus = bonus
	g.wavesCleared++
	level := g.sched.Level
	g.emit(core.EventWaveComplete, fmt.Sprintf("level %d wave %d bonus %d", level+1, g.sched.Wave+1, bonus))
	g.logger.Debug("wave complete", "level", level+1, "wave", g.sched.Wave+1, "bonus", bonus, "coins", g.world.Coins)

	if g.sched.Advance() {
		g.state = StateVictory
		g.emit(core.EventVictory, fmt.Sprintf("score %d", g.world.Score))
		g.logger.Info("castle defended", "score", g.world.Score, "defeated", g.world.Defeated)
		g.saveProgress(level+1, g.world.Score)
		g.finish()
		return
	}
	if g.sched.LevelPending() {
		g.emit(core.EventLevelComplete, fmt.Sprintf("level %d", level+1))
		g.saveProgress(level+2, g.world.Score)
	}
	g.state = StateWaveComplete
}

// resume leaves the wave break, starting the next wave or level.
func (g *Game) resume() {
	starting := g.sched.LevelPending()
	g.world.Coins += g.sched.Resume()
	g.state = StatePlaying
	if starting {
		g.emit(core.EventLevelStarted, g.sched.CurrentLevel().Name)
		g.logger.Debug("level started", "level", g.sched.Level+1, "coins", g.world.Coins)
	}
}

func (g *Game) finish() {
	if g.store == nil {
		return
	}
	if err := g.store.RecordScore(ID, g.world.Score); err != nil {
		g.logger.Warn("failed to save score", "err", err)
	}
}

func (g *Game) saveProgress(level, score int) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveProgress(ID, level, score); err != nil {
		g.logger.Warn("failed to save progress", "err", err)
	}
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. Victory also counts as over.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateGameOver || g.state == StateVictory,
		Paused:   g.state == StatePaused,
	}
}

// Mode returns the current state machine state.
func (g *Game) Mode() State {
	return g.state
}

// World exposes the simulated castle.
func (g *Game) World() *World {
	return g.world
}

// Scheduler exposes wave progress.
func (g *Game) Scheduler() *Scheduler {
	return g.sched
}

// Cursor returns the placement cursor.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
