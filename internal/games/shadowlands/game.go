// Package shadowlands implements a side-scrolling platformer.
// The player crosses procedurally stitched segments of platforms, spikes and
// crumbling skeleton blocks to reach the key at the end of each level.
package shadowlands

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
const ID = "shadowlands"

// State is the game's top-level mode.
type State string

const (
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
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

// Game implements the Shadowlands platformer.
type Game struct {
	cfg     config.ShadowlandsConfig
	cfgSet  bool // explicit config, skip file lookup on Reset
	engine  Engine
	gen     *Generator
	rng     *rand.Rand
	store   core.ProgressStore
	logger  *log.Logger
	runtime core.RuntimeConfig

	state    State
	level    Level
	player   *Entity
	entities []*Entity
	cameraX  float64
	levelNum int
	score    int
	lives    int
	stars    int
	tick     uint64
	events   []core.Event
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithConfig creates a game with an explicit configuration, bypassing
// file lookup.
func NewWithConfig(cfg config.ShadowlandsConfig) *Game {
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
	return "Shadowlands"
}

// SetLogger routes simulation logs to logger.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger.WithPrefix(ID)
}

// AttachStore sets where progress is saved and loaded.
func (g *Game) AttachStore(store core.ProgressStore) {
	g.store = store
}

// Reset initializes or restarts the game at level 1.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if !g.cfgSet {
		cfg, err := config.LoadShadowlands(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
			cfg = config.DefaultShadowlandsConfig()
		}
		if difficultyPreset != "" {
			config.ApplyShadowlandsPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.engine = NewEngine(g.cfg)
	g.gen = NewGenerator(g.cfg, g.rng)
	g.state = StatePlaying
	g.score = 0
	g.stars = 0
	g.lives = g.cfg.Player.Lives
	g.tick = 0
	g.events = nil
	g.loadLevel(1)
}

// Continue restarts the run from saved progress, if any.
func (g *Game) Continue() bool {
	p := g.loadProgress()
	if p == nil || p.MaxLevel < 1 {
		return false
	}
	g.state = StatePlaying
	g.score = p.HighScore
	g.lives = g.cfg.Player.Lives
	g.events = nil
	g.loadLevel(p.MaxLevel)
	g.logger.Info("continuing saved run", "level", p.MaxLevel, "score", g.score)
	return true
}

// loadLevel generates a fresh layout and places the player at the start.
func (g *Game) loadLevel(n int) {
	g.levelNum = n
	g.level = g.gen.Generate(n)
	g.entities = g.level.Entities
	g.player = NewPlayer(g.level.StartX, g.level.StartY, g.cfg.Player)
	g.cameraX = 0
	g.logger.Debug("level loaded", "level", n, "segments", g.level.SegmentUsed, "width", g.level.Width)
}

// Step advances the game by the elapsed wall-clock time.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.state == StateGameOver {
		return g.result()
	}

	// Handle pause toggle
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

	g.tick++
	g.update(clampDT(elapsed, g.cfg.Physics.MaxDT), in)
	return g.result()
}

// clampDT converts elapsed time to seconds, capped so a stalled host cannot
// tunnel the player through platforms.
func clampDT(elapsed time.Duration, maxDT float64) float64 {
	dt := elapsed.Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, maxDT)
}

func (g *Game) update(dt float64, in core.InputFrame) {
	p := g.player

	if !p.Dead {
		move := in.Movement()
		p.VX = 0
		if move.Left {
			p.VX = -p.Speed
		}
		if move.Right {
			p.VX = p.Speed
		}
		if in.IsDown(core.ActionUp) || in.IsDown(core.ActionJump) {
			g.engine.Jump(p)
		}
	}

	g.engine.Update(dt, p, g.entities)

	if t := g.engine.CheckTriggers(p, g.entities); t != nil {
		switch t.Kind {
		case TriggerLevelComplete:
			g.completeLevel()
			return
		case TriggerPlayerDeath:
			g.die(t)
			return
		case TriggerStarCollected:
			g.score += g.cfg.Entities.StarPoints
			g.stars++
			g.emit(core.EventStarCollected, fmt.Sprintf("score %d", g.score))
		}
	}

	// Camera follow
	g.cameraX = max(p.X-g.cfg.Camera.LeftBias, 0)

	for _, e := range g.entities {
		e.Update(dt, g.rng)
	}
	g.entities = compact(g.entities)
}

func (g *Game) completeLevel() {
	g.saveProgress(g.levelNum+1, g.score)
	g.emit(core.EventLevelComplete, fmt.Sprintf("level %d", g.levelNum))
	g.logger.Info("level complete", "level", g.levelNum, "score", g.score)
	g.loadLevel(g.levelNum + 1)
}

func (g *Game) die(t *Trigger) {
	cause := "pit"
	if t.Entity != nil {
		cause = t.Entity.Kind.String()
	}
	g.player.Dead = true
	g.lives--
	g.emit(core.EventPlayerDeath, cause)
	g.logger.Debug("player died", "cause", cause, "lives", g.lives, "level", g.levelNum)

	if g.lives <= 0 {
		g.state = StateGameOver
		g.emit(core.EventGameOver, fmt.Sprintf("score %d", g.score))
		g.logger.Info("game over", "level", g.levelNum, "score", g.score)
		g.saveScore()
		return
	}
	g.loadLevel(g.levelNum)
}

// compact drops entities flagged for removal, reusing the backing array.
func compact(ents []*Entity) []*Entity {
	out := ents[:0]
	for _, e := range ents {
		if !e.Removed {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(ents); i++ {
		ents[i] = nil
	}
	return out
}

func (g *Game) saveProgress(level, score int) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveProgress(ID, level, score); err != nil {
		g.logger.Warn("failed to save progress", "err", err)
	}
}

func (g *Game) saveScore() {
	if g.store == nil {
		return
	}
	if err := g.store.RecordScore(ID, g.score); err != nil {
		g.logger.Warn("failed to save score", "err", err)
	}
}

func (g *Game) loadProgress() *core.Progress {
	if g.store == nil {
		return nil
	}
	p, err := g.store.LoadProgress(ID)
	if err != nil {
		g.logger.Warn("failed to load progress", "err", err)
		return nil
	}
	return p
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

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Player returns the player entity.
func (g *Game) Player() *Entity {
	return g.player
}

// Entities returns the live level entities.
func (g *Game) Entities() []*Entity {
	return g.entities
}

// LevelNumber returns the current level, starting at 1.
func (g *Game) LevelNumber() int {
	return g.levelNum
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// CameraX returns the camera's left edge in world units.
func (g *Game) CameraX() float64 {
	return g.cameraX
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
