package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/castle-arcade/internal/core"
	"github.com/vovakirdan/castle-arcade/internal/registry"
	"github.com/vovakirdan/castle-arcade/internal/replay"
	"github.com/vovakirdan/castle-arcade/internal/storage"
)

// Options are the host services handed to a game.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Continue bool   // resume saved progress when the game supports it
	Record   string // replay file written when the program exits
}

// GameModel runs one game inside Bubble Tea. Each tick carries the wall
// clock; the elapsed time since the previous tick and the keyboard state
// are fed to Step, and View renders only after Step has returned.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyboard   *core.Keyboard
	keyMapper  *KeyMapper
	rec        *recordSlot
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// recordSlot is shared by model copies so Init can start a recording.
type recordSlot struct {
	recorder *replay.Recorder
}

// NewGameModel wires the host services into game and returns its model.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if l, ok := game.(registry.Loggable); ok {
		l.SetLogger(opts.Logger)
	}
	if p, ok := game.(registry.Persistent); ok && opts.Store != nil {
		p.AttachStore(opts.Store)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		config:    cfg,
		keyboard:  core.NewKeyboard(),
		keyMapper: NewKeyMapper(),
		rec:       &recordSlot{},
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.start()
	return tickCmd(m.config.TickRate)
}

// start resets the game, resumes saved progress if asked, and starts a
// fresh recording.
func (m *GameModel) start() {
	m.game.Reset(m.config)
	if m.opts.Continue {
		if c, ok := m.game.(registry.Continuer); ok && !c.Continue() {
			m.opts.Logger.Info("no saved progress, starting a new run", "game", m.game.ID())
		}
	}
	// Resumed runs depend on saved progress and cannot be replayed
	m.rec.recorder = nil
	if m.opts.Record != "" && !m.opts.Continue {
		m.rec.recorder = replay.NewRecorder(m.game.ID(), m.config)
	}
	m.keyboard.Reset()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToKeyboard(msg, m.keyboard) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from a paused or finished game. Sessions intercept the
	// quit and show their menu instead.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	elapsed := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	elapsed = replay.Quantize(elapsed)

	m.keyboard.Advance(elapsed)
	in := m.keyboard.Frame()

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.opts.Continue = false
		m.start()
		m.gameState = m.game.State()
		m.scoreSaved = false
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(elapsed, in)
	if m.rec.recorder != nil {
		m.rec.recorder.Record(elapsed, in)
	}
	m.keyboard.EndFrame()
	m.gameState = result.State

	for _, e := range result.Events {
		m.opts.Logger.Debug("event", "game", m.game.ID(), "kind", e.Kind, "detail", e.Detail)
	}

	// Persistent games record their own scores
	if m.gameState.GameOver && !m.scoreSaved {
		if _, ok := m.game.(registry.Persistent); !ok && m.opts.Store != nil && m.gameState.Score > 0 {
			if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				m.opts.Logger.Warn("failed to save score", "game", m.game.ID(), "err", err)
			}
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Recording returns the run recorded so far, or nil when not recording.
func (m GameModel) Recording() *replay.Recording {
	if m.rec.recorder == nil {
		return nil
	}
	hash := ""
	if h, ok := m.game.(registry.Hasher); ok {
		hash = h.Hash()
	}
	return m.rec.recorder.Finish(hash)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	gm, ok := final.(GameModel)
	if !ok || opts.Record == "" {
		return nil
	}
	if rec := gm.Recording(); rec != nil {
		if err := replay.SaveFile(opts.Record, rec); err != nil {
			return err
		}
		model.opts.Logger.Info("replay saved", "path", opts.Record, "frames", len(rec.Frames))
	}
	return nil
}
