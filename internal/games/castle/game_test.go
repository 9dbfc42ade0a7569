package castle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

const frame = 16 * time.Millisecond

type fakeStore struct {
	saved  []core.Progress
	scores []int
}

func (s *fakeStore) SaveProgress(gameID string, level, score int) error {
	s.saved = append(s.saved, core.Progress{MaxLevel: level, HighScore: score})
	return nil
}

func (s *fakeStore) LoadProgress(gameID string) (*core.Progress, error) {
	return nil, nil
}

func (s *fakeStore) RecordScore(gameID string, score int) error {
	s.scores = append(s.scores, score)
	return nil
}

func newTestGame(t *testing.T, cfg config.CastleConfig, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 90, ScreenH: 30, TickRate: 60, Seed: seed})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

// quickConfig has levels of single, fast, fragile trolls so a spike near
// the entrance clears each wave.
func quickConfig(levels, waves int) config.CastleConfig {
	cfg := config.DefaultCastleConfig()
	cfg.Levels = nil
	for i := 0; i < levels; i++ {
		l := config.LevelSpec{Name: "Test", StartCoins: 100, WaveBonus: 25}
		for j := 0; j < waves; j++ {
			l.Waves = append(l.Waves, config.WaveSpec{TrollCount: 1, SpawnDelay: 0, TrollSpeed: 100, TrollHealth: 1})
		}
		cfg.Levels = append(cfg.Levels, l)
	}
	// Unlimited spikes so one trap lasts the whole run
	cfg.Traps[0].Uses = 0
	cfg.Traps[0].Cooldown = 0
	return cfg
}

func runUntil(t *testing.T, g *Game, want State, maxFrames int) []core.Event {
	t.Helper()
	var events []core.Event
	for i := 0; i < maxFrames && g.Mode() != want; i++ {
		events = append(events, g.Step(frame, core.NewInputFrame()).Events...)
	}
	require.Equal(t, want, g.Mode())
	return events
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, config.DefaultCastleConfig(), 1)

	assert.Equal(t, StatePlaying, g.Mode())
	assert.Equal(t, 100, g.World().Coins)
	assert.Equal(t, Cursor{X: 450, Floor: 1}, g.Cursor())
	assert.Equal(t, 3, g.Scheduler().TrollsToSpawn)
	assert.Equal(t, 100, g.World().Gem.Health)
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, config.DefaultCastleConfig(), 1)

	for i := 0; i < 20; i++ {
		g.Step(100*time.Millisecond, hold(core.ActionRight))
	}
	assert.Equal(t, 850.0, g.Cursor().X, "clamped to the right margin")

	g.Step(frame, press(core.ActionUp))
	assert.Equal(t, 2, g.Cursor().Floor)
	g.Step(frame, hold(core.ActionUp))
	assert.Equal(t, 2, g.Cursor().Floor, "holding does not repeat")
	g.Step(frame, press(core.ActionUp))
	g.Step(frame, press(core.ActionUp))
	assert.Equal(t, 3, g.Cursor().Floor)

	g.Step(frame, press(core.ActionDown))
	assert.Equal(t, 2, g.Cursor().Floor)
}

func TestSelectAndPlaceTrap(t *testing.T) {
	g := newTestGame(t, config.DefaultCastleConfig(), 1)

	g.Step(frame, press(core.ActionTrap2))
	assert.Equal(t, 1, g.Cursor().Selected)

	res := g.Step(frame, press(core.ActionConfirm))

	require.Len(t, g.World().Traps, 1)
	assert.Equal(t, "Light", g.World().Traps[0].Type.Name)
	assert.Equal(t, 75, g.World().Coins)
	assert.True(t, hasEvent(res.Events, core.EventTrapPlaced))

	g.Step(frame, press(core.ActionJump))
	assert.Len(t, g.World().Traps, 1, "same spot is too close")
}

func TestWaveBreakAndResume(t *testing.T) {
	g := newTestGame(t, quickConfig(1, 2), 1)
	require.True(t, g.World().PlaceTrap(spikeTrap, 50, 1))

	events := runUntil(t, g, StateWaveComplete, 200)
	assert.True(t, hasEvent(events, core.EventTrollSpawned))
	assert.True(t, hasEvent(events, core.EventTrollDefeated))
	assert.True(t, hasEvent(events, core.EventWaveComplete))
	assert.Equal(t, 100-10+15+25, g.World().Coins)

	g.Step(frame, core.NewInputFrame())
	assert.Equal(t, StateWaveComplete, g.Mode(), "waits for the player")

	g.Step(frame, press(core.ActionConfirm))
	assert.Equal(t, StatePlaying, g.Mode())
	assert.Equal(t, 1, g.Scheduler().Wave)
	assert.Equal(t, 1, g.Scheduler().TrollsToSpawn)
	assert.Len(t, g.World().Traps, 1, "confirm in the break does not place a trap")
}

func TestLevelTransitionGrantsCoins(t *testing.T) {
	store := &fakeStore{}
	g := newTestGame(t, quickConfig(2, 1), 1)
	g.AttachStore(store)
	require.True(t, g.World().PlaceTrap(spikeTrap, 50, 1))

	events := runUntil(t, g, StateWaveComplete, 200)
	assert.True(t, hasEvent(events, core.EventLevelComplete))
	assert.True(t, g.Scheduler().LevelPending())
	require.Len(t, store.saved, 1)
	assert.Equal(t, core.Progress{MaxLevel: 2, HighScore: 100}, store.saved[0])

	coins := g.World().Coins
	res := g.Step(frame, press(core.ActionConfirm))
	assert.Equal(t, coins+100, g.World().Coins)
	assert.True(t, hasEvent(res.Events, core.EventLevelStarted))
	assert.Equal(t, 1, g.Scheduler().Level)
}

func TestVictory(t *testing.T) {
	store := &fakeStore{}
	g := newTestGame(t, quickConfig(1, 1), 1)
	g.AttachStore(store)
	require.True(t, g.World().PlaceTrap(spikeTrap, 50, 1))

	events := runUntil(t, g, StateVictory, 200)

	assert.True(t, hasEvent(events, core.EventVictory))
	assert.True(t, g.State().GameOver)
	assert.Equal(t, 100, g.State().Score)
	assert.Equal(t, []int{100}, store.scores)

	snap := g.Snapshot()
	g.Step(frame, press(core.ActionConfirm))
	assert.Equal(t, snap, g.Snapshot(), "finished runs are inert")
}

func TestGemLossBeatsWaveComplete(t *testing.T) {
	store := &fakeStore{}
	g := newTestGame(t, config.DefaultCastleConfig(), 1)
	g.AttachStore(store)
	g.Scheduler().TrollsToSpawn = 0
	g.World().Gem.Health = 15
	g.World().Trolls = append(g.World().Trolls,
		NewTroll(g.World().Castle, config.DefaultCastleConfig().Troll, 400, 3, 40, 100))

	res := g.Step(frame, core.NewInputFrame())

	assert.Equal(t, StateGameOver, g.Mode())
	assert.True(t, res.State.GameOver)
	assert.True(t, hasEvent(res.Events, core.EventGameOver))
	assert.False(t, hasEvent(res.Events, core.EventWaveComplete))
	assert.Equal(t, []int{0}, store.scores)
}

func TestPauseFreezesCastle(t *testing.T) {
	g := newTestGame(t, config.DefaultCastleConfig(), 1)

	res := g.Step(frame, press(core.ActionPause))
	require.True(t, res.State.Paused)
	timer := g.Scheduler().SpawnTimer

	for i := 0; i < 100; i++ {
		g.Step(100*time.Millisecond, hold(core.ActionRight))
	}
	assert.Equal(t, timer, g.Scheduler().SpawnTimer)
	assert.Equal(t, 450.0, g.Cursor().X)

	res = g.Step(frame, press(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestDifficultyScalesSpawns(t *testing.T) {
	cfg := config.DefaultCastleConfig()
	cfg.Difficulty.InitialLevel = 1
	g := newTestGame(t, cfg, 1)

	g.Step(2500*time.Millisecond, core.NewInputFrame())

	require.Len(t, g.World().Trolls, 1)
	troll := g.World().Trolls[0]
	assert.InDelta(t, 40*1.4, troll.BaseSpeed, 1e-9)
	assert.Equal(t, 60, troll.MaxHealth)
}

func TestCastleDeterminism(t *testing.T) {
	run := func() string {
		g := newTestGame(t, config.DefaultCastleConfig(), 42)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			switch i {
			case 10:
				in.Set(core.ActionConfirm)
			case 20:
				in.Set(core.ActionTrap3)
			case 30:
				in.Set(core.ActionUp)
			case 40:
				in.Set(core.ActionConfirm)
			}
			if i%500 == 0 {
				in.Set(core.ActionConfirm)
			}
			g.Step(frame, in)
		}
		return g.Hash()
	}

	assert.Equal(t, run(), run())
}

func TestCastleRender(t *testing.T) {
	g := newTestGame(t, config.DefaultCastleConfig(), 1)
	screen := core.NewScreen(90, 30)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Level 1/3")
	assert.Contains(t, screen.Row(29), "[1] Spike 10")
	assert.Contains(t, screen.String(), string(GemChar))
	assert.Contains(t, screen.String(), "Ground Floor")
}
