package shadowlands

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
)

const frame = 16 * time.Millisecond

type fakeStore struct {
	progress *core.Progress
	loadErr  error
	saved    []core.Progress
	scores   []int
}

func (s *fakeStore) SaveProgress(gameID string, level, score int) error {
	s.saved = append(s.saved, core.Progress{MaxLevel: level, HighScore: score})
	return nil
}

func (s *fakeStore) LoadProgress(gameID string) (*core.Progress, error) {
	return s.progress, s.loadErr
}

func (s *fakeStore) RecordScore(gameID string, score int) error {
	s.scores = append(s.scores, score)
	return nil
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultShadowlandsConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
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

func TestNewGameState(t *testing.T) {
	g := newTestGame(t, 1)

	assert.Equal(t, 1, g.LevelNumber())
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 50.0, g.Player().X)
	assert.Equal(t, 300.0, g.Player().Y)
	assert.False(t, g.State().GameOver)
}

func TestPlayerLandsOnStartPlatform(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 120; i++ {
		g.Step(frame, core.NewInputFrame())
	}

	assert.True(t, g.Player().Grounded)
	assert.Equal(t, 370.0, g.Player().Y)
}

func TestWalkRightMovesCamera(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 60; i++ {
		g.Step(frame, hold(core.ActionRight))
	}

	assert.Greater(t, g.Player().X, 300.0)
	assert.InDelta(t, g.Player().X-300, g.CameraX(), 1e-9)
}

func TestStarAddsScore(t *testing.T) {
	g := newTestGame(t, 1)
	p := g.Player()
	g.entities = append(g.entities, NewStar(p.X, p.Y, 20))
	before := len(g.entities)

	res := g.Step(frame, core.NewInputFrame())

	assert.Equal(t, 100, res.State.Score)
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventStarCollected, res.Events[0].Kind)
	assert.Len(t, g.Entities(), before-1, "collected star is removed at end of frame")
}

func TestDeathReloadsLevel(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 10; i++ {
		g.Step(frame, hold(core.ActionRight))
	}
	p := g.Player()
	g.entities = append(g.entities, NewSpike(p.X, p.Y, 30))

	res := g.Step(frame, core.NewInputFrame())

	require.NotEmpty(t, res.Events)
	assert.Equal(t, core.EventPlayerDeath, res.Events[0].Kind)
	assert.Equal(t, "spike", res.Events[0].Detail)
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, 1, g.LevelNumber())
	assert.Equal(t, 50.0, g.Player().X, "player respawns at the start")
	assert.False(t, g.Player().Dead)
}

func TestLastLifeEndsGame(t *testing.T) {
	store := &fakeStore{}
	g := newTestGame(t, 1)
	g.AttachStore(store)
	g.lives = 1
	g.score = 250
	p := g.Player()
	g.entities = append(g.entities, NewSpike(p.X, p.Y, 30))

	res := g.Step(frame, core.NewInputFrame())

	assert.True(t, res.State.GameOver)
	assert.Equal(t, 0, g.Lives())
	assert.Equal(t, core.EventGameOver, res.Events[len(res.Events)-1].Kind)
	assert.Equal(t, []int{250}, store.scores)

	// Further steps are inert.
	snap := g.Snapshot()
	g.Step(frame, hold(core.ActionRight))
	assert.Equal(t, snap, g.Snapshot())
}

func TestKeyAdvancesLevelAndSaves(t *testing.T) {
	store := &fakeStore{}
	g := newTestGame(t, 1)
	g.AttachStore(store)
	g.score = 300
	p := g.Player()
	g.entities = append([]*Entity{NewKey(p.X, p.Y, 40)}, g.entities...)

	res := g.Step(frame, core.NewInputFrame())

	assert.Equal(t, 2, g.LevelNumber())
	require.Len(t, store.saved, 1)
	assert.Equal(t, core.Progress{MaxLevel: 2, HighScore: 300}, store.saved[0])
	assert.Equal(t, core.EventLevelComplete, res.Events[0].Kind)
	assert.Equal(t, 50.0, g.Player().X)
}

func TestContinueFromSavedProgress(t *testing.T) {
	store := &fakeStore{progress: &core.Progress{MaxLevel: 4, HighScore: 900}}

	g := NewWithConfig(config.DefaultShadowlandsConfig())
	g.AttachStore(store)
	g.Reset(core.RuntimeConfig{Seed: 7})
	require.True(t, g.Continue())

	assert.Equal(t, 4, g.LevelNumber())
	assert.Equal(t, 900, g.State().Score)
	assert.Equal(t, 3, g.Lives())
}

func TestContinueWithBrokenStore(t *testing.T) {
	g := newTestGame(t, 1)
	g.AttachStore(&fakeStore{loadErr: errors.New("disk on fire")})

	assert.False(t, g.Continue())
	assert.Equal(t, 1, g.LevelNumber())
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame, core.NewInputFrame())

	res := g.Step(frame, press(core.ActionPause))
	require.True(t, res.State.Paused)
	y := g.Player().Y

	for i := 0; i < 10; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	assert.Equal(t, y, g.Player().Y)

	res = g.Step(frame, press(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestLargeDeltaIsClamped(t *testing.T) {
	a := newTestGame(t, 3)
	b := newTestGame(t, 3)

	a.Step(5*time.Second, core.NewInputFrame())
	b.Step(100*time.Millisecond, core.NewInputFrame())

	assert.Equal(t, b.Hash(), a.Hash())
}

func TestDeterministicRuns(t *testing.T) {
	run := func() string {
		g := newTestGame(t, 99)
		for i := 0; i < 600; i++ {
			in := hold(core.ActionRight)
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(frame, in)
		}
		return g.Hash()
	}

	assert.Equal(t, run(), run())
}

func TestRenderDrawsHUDAndPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Level 1")
	assert.Contains(t, screen.String(), string(PlayerChar))
	assert.Contains(t, screen.String(), string(PlatformChar))
}
