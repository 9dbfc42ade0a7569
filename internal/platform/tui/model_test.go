package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/castle-arcade/internal/core"
	"github.com/vovakirdan/castle-arcade/internal/storage"
)

// recordingGame remembers what the host fed it.
type recordingGame struct {
	elapsed []time.Duration
	inputs  []core.InputFrame
	over    bool
	score   int
	resets  int
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "hello") }
func (g *recordingGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}
func (g *recordingGame) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

// persistentGame records its own scores.
type persistentGame struct {
	recordingGame
	store core.ProgressStore
}

func (g *persistentGame) AttachStore(store core.ProgressStore) { g.store = store }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 50, Seed: 1}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runes("s"), core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runes("3"), core.ActionTrap3, false},
		{runes("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("z"), core.ActionNone, false},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
		}
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(runes("j")); got != MenuActionDown {
		t.Errorf("j = %v, want down", got)
	}
}

func TestTickFeedsElapsedAndInput(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, Options{}, testConfig())
	m.Init()

	start := time.Unix(1000, 0)
	m = send(t, m, runes("d"))
	m = send(t, m, TickMsg(start))
	m = send(t, m, TickMsg(start.Add(30*time.Millisecond)))

	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1", g.resets)
	}
	if len(g.elapsed) != 2 {
		t.Fatalf("Step called %d times, want 2", len(g.elapsed))
	}
	if g.elapsed[0] != 20*time.Millisecond {
		t.Errorf("first step = %v, want one tick interval", g.elapsed[0])
	}
	if g.elapsed[1] != 30*time.Millisecond {
		t.Errorf("second step = %v, want wall-clock delta", g.elapsed[1])
	}

	if !g.inputs[0].IsJustPressed(core.ActionRight) {
		t.Error("first step should see the fresh press")
	}
	if g.inputs[1].IsJustPressed(core.ActionRight) || !g.inputs[1].IsDown(core.ActionRight) {
		t.Error("second step should see the key held but not pressed again")
	}
}

func TestHeldKeyExpires(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, Options{}, testConfig())
	m.Init()

	start := time.Unix(1000, 0)
	m = send(t, m, runes("a"))
	m = send(t, m, TickMsg(start))
	send(t, m, TickMsg(start.Add(time.Second)))

	if g.inputs[1].IsDown(core.ActionLeft) {
		t.Error("key should be released after the hold window")
	}
}

func TestScoreSavedForPlainGames(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &recordingGame{over: true, score: 42}
	m := NewGameModel(g, Options{Store: store}, testConfig())
	m.Init()
	m = send(t, m, TickMsg(time.Unix(1000, 0)))
	send(t, m, TickMsg(time.Unix(1001, 0)))

	scores, err := store.AllScores("recording")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Errorf("scores = %v, want one score of 42", scores)
	}
}

func TestPersistentGamesSaveTheirOwnScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &persistentGame{recordingGame: recordingGame{over: true, score: 42}}
	m := NewGameModel(g, Options{Store: store}, testConfig())
	m.Init()
	send(t, m, TickMsg(time.Unix(1000, 0)))

	if g.store == nil {
		t.Error("store should be attached")
	}
	if high, _ := store.HighScore("recording"); high != 0 {
		t.Errorf("host saved a score for a persistent game: %d", high)
	}
}

func TestBackToMenuOnlyWhenStopped(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, Options{}, testConfig())
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc during play should not leave the game")
	}

	g.over = true
	m = send(t, m, TickMsg(time.Unix(1000, 0)))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}
}

func TestRecordingCapturesFrames(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, Options{Record: filepath.Join(t.TempDir(), "run.replay")}, testConfig())
	m.Init()

	m = send(t, m, runes("1"))
	m = send(t, m, TickMsg(time.Unix(1000, 0)))
	m = send(t, m, TickMsg(time.Unix(1000, int64(25*time.Millisecond))))

	rec := m.Recording()
	if rec == nil {
		t.Fatal("expected a recording")
	}
	if rec.GameID != "recording" || rec.Seed != 1 || len(rec.Frames) != 2 {
		t.Errorf("unexpected recording: %+v", rec)
	}
	if rec.Frames[1].DtMicros != 25000 {
		t.Errorf("second frame dt = %d, want 25000", rec.Frames[1].DtMicros)
	}
	if len(rec.Frames[0].Pressed) != 1 || rec.Frames[0].Pressed[0] != core.ActionTrap1 {
		t.Errorf("first frame pressed = %v", rec.Frames[0].Pressed)
	}
}

func TestRecordedDurationsMatchSteps(t *testing.T) {
	g := &recordingGame{}
	m := NewGameModel(g, Options{Record: filepath.Join(t.TempDir(), "run.replay")}, testConfig())
	m.Init()

	start := time.Unix(1000, 0)
	m = send(t, m, TickMsg(start))
	m = send(t, m, TickMsg(start.Add(16666667*time.Nanosecond)))
	m = send(t, m, TickMsg(start.Add(33333901*time.Nanosecond)))

	rec := m.Recording()
	if rec == nil || len(rec.Frames) != len(g.elapsed) {
		t.Fatalf("recording does not match steps: %+v", rec)
	}
	for i, f := range rec.Frames {
		if f.Elapsed() != g.elapsed[i] {
			t.Errorf("frame %d: recorded %v, stepped %v", i, f.Elapsed(), g.elapsed[i])
		}
	}
	if g.elapsed[1] != 16666*time.Microsecond {
		t.Errorf("second step = %v, want 16.666ms", g.elapsed[1])
	}
}

func TestViewRendersGame(t *testing.T) {
	m := NewGameModel(&recordingGame{}, Options{}, testConfig())
	if got := m.View(); !strings.Contains(got, "hello") {
		t.Errorf("View() = %q", got)
	}
}
