package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/core"
	"github.com/vovakirdan/castle-arcade/internal/platform/tui"
	"github.com/vovakirdan/castle-arcade/internal/registry"
	"github.com/vovakirdan/castle-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagContinue   bool
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Shadowlands controls:
  Left/Right, A/D   - Walk
  Up/W/Space        - Jump

Terror Castle controls:
  Left/Right, A/D   - Move the trap cursor
  Up/Down, W/S      - Change floor
  1-4               - Select trap
  Space/Enter       - Place trap, start the next wave

Common:
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Back (while paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, more coins, sturdier gem
  normal - Config defaults with difficulty scaling
  hard   - Fewer lives, fewer coins, weaker gem
  fixed  - No scaling

Examples:
  arcade play castle
  arcade play castle --difficulty hard
  arcade play shadowlands --continue
  arcade play castle --config ./my-castle.yaml --record run.replay`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Resume from saved progress")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the last run to this file")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil so games still run.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	configureGame(gameID, flagConfig, flagDifficulty)
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	opts := tui.Options{
		Store:    store,
		Logger:   logger,
		Continue: flagContinue,
		Record:   flagRecord,
	}
	runErr := tui.Run(game, opts, terminalConfig())

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
