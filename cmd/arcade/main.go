// arcade runs Shadowlands and Terror Castle in the terminal.
//
// Usage:
//
//	arcade list                     - List available games
//	arcade play <game>              - Play a game
//	arcade menu                     - Start menu to pick games interactively
//	arcade serve                    - Start SSH server for remote play
//	arcade scores <game>            - Show high scores and saved progress
//	arcade simulate <game>          - Run a game headless and print its events
//	arcade replay <file>            - Re-run a recording and verify its hash
//	arcade config validate <game>   - Check a game config file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-arcade/internal/games/castle"
	"github.com/vovakirdan/castle-arcade/internal/games/shadowlands"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Castle Arcade - Shadowlands and Terror Castle in your terminal",
	Long: `Castle Arcade runs two games in the terminal:

  shadowlands  - a platformer through procedurally generated levels
  castle       - Terror Castle, a tower defense against climbing trolls

Examples:
  arcade list
  arcade play castle
  arcade play shadowlands --continue
  arcade simulate castle --frames 3600 --seed 42
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. When a TUI owns the
// terminal and no log file is set, only errors are written to stderr.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	} else if interactive {
		level = max(level, log.ErrorLevel)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// configureGame applies the game-specific flags before a game is created.
func configureGame(gameID, configPath, difficulty string) {
	switch gameID {
	case shadowlands.ID:
		shadowlands.SetConfigPath(configPath)
		shadowlands.SetDifficultyPreset(difficulty)
	case castle.ID:
		castle.SetConfigPath(configPath)
		castle.SetDifficultyPreset(difficulty)
	}
}

// fail prints an error and exits, matching the CLI's exit conventions.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
