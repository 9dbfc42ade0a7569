package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-arcade/internal/registry"
	"github.com/vovakirdan/castle-arcade/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording and verify its hash",
	Long: `Load a recording made with 'arcade play --record' or
'arcade simulate --record', play every frame through a fresh game and
compare the final state hash with the recorded one.

The game config and difficulty must match the ones used for recording.

Examples:
  arcade replay run.replay
  arcade replay run.replay --config ./my-castle.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to the game config YAML used for recording")
	replayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset used for recording")
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.LoadFile(args[0])
	if err != nil {
		fail("%v", err)
	}

	configureGame(rec.GameID, flagConfig, flagDifficulty)
	game, err := registry.Create(rec.GameID)
	if err != nil {
		fail("%v", err)
	}

	res, err := replay.Verify(game, rec)
	fmt.Printf("game:   %s\n", rec.GameID)
	fmt.Printf("seed:   %d\n", rec.Seed)
	fmt.Printf("frames: %d (%s)\n", res.Frames, rec.Duration())
	fmt.Printf("events: %d\n", len(res.Events))
	fmt.Printf("score:  %d\n", res.State.Score)

	switch {
	case errors.Is(err, replay.ErrMismatch):
		fmt.Fprintf(os.Stderr, "MISMATCH: %v\n", err)
		os.Exit(1)
	case err != nil:
		fail("%v", err)
	case rec.FinalHash == "":
		fmt.Println("result: played (no hash recorded)")
	default:
		fmt.Printf("result: OK %s\n", res.Hash)
	}
}
