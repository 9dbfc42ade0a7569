package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-arcade/internal/registry"
	"github.com/vovakirdan/castle-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and saved progress for a game",
	Long: `Display the top high scores and the saved progress for the specified game.

Examples:
  arcade scores castle
  arcade scores shadowlands --limit 20
  arcade scores shadowlands --reset`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all scores and saved progress for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresReset {
		resetScores(store, gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if p, err := store.LoadProgress(gameID); err == nil && p != nil {
		fmt.Printf("Saved progress: level %d, best score %d\n", p.MaxLevel, p.HighScore)
		fmt.Println()
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}

func resetScores(store *storage.Store, gameID string) {
	if err := store.ClearScores(gameID); err != nil {
		fail("%v", err)
	}
	if err := store.ClearProgress(gameID); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Cleared scores and progress for %s.\n", gameID)
}
