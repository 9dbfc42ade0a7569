package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, "ID", "Title", "Features")
	fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, "--", "-----", "--------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, g.ID, g.Title, features(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// features lists the optional host integrations a game supports.
func features(gameID string) string {
	game, err := registry.Create(gameID)
	if err != nil {
		return ""
	}
	var out []string
	if _, ok := game.(registry.Persistent); ok {
		out = append(out, "progress")
	}
	if _, ok := game.(registry.Continuer); ok {
		out = append(out, "continue")
	}
	if _, ok := game.(registry.Hasher); ok {
		out = append(out, "replay")
	}
	return strings.Join(out, ", ")
}
