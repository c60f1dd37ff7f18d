package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-corridor/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 leaderboard entries.

Examples:
  corridor scores`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'corridor play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %-6s  %-8s  %s\n",
		"Rank", "Name", "Score", "Level", "Kills", "Diff", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %-6s  %-8s  %s\n",
		"----", "----", "-----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-6d  %-6d  %-8s  %s\n",
			i+1, entry.Name, entry.Score, entry.LevelIndex+1, entry.Kills,
			entry.Difficulty, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
