package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-corridor/internal/storage"
)

var flagDeleteSave string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long: `List all save slots, most recent first.

Resume a slot with 'corridor play --resume <name>'.

Examples:
  corridor saves
  corridor saves --delete autosave`,
	Args: cobra.NoArgs,
	Run:  runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDeleteSave, "delete", "", "Delete the named save slot")
}

func runSaves(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDeleteSave != "" {
		if err := store.DeleteSave(flagDeleteSave); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted slot %q\n", flagDeleteSave)
		return
	}

	saves, err := store.ListSaves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Save slots")
	fmt.Println()

	if len(saves) == 0 {
		fmt.Println("No saves yet. The game autosaves at checkpoints and level exits.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-6s  %-8s  %s\n", "Slot", "Score", "Level", "Diff", "Saved")
	fmt.Printf("  %-16s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "-----")

	for _, rec := range saves {
		fmt.Printf("  %-16s  %-8d  %-6d  %-8s  %s\n",
			rec.Name, rec.Score, rec.LevelIndex+1, rec.Difficulty,
			rec.SavedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Resume with: corridor play --resume <slot>")
}
