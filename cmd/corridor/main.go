// corridor is a terminal corridor shooter with procedurally generated levels.
//
// Usage:
//
//	corridor play            - Start a campaign
//	corridor serve           - Start SSH server for remote play
//	corridor scores          - Show the leaderboard
//	corridor saves           - List save slots
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set campaign seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.corridor/corridor.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "corridor",
	Short: "Corridor - a terminal corridor shooter",
	Long: `Corridor is a first-person corridor shooter rendered entirely in your
terminal. Every level is generated from the campaign seed: clear the kill
objective, claim checkpoints and find the exit.

Available commands:
  play     - Start a campaign (or resume a save)
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  saves    - List save slots

Examples:
  corridor play
  corridor play --difficulty hard --seed 42
  corridor play --resume autosave
  corridor serve --ssh :2222
  corridor scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Campaign seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.corridor/corridor.db", "Path to saves and leaderboard database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
}
