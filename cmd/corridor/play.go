package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-corridor/internal/config"
	"github.com/vovakirdan/tui-corridor/internal/engine"
	"github.com/vovakirdan/tui-corridor/internal/platform/tui"
	"github.com/vovakirdan/tui-corridor/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagResume     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a campaign",
	Long: `Start a corridor campaign.

Controls:
  W/S        - Move forward/backward
  A/D        - Strafe
  Left/Right - Turn
  Space/F    - Fire
  E/Enter    - Interact (use exit)
  R          - Restart level (while dead)
  Q/Ctrl+C   - End run

Difficulty options:
  easy, medium, hard, hell

Examples:
  corridor play
  corridor play --difficulty hell
  corridor play --seed 42 --difficulty hard
  corridor play --resume autosave
  corridor play --config ./my-corridor.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, hell")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Resume from the named save slot")
}

func runPlay(cmd *cobra.Command, args []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyDifficultyPreset(&settings, flagDifficulty)

	// Size the view from the terminal when available
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		settings.Width = w
		settings.Height = h
		settings.Normalize()
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the run still works, just unsaved
		store = nil
	}

	var resume *engine.SaveRecord
	if flagResume != "" {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: cannot resume without a database")
			os.Exit(1)
		}
		resume, err = store.GetSave(flagResume)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
			os.Exit(1)
		}
		if resume == nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: no save in slot %q\n", flagResume)
			fmt.Fprintln(os.Stderr, "Run 'corridor saves' to list slots.")
			os.Exit(1)
		}
	}

	runErr := tui.Run(store, settings, flagSeed, resume, flagFPS)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
