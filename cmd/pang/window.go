package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real key up/down events.

Controls:
  Left/Right  - Move player 1
  Space       - Player 1 shoots
  A/D         - Move player 2
  W           - Player 2 shoots
  Mouse click - Place a wall until the next life is lost
  P           - Pause
  R           - Restart (after game over)
  Esc         - Quit

Examples:
  pang window
  pang window --players 2 --scale 1.5
  pang window --level 3 --difficulty hard`,
	Run: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of local players (1 or 2)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	start, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal is free here, so log to stderr unless a file was given
	l := logger
	if flagLogFile == "" {
		l = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "pang"})
		if flagDebug {
			l.SetLevel(log.DebugLevel)
		}
	}

	gameID := "pang"
	if flagPlayers == 2 {
		gameID = "pang_coop"
	}

	store := openStore()
	runErr := window.Run(window.Options{
		GameID:     gameID,
		Players:    flagPlayers,
		Config:     cfg,
		Levels:     pang.LevelTable(),
		StartLevel: start,
		Seed:       flagSeed,
		TPS:        flagFPS,
		Scale:      flagScale,
		Store:      store,
		Logger:     l,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
