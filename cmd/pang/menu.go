package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mode, level and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to move between rows, Left/Right to change the level
and difficulty, Enter to play. After a game you return to the menu with
your last choices kept.

Controls:
  Up/Down/j/k  - Move between rows
  Left/Right   - Change level or difficulty
  Enter/Space  - Play
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  pang menu
  pang menu --fps 30
  pang menu --level-file ./my-levels.yaml
  pang menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	start, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := terminalConfig()
	last := tui.MenuSelection{
		GameID:     "pang",
		StartLevel: start,
		Difficulty: config.ParsePreset(flagDifficulty),
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg, last)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		last = menuResult.MenuSelection

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := tui.NewGame(last)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
