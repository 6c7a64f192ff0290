package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/levels"
	"github.com/vovakirdan/tui-pang/internal/platform/tui"
	"github.com/vovakirdan/tui-pang/internal/registry"
	"github.com/vovakirdan/tui-pang/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelFile  string
	flagPlayers    int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to "pang"; use
--players 2 or "pang_coop" for two players on one keyboard.

Controls:
  Left/Right  - Move player 1 (Down stops)
  Space/Up    - Player 1 shoots
  A/D         - Move player 2 (S stops)
  W           - Player 2 shoots
  Mouse click - Place a wall until the next life is lost
  P           - Pause
  R           - Restart (after game over)
  Esc         - Quit (when paused or over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, 60 seconds per level, floatier bubbles
  normal - Values from the config file
  hard   - 2 lives, 30 seconds per level, heavier bubbles, bigger penalty

Examples:
  pang play
  pang play pang_coop
  pang play --players 2 --difficulty easy
  pang play --level 4
  pang play --level-file ./my-levels.yaml
  pang play --config ./my-pang.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of local players (1 or 2)")
}

// addGameFlags registers the flags that shape a match.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Level number to start at (1-based index into the level table)")
	cmd.Flags().StringVar(&flagLevelFile, "level-file", "", "YAML, JSON or TOML file with extra levels appended after the built-in ones")
}

// applyGameFlags hands the match flags to the game package and returns the
// level index matches start at.
func applyGameFlags() (int, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return 0, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	pang.SetConfigPath(flagConfig)
	pang.SetDifficultyPreset(flagDifficulty)

	if flagLevelFile != "" {
		descs, err := loadLevelFile(flagLevelFile)
		if err != nil {
			return 0, err
		}
		pang.AddLevels(descs, true)
	}

	if flagLevel > 0 {
		table := pang.LevelTable()
		if flagLevel > len(table) {
			return 0, fmt.Errorf("level %d out of range (1-%d)", flagLevel, len(table))
		}
		pang.SetStartLevel(flagLevel - 1)
	}
	return pang.StartLevel(), nil
}

// loadLevelFile reads and validates a level file against the active config.
func loadLevelFile(path string) ([]levels.Descriptor, error) {
	descs, err := levels.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	for i, d := range descs {
		if err := d.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", path, i+1, err)
		}
	}
	return descs, nil
}

// loadConfig loads the game config with the difficulty preset applied.
func loadConfig() (config.PangConfig, error) {
	cfg, err := config.LoadPang(flagConfig)
	if err != nil {
		return cfg, err
	}
	if p := config.ParsePreset(flagDifficulty); p != "" {
		config.ApplyPangPreset(&cfg, p)
	}
	return cfg, nil
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil so play goes on
// without high scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("no score storage", "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "pang"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagPlayers == 2 && gameID == "pang" {
		gameID = "pang_coop"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pang list' to see available modes.")
		os.Exit(1)
	}

	if _, err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
