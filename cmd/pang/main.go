// pang is a Pang-style arcade game: shoot harpoons at bouncing bubbles that
// split in two until they are small enough to pop.
//
// Usage:
//
//	pang list                 - List game modes
//	pang play [game]          - Play in the terminal
//	pang menu                 - Pick mode, level and difficulty interactively
//	pang window               - Play in a desktop window
//	pang serve                - Start SSH server for remote play
//	pang scores [game]        - Show high scores
//	pang levels               - List, validate and export levels
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pang",
	Short: "Pang - pop bubbles with a harpoon",
	Long: `Pang is an arcade game where one or two players shoot harpoons at
bouncing bubbles. Every hit splits a bubble in two smaller ones until they
are small enough to pop. Clear every bubble before the clock runs out.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  menu     - Interactive picker for mode, level and difficulty
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List, validate and export levels

Examples:
  pang play
  pang play --players 2 --level 3
  pang menu
  pang window --scale 1.5
  pang serve --ssh :2222
  pang scores pang_coop`,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setupLogging routes game and host logs to --log-file. Without it logs are
// dropped, since the terminal belongs to the game.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pang",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	pang.SetLogger(logger)
	tui.SetLogger(logger)
	return nil
}
