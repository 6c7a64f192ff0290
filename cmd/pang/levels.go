package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pang/internal/games/pang"
	"github.com/vovakirdan/tui-pang/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List, validate and export levels",
	Long: `Show the level table: the built-in levels followed by the levels of
--level-file, if given.

Level files are YAML, JSON or TOML. A file holds one level or a list:

  - backgroundId: city
    level: 6
    isWallPresent: true
    wallsPosX: [390]
    Bubbles:
      - {centerX: 200, centerY: 150, radius: 40}

Examples:
  pang levels
  pang levels validate ./my-levels.yaml
  pang levels export 3 > level3.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a level file against the game config",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsValidate,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <level>",
	Short: "Print a built-in level as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsExport,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Level file appended after the built-in levels")
	levelsCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.AddCommand(levelsValidateCmd)
	levelsCmd.AddCommand(levelsExportCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelFile != "" {
		descs, err := loadLevelFile(flagLevelFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		pang.AddLevels(descs, false)
	}

	fmt.Printf("  %-3s  %-5s  %-12s  %-7s  %-4s  %s\n", "#", "Level", "Background", "Bubbles", "Flag", "Walls")
	fmt.Printf("  %-3s  %-5s  %-12s  %-7s  %-4s  %s\n", "-", "-----", "----------", "-------", "----", "-----")
	for i, d := range pang.LevelTable() {
		walls := "-"
		if len(d.WallsPosX) > 0 {
			walls = fmt.Sprint(d.WallsPosX)
		}
		flag := "no"
		if d.IsWallPresent {
			flag = "yes"
		}
		fmt.Printf("  %-3d  %-5d  %-12s  %-7d  %-4s  %s\n", i+1, d.Level, d.BackgroundID, len(d.Bubbles), flag, walls)
	}
}

func runLevelsValidate(_ *cobra.Command, args []string) {
	descs, err := loadLevelFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d valid level(s)\n", args[0], len(descs))
}

func runLevelsExport(_ *cobra.Command, args []string) {
	table := levels.Builtin()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(table) {
		fmt.Fprintf(os.Stderr, "Error: level must be a number from 1 to %d\n", len(table))
		os.Exit(1)
	}

	data, err := levels.Encode(table[n-1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
