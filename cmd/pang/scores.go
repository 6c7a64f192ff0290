package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pang/internal/registry"
	"github.com/vovakirdan/tui-pang/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for a game mode (default "pang").
Co-op matches store one entry per player.

Examples:
  pang scores
  pang scores pang_coop --limit 20
  pang scores --stats
  pang scores pang --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show totals for every game mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "pang"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !flagScoresStats && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pang list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		err = printStats(store)
	case flagScoresClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s\n", gameID)
		}
	default:
		err = printScores(store, gameID)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pang play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-15s  %s\n", "Rank", "Score", "Player", "Level", "Ended", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-15s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  P%-5d  %-5d  %-15s  %s\n",
			i+1, e.Score, e.Player, e.Level, e.EndReason, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-7s  %-6s  %-10s  %-8s  %s\n", "Game", "Results", "Best", "Best level", "Average", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %-7d  %-6d  %-10d  %-8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.BestLevel, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
