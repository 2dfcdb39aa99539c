package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zone-arcade/internal/registry"
	"github.com/vovakirdan/zone-arcade/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores and recent runs for a variant",
	Long: `Display the top 10 high scores, a few statistics and the most
recent runs for the specified variant.

Examples:
  zonearcade scores zones
  zonearcade scores zones_ranged --runs 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'zonearcade list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'zonearcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Wins: %d  Furthest zone: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Wins, stats.BestZone+1)

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-16s  %-8s  %-4s  %-3s  %-5s  %s\n", "Date", "Score", "Zone", "Lvl", "Runes", "Outcome")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8d  %-4d  %-3d  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Zone+1, r.Level, r.Runes, r.Outcome)
	}
	return nil
}
