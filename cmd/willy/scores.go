package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-willy/internal/games/willy"
	"github.com/vovakirdan/tui-willy/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 scores of a level, or of every level with scores
when no level id is given.

Examples:
  willy scores
  willy scores tower
  willy scores tower --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the scores of the given level")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(expandHome(flagDBPath))
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if len(args) == 0 {
			return errors.New("--clear needs a level id")
		}
		if err := store.ClearScores(willy.GameID, args[0]); err != nil {
			return err
		}
		logger.Info("cleared scores", "level", args[0])
		return nil
	}

	ids := args
	if len(ids) == 0 {
		if ids, err = store.Levels(willy.GameID); err != nil {
			return err
		}
	}

	if len(ids) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'willy play' to set the first high score!")
		return nil
	}

	for i, id := range ids {
		if i > 0 {
			fmt.Println()
		}
		if err := printLevelScores(store, id); err != nil {
			return err
		}
	}
	return nil
}

func printLevelScores(store *storage.Store, levelID string) error {
	scores, err := store.TopScores(willy.GameID, levelID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", levelID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "----", "------", "-----", "------", "----")

	for i, entry := range scores {
		result := "--"
		if entry.Completed {
			result = "Ding!"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6s  %s\n", i+1, entry.Player, entry.Score, result, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(willy.GameID, levelID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetLevelStats(willy.GameID, levelID); err == nil {
		fmt.Printf("Runs: %d, bell rung: %d, average: %.0f\n", stats.Runs, stats.Completed, stats.AvgScore)
	}
	return nil
}
