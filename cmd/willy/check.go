package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-willy/internal/games/willy"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parse a level file and check that it can be played: exactly one
Willy and at least one bell. Also reports whether the bell looks
reachable and the best score the level allows.

Examples:
  willy check levels/tower.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	lvl, err := levels.LoadFile(args[0])
	if err != nil {
		return err
	}

	stats := wcore.ComputeStats(lvl.Grid)
	fmt.Printf("Level %s (%s)\n", lvl.ID, lvl.Title())
	fmt.Printf("  %s\n", stats)

	playable, err := lvl.Playable()
	if err != nil {
		return fmt.Errorf("level cannot be played: %w", err)
	}

	rules := willy.CurrentRules()
	fmt.Printf("  best possible score: %d\n", stats.MaxScore(rules.InitialBonus))

	if !wcore.GoalReachable(playable, rules.HazardPolicy) {
		logger.Warn("the bell may be unreachable", "level", lvl.ID)
		fmt.Println("  warning: the bell may be unreachable")
		return nil
	}
	fmt.Println("  ok")
	return nil
}
