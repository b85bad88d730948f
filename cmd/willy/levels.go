package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List levels",
	Long: `Shows the built-in level and every level file in a directory.
Defaults to the --levels directory. Files that fail to parse are skipped
with a warning.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, args []string) error {
	dir := expandHome(flagLevelsDir)
	if len(args) > 0 {
		dir = args[0]
	}

	found, err := levels.NewLoader(dir, logger).LoadAll()
	if err != nil {
		return err
	}
	all := []levels.Level{levels.Builtin()}
	for _, l := range found {
		if l.ID != levels.BuiltinID {
			all = append(all, l)
		}
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("Levels in %s:\n\n", dir)
	fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxIDLen, "ID", "Presents", "Status", "Name")
	fmt.Printf("  %-*s  %-8s  %-8s  %s\n", maxIDLen, "--", "--------", "------", "----")

	for _, l := range all {
		status := "ok"
		if _, err := l.Playable(); err != nil {
			status = "broken"
		}
		presents := wcore.ComputeStats(l.Grid).Collectibles
		fmt.Printf("  %-*s  %-8d  %-8s  %s\n", maxIDLen, l.ID, presents, status, l.Title())
	}

	fmt.Println()
	fmt.Println("Run 'willy play --level <id>' to play a level.")
	return nil
}
