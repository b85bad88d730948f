package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-willy/internal/games/willy"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/platform/tui"
	"github.com/vovakirdan/tui-willy/internal/registry"
	"github.com/vovakirdan/tui-willy/internal/storage"
)

var flagLevelID string

var playCmd = &cobra.Command{
	Use:   "play [level-file]",
	Short: "Play a level",
	Long: `Play the built-in level, a level file, or a level from the levels
directory by id.

Controls:
  Arrows/WASD/HJKL  - Move and climb
  Space             - Jump
  Enter             - Start, play again
  P                 - Pause
  R                 - Try again (after game over)
  Esc/B             - Leave (when not running)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  willy play
  willy play levels/tower.yaml
  willy play --level tower --levels ./levels
  willy play --difficulty easy`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelID, "level", "", "Level id from the levels directory")
	_ = playCmd.RegisterFlagCompletionFunc("level", completeLevelIDs)
}

// completeLevelIDs offers the ids --level accepts.
func completeLevelIDs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ids, err := levels.NewLoader(expandHome(flagLevelsDir), logger).ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// resolveLevel picks the level from a file argument, the --level id or the built-in.
func resolveLevel(args []string) (levels.Level, error) {
	switch {
	case len(args) > 0:
		return levels.LoadFile(args[0])
	case flagLevelID != "":
		loader := levels.NewLoader(expandHome(flagLevelsDir), logger)
		lvl, err := loader.LoadByID(flagLevelID)
		if errors.Is(err, levels.ErrNotFound) {
			if ids, listErr := loader.ListIDs(); listErr == nil {
				return lvl, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
			}
		}
		return lvl, err
	default:
		return levels.Builtin(), nil
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	lvl, err := resolveLevel(args)
	if err != nil {
		return err
	}

	playable, err := lvl.Playable()
	if err != nil {
		return fmt.Errorf("level %s cannot be played: %w", lvl.ID, err)
	}
	if !wcore.GoalReachable(playable, willy.CurrentRules().HazardPolicy) {
		logger.Warn("the bell may be unreachable", "level", lvl.ID)
	}

	willy.SetLevel(lvl)
	game, err := registry.Create(willy.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - game still works
	store, err := storage.Open(expandHome(flagDBPath))
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "level", lvl.ID, "player", playerName())
	if _, err := tui.Run(game, store, runtimeConfig(), playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
