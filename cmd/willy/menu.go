package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-willy/internal/games/willy"
	"github.com/vovakirdan/tui-willy/internal/games/willy/editor"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/platform/tui"
	"github.com/vovakirdan/tui-willy/internal/registry"
	"github.com/vovakirdan/tui-willy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Willy the Worm in interactive menu mode.

From the menu you can play the selected level, pick another level from
the --levels directory, open the level editor or browse high scores.
After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Levels saved from the editor go to custom.yaml in the levels directory.

Examples:
  willy menu
  willy menu --levels ./levels --fps 20`,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runMenu,
}

// menuLevels returns the built-in level followed by the directory's levels.
func menuLevels(loader *levels.Loader) []levels.Level {
	all := []levels.Level{levels.Builtin()}
	found, err := loader.LoadAll()
	if err != nil {
		logger.Warn("could not load levels", "error", err)
		return all
	}
	for _, l := range found {
		if l.ID != levels.BuiltinID {
			all = append(all, l)
		}
	}
	return all
}

func runMenu(_ *cobra.Command, _ []string) error {
	levelsDir := expandHome(flagLevelsDir)
	loader := levels.NewLoader(levelsDir, logger)
	all := menuLevels(loader)
	current := all[0]

	// Continue without storage - game still works
	store, err := storage.Open(expandHome(flagDBPath))
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg, current.Title())
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		switch result.Choice {
		case tui.ChoicePlay:
			willy.SetLevel(current)
			game, err := registry.Create(willy.GameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			logger.Info("starting game", "level", current.ID)
			back, err := tui.Run(game, store, cfg, playerName())
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !back {
				return nil
			}

		case tui.ChoiceLevels:
			picked, err := tui.RunLevelSelector(all, current.ID, cfg)
			if err != nil {
				return err
			}
			if picked != nil {
				current = *picked
			}

		case tui.ChoiceEditor:
			out := filepath.Join(levelsDir, "custom.yaml")
			back, err := tui.RunEditor(editor.New(), levels.Level{ID: "custom", Name: "Custom"}, out, cfg)
			if err != nil {
				return fmt.Errorf("running editor: %w", err)
			}
			all = menuLevels(loader)
			if !back {
				return nil
			}

		case tui.ChoiceScores:
			if store == nil {
				logger.Warn("no scores database")
				continue
			}
			back, err := tui.RunScoreboard(store, willy.GameID, all, current.ID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		}
	}
}
