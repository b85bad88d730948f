package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-willy/internal/games/willy/editor"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/platform/tui"
)

var (
	flagEditIn  string
	flagEditOut string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Build or change a level",
	Long: `Open the level editor. Without --in a blank level is started: a floor
along the bottom with Willy in the corner.

Controls:
  Arrows/HJKL  - Move the cursor
  1-7          - Pick a tool (platform, ladder, present, ball, bell, willy, eraser)
  Space/Enter  - Place the tool
  T            - Test play the level (Esc returns to the editor)
  Ctrl+S       - Save to the --out file
  Ctrl+N       - Clear to a blank level
  Esc          - Back
  Q/Ctrl+C     - Quit

The output format follows the --out extension: .txt, .json or .yaml.

Examples:
  willy edit --out levels/mine.txt
  willy edit --in levels/tower.yaml
  willy edit --in old.json --out new.yaml`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationInteractive: "true"},
	RunE:        runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditIn, "in", "", "Level file to open")
	editCmd.Flags().StringVar(&flagEditOut, "out", "", "File to save to (defaults to --in)")
}

func runEdit(_ *cobra.Command, _ []string) error {
	out := flagEditOut
	if out == "" {
		out = flagEditIn
	}

	doc := editor.New()
	var source levels.Level
	if flagEditIn != "" {
		lvl, err := levels.LoadFile(flagEditIn)
		if err != nil {
			return err
		}
		if doc, err = editor.FromGrid(lvl.Grid); err != nil {
			return fmt.Errorf("opening %s: %w", flagEditIn, err)
		}
		source = lvl
	} else if out != "" {
		base := filepath.Base(out)
		source.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}

	logger.Info("starting editor", "in", flagEditIn, "out", out)
	if _, err := tui.RunEditor(doc, source, out, runtimeConfig()); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
