package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a level to another format",
	Long: `Read a level and write it in the format named by the output extension.

Formats:
  .txt/.lvl  - 25 rows of 40 glyphs
  .json      - array of rows, each an array of one-glyph strings
  .yaml/.yml - id, name, rows and metadata

Examples:
  willy convert tower.txt tower.yaml
  willy convert export.json level.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(_ *cobra.Command, args []string) error {
	lvl, err := levels.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := levels.SaveFile(args[1], lvl); err != nil {
		return err
	}
	logger.Info("converted level", "from", args[0], "to", args[1], "id", lvl.ID)
	return nil
}
