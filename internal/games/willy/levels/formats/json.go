package formats

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

// ParseJSON decodes an array of rows, each an array of one-glyph strings.
func ParseJSON(data []byte) (Level, error) {
	var cells [][]string
	if err := json.Unmarshal(data, &cells); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}

	rows := make([]string, len(cells))
	for y, row := range cells {
		var sb strings.Builder
		for x, cell := range row {
			if utf8.RuneCountInString(cell) != 1 {
				return Level{}, &core.LevelError{
					Code:    core.CodeUnknownTile,
					Message: fmt.Sprintf("cell (%d,%d) holds %q, expected a single glyph", x, y, cell),
				}
			}
			sb.WriteString(cell)
		}
		rows[y] = sb.String()
	}

	g, err := core.DecodeRows(rows)
	if err != nil {
		return Level{}, err
	}
	return Level{Grid: g}, nil
}

// EncodeJSON writes the grid as an array of rows of one-glyph strings.
func EncodeJSON(l Level) ([]byte, error) {
	rows := l.Grid.EncodeRows()
	cells := make([][]string, len(rows))
	for y, row := range rows {
		cells[y] = make([]string, 0, core.Width)
		for _, r := range row {
			cells[y] = append(cells[y], string(r))
		}
	}
	return json.Marshal(cells)
}
