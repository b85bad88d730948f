package formats

import (
	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

// ParseText decodes 25 lines of 40 glyphs. Text files carry no id or name.
func ParseText(data []byte) (Level, error) {
	g, err := core.DecodeText(string(data))
	if err != nil {
		return Level{}, err
	}
	return Level{Grid: g}, nil
}

// EncodeText writes the glyph rows, one line each.
func EncodeText(l Level) []byte {
	return []byte(l.Grid.EncodeText())
}
