package core

import (
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the fixed-size tile map of one level.
// The shape never changes; only cell contents do.
type Grid struct {
	cells [Height][Width]Tile
}

// NewGrid returns an all-empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// TileAt returns the tile at (x, y).
// Bounds are hard limits; there is no wrap-around.
func (g *Grid) TileAt(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return TileEmpty, outOfBounds(x, y)
	}
	return g.cells[y][x], nil
}

// at is TileAt for callers that already checked bounds.
func (g *Grid) at(p Pos) Tile {
	return g.cells[p.Y][p.X]
}

// Set writes t at (x, y).
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return outOfBounds(x, y)
	}
	g.cells[y][x] = t
	return nil
}

// HasSupportBelow reports whether an actor at (x, y) is held up.
// The last row always counts as supported.
func (g *Grid) HasSupportBelow(x, y int) bool {
	if y >= Height-1 {
		return true
	}
	if !g.InBounds(x, y+1) {
		return false
	}
	return isSupport(g.cells[y+1][x])
}

// Consume picks up a collectible at (x, y), leaving the cell empty.
// Returns true only when something was picked up.
func (g *Grid) Consume(x, y int) bool {
	if !g.InBounds(x, y) || g.cells[y][x] != TileCollectible {
		return false
	}
	g.cells[y][x] = TileEmpty
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal returns true if both grids hold the same tiles.
func (g *Grid) Equal(other *Grid) bool {
	return other != nil && g.cells == other.cells
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for y := range Height {
		for x := range Width {
			if g.cells[y][x] == t {
				n++
			}
		}
	}
	return n
}

// Positions returns the set of cells holding t.
func (g *Grid) Positions(t Tile) mapset.Set[Pos] {
	set := mapset.New[Pos]()
	g.ForEach(func(p Pos, cell Tile) {
		if cell == t {
			set.Put(p)
		}
	})
	return set
}

// ForEach visits every cell in row-major order.
func (g *Grid) ForEach(fn func(p Pos, t Tile)) {
	for y := range Height {
		for x := range Width {
			fn(Pos{X: x, Y: y}, g.cells[y][x])
		}
	}
}

// DecodeRows builds an authored grid from glyph rows.
// Exactly Height rows of exactly Width glyphs are required, and at most
// one actor marker may appear.
func DecodeRows(rows []string) (*Grid, error) {
	if len(rows) != Height {
		return nil, levelErrorf(CodeBadDimensions, "expected %d rows, got %d", Height, len(rows))
	}

	g := NewGrid()
	markers := 0
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != Width {
			return nil, levelErrorf(CodeBadDimensions, "row %d: expected %d cells, got %d", y, Width, n)
		}
		x := 0
		for _, r := range row {
			t, ok := ParseGlyph(r)
			if !ok {
				return nil, levelErrorf(CodeUnknownTile, "row %d col %d: unrecognized tile %q", y, x, r)
			}
			if t == TileActor {
				markers++
				if markers > 1 {
					return nil, levelErrorf(CodeMultipleMarkers, "second actor marker at (%d,%d)", x, y)
				}
			}
			g.cells[y][x] = t
			x++
		}
	}
	return g, nil
}

// EncodeRows returns the grid as glyph rows.
func (g *Grid) EncodeRows() []string {
	rows := make([]string, Height)
	var sb strings.Builder
	for y := range Height {
		sb.Reset()
		for x := range Width {
			sb.WriteRune(g.cells[y][x].Glyph())
		}
		rows[y] = sb.String()
	}
	return rows
}

// DecodeText parses the textual form. The last line may omit its newline
// and CRLF line endings are accepted; the form EncodeText writes decodes
// and re-encodes byte for byte.
func DecodeText(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return DecodeRows(strings.Split(text, "\n"))
}

// EncodeText returns the textual form: Height lines, each ending in '\n'.
func (g *Grid) EncodeText() string {
	return strings.Join(g.EncodeRows(), "\n") + "\n"
}
