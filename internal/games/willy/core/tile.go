package core

// Tile is the content of a single grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TilePlatform
	TileLadder
	TileCollectible
	TileHazard
	TileGoal
	// TileActor marks the spawn point in authored grids only.
	// A live grid never contains it.
	TileActor
)

// Glyphs used by the textual level format.
const (
	GlyphEmpty       = ' '
	GlyphPlatform    = '═'
	GlyphLadder      = '║'
	GlyphCollectible = '☼'
	GlyphHazard      = 'o'
	GlyphGoal        = '♪'
	GlyphActor       = '@'
)

// AllTiles lists every tile in declaration order.
var AllTiles = []Tile{
	TileEmpty,
	TilePlatform,
	TileLadder,
	TileCollectible,
	TileHazard,
	TileGoal,
	TileActor,
}

// Glyph returns the serialized rune for the tile.
func (t Tile) Glyph() rune {
	switch t {
	case TileEmpty:
		return GlyphEmpty
	case TilePlatform:
		return GlyphPlatform
	case TileLadder:
		return GlyphLadder
	case TileCollectible:
		return GlyphCollectible
	case TileHazard:
		return GlyphHazard
	case TileGoal:
		return GlyphGoal
	case TileActor:
		return GlyphActor
	default:
		return '?'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TilePlatform:
		return "Platform"
	case TileLadder:
		return "Ladder"
	case TileCollectible:
		return "Collectible"
	case TileHazard:
		return "Hazard"
	case TileGoal:
		return "Goal"
	case TileActor:
		return "Actor"
	default:
		return "Unknown"
	}
}

// ParseGlyph decodes a serialized rune.
func ParseGlyph(r rune) (Tile, bool) {
	switch r {
	case GlyphEmpty:
		return TileEmpty, true
	case GlyphPlatform:
		return TilePlatform, true
	case GlyphLadder:
		return TileLadder, true
	case GlyphCollectible:
		return TileCollectible, true
	case GlyphHazard:
		return TileHazard, true
	case GlyphGoal:
		return TileGoal, true
	case GlyphActor:
		return TileActor, true
	default:
		return TileEmpty, false
	}
}

// IsPassable reports whether the actor may occupy a cell holding t.
func IsPassable(t Tile) bool {
	switch t {
	case TileEmpty, TileCollectible, TileGoal, TileLadder:
		return true
	case TilePlatform, TileHazard:
		return false
	case TileActor:
		// Never present in a live grid.
		return false
	default:
		return false
	}
}

// IsClimbable reports whether Up/Down are allowed while standing on t.
func IsClimbable(t Tile) bool {
	switch t {
	case TileLadder:
		return true
	case TileEmpty, TilePlatform, TileCollectible, TileHazard, TileGoal, TileActor:
		return false
	default:
		return false
	}
}

// isSupport reports whether t holds up an actor standing directly above it.
func isSupport(t Tile) bool {
	switch t {
	case TilePlatform, TileLadder:
		return true
	default:
		return false
	}
}
