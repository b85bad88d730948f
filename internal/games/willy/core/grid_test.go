package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

func TestTileAtBounds(t *testing.T) {
	g := core.NewGrid()

	testCases := []struct {
		x, y    int
		wantErr bool
	}{
		{0, 0, false},
		{core.Width - 1, core.Height - 1, false},
		{-1, 0, true},
		{0, -1, true},
		{core.Width, 0, true},
		{0, core.Height, true},
	}

	for _, tc := range testCases {
		_, err := g.TileAt(tc.x, tc.y)
		if tc.wantErr {
			if !errors.Is(err, core.ErrOutOfBounds) {
				t.Errorf("TileAt(%d, %d): expected ErrOutOfBounds, got %v", tc.x, tc.y, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("TileAt(%d, %d): unexpected error %v", tc.x, tc.y, err)
		}
	}
}

func TestTileClassification(t *testing.T) {
	testCases := []struct {
		tile      core.Tile
		passable  bool
		climbable bool
	}{
		{core.TileEmpty, true, false},
		{core.TilePlatform, false, false},
		{core.TileLadder, true, true},
		{core.TileCollectible, true, false},
		{core.TileHazard, false, false},
		{core.TileGoal, true, false},
		{core.TileActor, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if got := core.IsPassable(tc.tile); got != tc.passable {
				t.Errorf("IsPassable() = %v, expected %v", got, tc.passable)
			}
			if got := core.IsClimbable(tc.tile); got != tc.climbable {
				t.Errorf("IsClimbable() = %v, expected %v", got, tc.climbable)
			}
		})
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for _, tile := range core.AllTiles {
		got, ok := core.ParseGlyph(tile.Glyph())
		if !ok || got != tile {
			t.Errorf("ParseGlyph(%q) = %v, %v; expected %v", tile.Glyph(), got, ok, tile)
		}
	}
	if _, ok := core.ParseGlyph('x'); ok {
		t.Error("ParseGlyph('x') should fail")
	}
}

func TestHasSupportBelow(t *testing.T) {
	g := core.NewGrid()
	mustSet(t, g, 3, 10, core.TilePlatform)
	mustSet(t, g, 4, 10, core.TileLadder)
	mustSet(t, g, 5, 10, core.TileCollectible)
	mustSet(t, g, 6, 10, core.TileHazard)

	testCases := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"platform below", 3, 9, true},
		{"ladder below", 4, 9, true},
		{"collectible below", 5, 9, false},
		{"hazard below", 6, 9, false},
		{"empty below", 7, 9, false},
		{"last row", 7, core.Height - 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.HasSupportBelow(tc.x, tc.y); got != tc.expected {
				t.Errorf("HasSupportBelow(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestConsumeIdempotent(t *testing.T) {
	g := core.NewGrid()
	mustSet(t, g, 5, 17, core.TileCollectible)

	if !g.Consume(5, 17) {
		t.Fatal("first Consume should report a pickup")
	}
	if tile := mustTile(t, g, 5, 17); tile != core.TileEmpty {
		t.Fatalf("expected Empty after first Consume, got %v", tile)
	}

	if g.Consume(5, 17) {
		t.Error("second Consume should not report a pickup")
	}
	if tile := mustTile(t, g, 5, 17); tile != core.TileEmpty {
		t.Errorf("expected Empty after second Consume, got %v", tile)
	}

	mustSet(t, g, 6, 17, core.TileGoal)
	if g.Consume(6, 17) {
		t.Error("Consume on a goal should be a no-op")
	}
	if tile := mustTile(t, g, 6, 17); tile != core.TileGoal {
		t.Errorf("goal should be untouched, got %v", tile)
	}
}

func TestTextRoundTrip(t *testing.T) {
	texts := map[string]string{
		"default":  core.DefaultLevel().EncodeText(),
		"template": core.EditorTemplate().EncodeText(),
		"empty":    core.NewGrid().EncodeText(),
	}

	for name, text := range texts {
		t.Run(name, func(t *testing.T) {
			g, err := core.DecodeText(text)
			if err != nil {
				t.Fatalf("DecodeText failed: %v", err)
			}
			if got := g.EncodeText(); got != text {
				t.Errorf("round trip mismatch:\n%s\n---\n%s", got, text)
			}
		})
	}
}

func TestEncodeTextEndsLines(t *testing.T) {
	text := core.DefaultLevel().EncodeText()

	if !strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\n\n") {
		t.Errorf("expected exactly one trailing newline, got %q", text[len(text)-3:])
	}
	if lines := strings.Count(text, "\n"); lines != core.Height {
		t.Errorf("expected %d lines, got %d", core.Height, lines)
	}
}

func TestDecodeTextLenientEndings(t *testing.T) {
	text := core.DefaultLevel().EncodeText()

	for _, variant := range []string{strings.TrimSuffix(text, "\n"), strings.ReplaceAll(text, "\n", "\r\n")} {
		g, err := core.DecodeText(variant)
		if err != nil {
			t.Fatalf("DecodeText failed: %v", err)
		}
		if !g.Equal(core.DefaultLevel()) {
			t.Error("decoded grid differs from default level")
		}
	}
}

func TestDecodeRowsErrors(t *testing.T) {
	valid := core.NewGrid().EncodeRows()

	shortRow := append([]string(nil), valid...)
	shortRow[3] = strings.Repeat(" ", core.Width-1)

	unknown := append([]string(nil), valid...)
	unknown[4] = "x" + strings.Repeat(" ", core.Width-1)

	twoMarkers := append([]string(nil), valid...)
	twoMarkers[5] = "@@" + strings.Repeat(" ", core.Width-2)

	testCases := []struct {
		name string
		rows []string
		code string
	}{
		{"too few rows", valid[:core.Height-1], core.CodeBadDimensions},
		{"short row", shortRow, core.CodeBadDimensions},
		{"unknown glyph", unknown, core.CodeUnknownTile},
		{"two markers", twoMarkers, core.CodeMultipleMarkers},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.DecodeRows(tc.rows)
			if !errors.Is(err, core.ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel, got %v", err)
			}
			var lvlErr *core.LevelError
			if !errors.As(err, &lvlErr) {
				t.Fatalf("expected *LevelError, got %T", err)
			}
			if lvlErr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, lvlErr.Code)
			}
		})
	}
}

func TestNewLevelExtractsMarker(t *testing.T) {
	authored := core.DefaultLevel()

	lvl, err := core.NewLevel(authored)
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}

	if !lvl.HasSpawn || lvl.Spawn != core.P(2, 22) {
		t.Errorf("expected spawn (2,22), got %v (has=%v)", lvl.Spawn, lvl.HasSpawn)
	}
	if n := lvl.Grid.Count(core.TileActor); n != 0 {
		t.Errorf("live grid should hold no markers, found %d", n)
	}
	if tile := mustTile(t, lvl.Grid, 2, 22); tile != core.TileEmpty {
		t.Errorf("marker cell should be Empty, got %v", tile)
	}
	if tile := mustTile(t, authored, 2, 22); tile != core.TileActor {
		t.Error("authored grid should not be modified")
	}

	if !lvl.Authored().Equal(authored) {
		t.Error("Authored() should restore the original grid")
	}
}

func TestNewLevelWithoutMarker(t *testing.T) {
	lvl, err := core.NewLevel(core.NewGrid())
	if err != nil {
		t.Fatalf("NewLevel failed: %v", err)
	}
	if lvl.HasSpawn {
		t.Error("expected no spawn")
	}
	if lvl.Spawn != core.DefaultSpawn {
		t.Errorf("expected default spawn, got %v", lvl.Spawn)
	}
}

func TestNewLevelRejectsTwoMarkers(t *testing.T) {
	g := core.NewGrid()
	mustSet(t, g, 1, 1, core.TileActor)
	mustSet(t, g, 2, 1, core.TileActor)

	if _, err := core.NewLevel(g); !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestGridClone(t *testing.T) {
	g := core.DefaultLevel()
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Fatal("clone should be equal to original")
	}

	g.Consume(5, 17)
	if tile := mustTile(t, clone, 5, 17); tile != core.TileCollectible {
		t.Error("clone should not be affected by original modification")
	}
}

func mustSet(t *testing.T, g *core.Grid, x, y int, tile core.Tile) {
	t.Helper()
	if err := g.Set(x, y, tile); err != nil {
		t.Fatalf("Set(%d, %d): %v", x, y, err)
	}
}

func mustTile(t *testing.T, g *core.Grid, x, y int) core.Tile {
	t.Helper()
	tile, err := g.TileAt(x, y)
	if err != nil {
		t.Fatalf("TileAt(%d, %d): %v", x, y, err)
	}
	return tile
}
