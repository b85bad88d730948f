package editor

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels/formats"
)

func TestNewDocumentIsTemplate(t *testing.T) {
	d := New()

	if !d.grid.Equal(core.EditorTemplate()) {
		t.Error("new document should hold the template")
	}
	if spawn, ok := d.Spawn(); !ok || spawn != core.DefaultSpawn {
		t.Errorf("expected spawn %v, got %v (%v)", core.DefaultSpawn, spawn, ok)
	}
	if d.Tool() != ToolPlatform {
		t.Errorf("expected platform tool, got %v", d.Tool())
	}
	if d.Dirty() {
		t.Error("new document should not be dirty")
	}
}

func TestPlaceTools(t *testing.T) {
	d := New()

	for i, tool := range AllTools {
		if tool == ToolWilly {
			continue
		}
		d.SelectTool(tool)
		if err := d.Place(i, 5); err != nil {
			t.Fatalf("Place(%v): %v", tool, err)
		}
		got, _ := d.TileAt(i, 5)
		if got != tool.Tile() {
			t.Errorf("%v: expected %v, got %v", tool, tool.Tile(), got)
		}
	}

	if !d.Dirty() {
		t.Error("document should be dirty after edits")
	}
}

func TestPlaceWillyMovesMarker(t *testing.T) {
	d := New()
	d.SelectTool(ToolWilly)

	if err := d.Place(10, 10); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if n := d.grid.Count(core.TileActor); n != 1 {
		t.Errorf("expected exactly one marker, got %d", n)
	}
	if old, _ := d.TileAt(2, 22); old != core.TileEmpty {
		t.Errorf("old marker should be cleared, got %v", old)
	}
	if spawn, ok := d.Spawn(); !ok || spawn != core.P(10, 10) {
		t.Errorf("expected spawn (10,10), got %v", spawn)
	}
}

func TestEraseMarker(t *testing.T) {
	d := New()
	d.SelectTool(ToolEraser)

	if err := d.Place(2, 22); err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if _, ok := d.Spawn(); ok {
		t.Error("erasing the marker should remove the spawn")
	}

	var lvlErr *core.LevelError
	if err := d.Validate(); !errors.As(err, &lvlErr) || lvlErr.Code != core.CodeMissingMarker {
		t.Errorf("expected MISSING_MARKER, got %v", err)
	}
}

func TestPlaceOutOfBounds(t *testing.T) {
	d := New()
	before := d.Grid()

	if err := d.Place(core.Width, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if !d.grid.Equal(before) {
		t.Error("grid should be unchanged")
	}
}

func TestValidateAndLevel(t *testing.T) {
	d := New()

	var lvlErr *core.LevelError
	if _, err := d.Level(); !errors.As(err, &lvlErr) || lvlErr.Code != core.CodeMissingGoal {
		t.Fatalf("expected MISSING_GOAL, got %v", err)
	}

	d.SelectTool(ToolBell)
	if err := d.Place(30, 22); err != nil {
		t.Fatal(err)
	}

	lvl, err := d.Level()
	if err != nil {
		t.Fatalf("Level failed: %v", err)
	}
	if lvl.Spawn != core.DefaultSpawn || lvl.Grid.Count(core.TileActor) != 0 {
		t.Errorf("unexpected level: spawn %v", lvl.Spawn)
	}
}

func TestClearRestoresTemplate(t *testing.T) {
	d := New()
	d.SelectTool(ToolLadder)
	_ = d.Place(5, 5)
	d.SelectTool(ToolWilly)
	_ = d.Place(7, 7)

	d.Clear()

	if !d.grid.Equal(core.EditorTemplate()) {
		t.Error("clear should restore the template")
	}
	if spawn, _ := d.Spawn(); spawn != core.DefaultSpawn {
		t.Errorf("expected default spawn, got %v", spawn)
	}
	if d.Tool() != ToolWilly {
		t.Error("clear should keep the selected tool")
	}
}

func TestExportImport(t *testing.T) {
	for _, f := range []formats.Format{formats.FormatText, formats.FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			src := New()
			src.SelectTool(ToolWilly)
			_ = src.Place(12, 4)
			src.SelectTool(ToolPresent)
			_ = src.Place(13, 4)

			data, err := src.Export(f)
			if err != nil {
				t.Fatalf("Export failed: %v", err)
			}

			dst := New()
			dst.SelectTool(ToolBall)
			if err := dst.Import(data, f); err != nil {
				t.Fatalf("Import failed: %v", err)
			}

			if !dst.grid.Equal(src.grid) {
				t.Error("imported grid differs")
			}
			if spawn, ok := dst.Spawn(); !ok || spawn != core.P(12, 4) {
				t.Errorf("expected spawn (12,4), got %v", spawn)
			}
			if dst.Tool() != ToolBall {
				t.Error("import should keep the selected tool")
			}
		})
	}
}

func TestImportInvalidKeepsDocument(t *testing.T) {
	d := New()
	before := d.Grid()

	if err := d.Import([]byte(`[["x"]]`), formats.FormatJSON); !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
	if !d.grid.Equal(before) {
		t.Error("document should be unchanged after a failed import")
	}
}

func TestParseTool(t *testing.T) {
	for _, tool := range AllTools {
		got, ok := ParseTool(tool.String())
		if !ok || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, ok)
		}
		if tool.Description() == "" {
			t.Errorf("%v has no description", tool)
		}
	}
	if _, ok := ParseTool("hammer"); ok {
		t.Error("ParseTool(hammer) should fail")
	}
}
