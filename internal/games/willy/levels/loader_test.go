package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

func writeLevels(t *testing.T, dir string) {
	t.Helper()

	template := core.EditorTemplate()
	if err := template.Set(30, 22, core.TileGoal); err != nil {
		t.Fatal(err)
	}

	files := map[string]levels.Level{
		"b-tower.yaml":    {ID: "tower", Name: "Tower", Grid: core.DefaultLevel()},
		"flat.txt":        {Grid: template},
		"nested/sea.json": {Grid: core.DefaultLevel()},
	}
	for name, lvl := range files {
		if err := levels.SaveFile(filepath.Join(dir, name), lvl); err != nil {
			t.Fatalf("SaveFile(%s): %v", name, err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("not a level"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevels(t, dir)

	lvls, err := levels.NewLoader(dir, nil).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels (broken file skipped), got %d", len(lvls))
	}

	expected := []string{"flat", "sea", "tower"}
	for i, lvl := range lvls {
		if lvl.ID != expected[i] {
			t.Errorf("level %d: expected id %q, got %q", i, expected[i], lvl.ID)
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeLevels(t, dir)
	loader := levels.NewLoader(dir, nil)

	lvl, err := loader.LoadByID("tower")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Title() != "Tower" {
		t.Errorf("expected name 'Tower', got %q", lvl.Title())
	}
	if !lvl.Grid.Equal(core.DefaultLevel()) {
		t.Error("grid differs from saved level")
	}

	builtin, err := loader.LoadByID(levels.BuiltinID)
	if err != nil || builtin.ID != levels.BuiltinID {
		t.Errorf("builtin level should always load, got %v", err)
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoaderListIDs(t *testing.T) {
	dir := t.TempDir()
	writeLevels(t, dir)
	shadow := levels.Level{ID: levels.BuiltinID, Grid: core.DefaultLevel()}
	if err := levels.SaveFile(filepath.Join(dir, "shadow.yaml"), shadow); err != nil {
		t.Fatal(err)
	}

	ids, err := levels.NewLoader(dir, nil).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}

	expected := []string{levels.BuiltinID, "flat", "sea", "tower"}
	if len(ids) != len(expected) {
		t.Fatalf("expected ids %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("id %d: expected %q, got %q", i, expected[i], ids[i])
		}
	}
}

func TestLevelPlayable(t *testing.T) {
	play, err := levels.Builtin().Playable()
	if err != nil {
		t.Fatalf("Playable failed: %v", err)
	}
	if play.Spawn != core.DefaultSpawn {
		t.Errorf("expected spawn %v, got %v", core.DefaultSpawn, play.Spawn)
	}

	noGoal := levels.Level{ID: "x", Grid: core.EditorTemplate()}
	if _, err := noGoal.Playable(); !errors.Is(err, core.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	if _, err := levels.LoadFile("level.bmp"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
