// Package editor implements the level authoring document: a grid, the
// selected tool and the spawn point, edited one cell at a time.
package editor

import (
	"fmt"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels/formats"
)

// Document is an authored level being edited. It lives for the whole
// editing session and has no terminal state.
type Document struct {
	grid     *core.Grid
	tool     Tool
	spawn    core.Pos
	hasSpawn bool
	dirty    bool
}

// New returns a document holding the blank template.
func New() *Document {
	d := &Document{tool: ToolPlatform}
	d.Clear()
	d.dirty = false
	return d
}

// FromGrid opens an authored grid for editing. The grid is copied.
func FromGrid(g *core.Grid) (*Document, error) {
	lvl, err := core.NewLevel(g)
	if err != nil {
		return nil, err
	}
	return &Document{
		grid:     g.Clone(),
		tool:     ToolPlatform,
		spawn:    lvl.Spawn,
		hasSpawn: lvl.HasSpawn,
	}, nil
}

// Tool returns the selected tool.
func (d *Document) Tool() Tool {
	return d.tool
}

// SelectTool changes the brush.
func (d *Document) SelectTool(t Tool) {
	d.tool = t
}

// Spawn returns the actor start and whether a marker is placed.
// Without a marker the start defaults to DefaultSpawn.
func (d *Document) Spawn() (core.Pos, bool) {
	if !d.hasSpawn {
		return core.DefaultSpawn, false
	}
	return d.spawn, true
}

// TileAt returns the authored tile at (x, y).
func (d *Document) TileAt(x, y int) (core.Tile, error) {
	return d.grid.TileAt(x, y)
}

// Grid returns a copy of the authored grid.
func (d *Document) Grid() *core.Grid {
	return d.grid.Clone()
}

// Dirty reports unsaved changes.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkSaved clears the dirty flag.
func (d *Document) MarkSaved() {
	d.dirty = false
}

// Place paints the selected tool at (x, y). Placing the actor moves the
// single marker; painting over the marker removes the spawn.
func (d *Document) Place(x, y int) error {
	if !d.grid.InBounds(x, y) {
		return fmt.Errorf("place: %w", core.ErrOutOfBounds)
	}

	p := core.P(x, y)
	if d.tool == ToolWilly {
		if d.hasSpawn {
			_ = d.grid.Set(d.spawn.X, d.spawn.Y, core.TileEmpty)
		}
		d.spawn, d.hasSpawn = p, true
	} else if d.hasSpawn && d.spawn == p {
		d.hasSpawn = false
	}

	d.dirty = true
	return d.grid.Set(x, y, d.tool.Tile())
}

// Clear resets the document to the template.
func (d *Document) Clear() {
	d.grid = core.EditorTemplate()
	d.spawn, d.hasSpawn = core.DefaultSpawn, true
	d.dirty = true
}

// Validate checks that the level can be played: one marker and a goal.
func (d *Document) Validate() error {
	return core.ValidatePlayable(d.grid)
}

// Level validates the document and builds a playable level from it.
func (d *Document) Level() (core.Level, error) {
	if err := d.Validate(); err != nil {
		return core.Level{}, err
	}
	return core.NewLevel(d.grid)
}

// Export serializes the authored grid.
func (d *Document) Export(f formats.Format) ([]byte, error) {
	return formats.Encode(formats.Level{Grid: d.grid}, f)
}

// Import replaces the document with a serialized grid. The spawn is taken
// from the marker. On error the document is left unchanged.
func (d *Document) Import(data []byte, f formats.Format) error {
	parsed, err := formats.Parse(data, f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	next, err := FromGrid(parsed.Grid)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	next.tool = d.tool
	next.dirty = true
	*d = *next
	return nil
}
