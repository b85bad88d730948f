package core

// Level is a live grid plus the spawn point taken from its actor marker.
// The live grid never contains TileActor.
type Level struct {
	Grid     *Grid
	Spawn    Pos
	HasSpawn bool
}

// NewLevel extracts the actor marker from an authored grid.
// The authored grid is left untouched; the returned level owns a copy
// with the marker cell replaced by TileEmpty.
func NewLevel(authored *Grid) (Level, error) {
	live := authored.Clone()
	lvl := Level{Grid: live, Spawn: DefaultSpawn}

	markers := 0
	for y := range Height {
		for x := range Width {
			if live.cells[y][x] != TileActor {
				continue
			}
			markers++
			if markers > 1 {
				return Level{}, levelErrorf(CodeMultipleMarkers, "second actor marker at (%d,%d)", x, y)
			}
			lvl.Spawn = Pos{X: x, Y: y}
			lvl.HasSpawn = true
			live.cells[y][x] = TileEmpty
		}
	}
	return lvl, nil
}

// ParseLevel decodes the textual form and extracts the spawn point.
func ParseLevel(text string) (Level, error) {
	authored, err := DecodeText(text)
	if err != nil {
		return Level{}, err
	}
	return NewLevel(authored)
}

// Authored returns a copy of the grid with the marker written back at
// the spawn point, suitable for serialization.
func (l Level) Authored() *Grid {
	g := l.Grid.Clone()
	if l.HasSpawn {
		g.cells[l.Spawn.Y][l.Spawn.X] = TileActor
	}
	return g
}

// Clone returns a level with an independent grid.
func (l Level) Clone() Level {
	l.Grid = l.Grid.Clone()
	return l
}
