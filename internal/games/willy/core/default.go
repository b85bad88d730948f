package core

// DefaultLevel returns the built-in authored level.
func DefaultLevel() *Grid {
	g := NewGrid()

	for x := range Width {
		g.cells[23][x] = TilePlatform
		if x < 15 || x > 25 {
			g.cells[18][x] = TilePlatform
		}
		if x > 5 && x < 35 {
			g.cells[13][x] = TilePlatform
		}
		if x < 10 || x > 30 {
			g.cells[8][x] = TilePlatform
		}
		if x > 15 && x < 25 {
			g.cells[3][x] = TilePlatform
		}
	}

	for y := 19; y < 23; y++ {
		g.cells[y][10] = TileLadder
	}
	for y := 14; y < 18; y++ {
		g.cells[y][30] = TileLadder
	}
	for y := 9; y < 13; y++ {
		g.cells[y][8] = TileLadder
	}
	for y := 4; y < 8; y++ {
		g.cells[y][20] = TileLadder
	}

	g.cells[17][5] = TileCollectible
	g.cells[12][25] = TileCollectible
	g.cells[7][15] = TileCollectible

	g.cells[2][20] = TileGoal
	g.cells[DefaultSpawn.Y][DefaultSpawn.X] = TileActor

	return g
}

// EditorTemplate returns the blank authoring template: a floor on row 23
// and the actor marker at DefaultSpawn.
func EditorTemplate() *Grid {
	g := NewGrid()
	for x := range Width {
		g.cells[23][x] = TilePlatform
	}
	g.cells[DefaultSpawn.Y][DefaultSpawn.X] = TileActor
	return g
}
