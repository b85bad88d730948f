package core

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ValidatePlayable checks the session-start preconditions of an authored
// grid: exactly one actor marker and at least one goal.
func ValidatePlayable(authored *Grid) error {
	markers := authored.Positions(TileActor)
	switch {
	case markers.Size() == 0:
		return levelErrorf(CodeMissingMarker, "place the actor (%c) on the level", GlyphActor)
	case markers.Size() > 1:
		return levelErrorf(CodeMultipleMarkers, "%d actor markers, expected one", markers.Size())
	}

	if authored.Positions(TileGoal).Size() == 0 {
		return levelErrorf(CodeMissingGoal, "place a goal (%c) to complete the level", GlyphGoal)
	}
	return nil
}

var allDirections = []Direction{DirLeft, DirRight, DirUp, DirDown, DirJump}

// GoalReachable searches the positions reachable from the spawn point by
// repeated Step calls and reports whether any of them completes the level.
// Under HazardLoseLife a step that touches a hazard is a dead end; under
// any other policy the search carries on from it. The level's grid is not
// modified.
func GoalReachable(l Level, policy HazardPolicy) bool {
	grid := l.Grid.Clone()
	visited := mapset.New[Pos]()
	queue := []Pos{l.Spawn}
	visited.Put(l.Spawn)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range allDirections {
			out := Step(grid, current, dir)
			if out.Completed {
				return true
			}
			if (out.HazardHit && policy == HazardLoseLife) || visited.Has(out.Pos) {
				continue
			}
			visited.Put(out.Pos)
			queue = append(queue, out.Pos)
		}
	}
	return false
}

// Stats summarizes the content of a grid.
type Stats struct {
	Platforms    int
	Ladders      int
	Collectibles int
	Hazards      int
	Goals        int
	Markers      int
}

// ComputeStats counts each tile kind.
func ComputeStats(g *Grid) Stats {
	return Stats{
		Platforms:    g.Count(TilePlatform),
		Ladders:      g.Count(TileLadder),
		Collectibles: g.Count(TileCollectible),
		Hazards:      g.Count(TileHazard),
		Goals:        g.Count(TileGoal),
		Markers:      g.Count(TileActor),
	}
}

// MaxScore is the best score a run can reach with bonus b: every
// collectible plus the bonus.
func (s Stats) MaxScore(bonus int) int {
	return s.Collectibles*CollectiblePoints + bonus
}

func (s Stats) String() string {
	return fmt.Sprintf("platforms=%d ladders=%d collectibles=%d hazards=%d goals=%d markers=%d",
		s.Platforms, s.Ladders, s.Collectibles, s.Hazards, s.Goals, s.Markers)
}
