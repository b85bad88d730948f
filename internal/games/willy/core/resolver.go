package core

// CollectiblePoints is the score for picking up one collectible.
const CollectiblePoints = 100

// Outcome is the result of resolving a single input.
type Outcome struct {
	Pos        Pos  // Actor position after the step
	ScoreDelta int  // Points earned this step
	Collected  bool // A collectible was consumed
	Completed  bool // The actor stands on the goal
	HazardHit  bool // The actor touched a hazard
	Fell       int  // Rows dropped by gravity
}

// Moved reports whether the actor ended somewhere other than from.
func (o Outcome) Moved(from Pos) bool {
	return o.Pos != from
}

// Step resolves one input against the grid. It never fails: an input that
// makes no sense in context leaves the actor where it was. The only side
// effect is consuming a collectible on the final cell.
//
// Hazards block movement like platforms, but bumping into one, or coming to
// rest on top of one, is reported through HazardHit.
func Step(g *Grid, pos Pos, dir Direction) Outcome {
	out := Outcome{Pos: pos}
	if !pos.InBounds() {
		return out
	}

	next := pos
	switch dir {
	case DirLeft, DirRight:
		dx := 1
		if dir == DirLeft {
			dx = -1
		}
		cand := pos.Add(dx, 0)
		if g.enterable(cand, &out) {
			next, out.Fell = g.fall(cand)
		}

	case DirUp, DirDown:
		if !IsClimbable(g.at(pos)) {
			return out
		}
		dy := 1
		if dir == DirUp {
			dy = -1
		}
		if cand := pos.Add(0, dy); g.enterable(cand, &out) {
			next = cand
		}

	case DirJump:
		if cand := pos.Add(0, -1); g.enterable(cand, &out) {
			next = cand
		}

	default:
		return out
	}

	out.Pos = next

	switch g.at(next) {
	case TileCollectible:
		if g.Consume(next.X, next.Y) {
			out.Collected = true
			out.ScoreDelta += CollectiblePoints
		}
	case TileGoal:
		out.Completed = true
	case TileHazard:
		out.HazardHit = true
	case TileEmpty, TilePlatform, TileLadder, TileActor:
	}

	if dir == DirLeft || dir == DirRight {
		if below := next.Add(0, 1); below.InBounds() && g.at(below) == TileHazard {
			out.HazardHit = true
		}
	}

	return out
}

// enterable reports whether the actor may move into p, flagging hazard contact.
func (g *Grid) enterable(p Pos, out *Outcome) bool {
	if !p.InBounds() {
		return false
	}
	t := g.at(p)
	if t == TileHazard {
		out.HazardHit = true
	}
	return IsPassable(t)
}

// fall drops the actor from p until it has support, reaches the last row
// or the cell below is blocked. A ladder cell holds the actor in place.
func (g *Grid) fall(p Pos) (Pos, int) {
	if g.HasSupportBelow(p.X, p.Y) || IsClimbable(g.at(p)) {
		return p, 0
	}
	rows := 0
	for p.Y < Height-1 && IsPassable(g.at(p.Add(0, 1))) && !g.HasSupportBelow(p.X, p.Y) {
		p.Y++
		rows++
	}
	return p, rows
}
