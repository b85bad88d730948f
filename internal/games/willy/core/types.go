// Package core provides the core game logic for Willy the Worm.
// This package is UI-agnostic and deterministic: it owns the tile grid,
// the movement resolver and the run bookkeeping, and nothing else.
package core

import "fmt"

// Grid dimensions are fixed for every level.
const (
	Width  = 40
	Height = 25
)

// Pos is a cell coordinate. Origin is top-left, Y grows downward.
type Pos struct {
	X, Y int
}

// P is a shorthand constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns the position as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether the position lies inside the grid.
func (p Pos) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// DefaultSpawn is where the actor starts when a level carries no marker.
var DefaultSpawn = Pos{X: 2, Y: 22}

// Direction is a single player input handled by the resolver.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	DirJump
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirJump:
		return "Jump"
	default:
		return "Unknown"
	}
}
