package editor

import (
	"strings"

	"github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

// Tool is the brush selected in the editor.
type Tool int

const (
	ToolPlatform Tool = iota
	ToolLadder
	ToolPresent
	ToolBall
	ToolBell
	ToolWilly
	ToolEraser
)

// AllTools lists the tools in palette order.
var AllTools = []Tool{
	ToolPlatform, ToolLadder, ToolPresent, ToolBall, ToolBell, ToolWilly, ToolEraser,
}

// String returns the tool's name.
func (t Tool) String() string {
	switch t {
	case ToolPlatform:
		return "platform"
	case ToolLadder:
		return "ladder"
	case ToolPresent:
		return "present"
	case ToolBall:
		return "ball"
	case ToolBell:
		return "bell"
	case ToolWilly:
		return "willy"
	case ToolEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// Tile returns the tile the tool paints.
func (t Tool) Tile() core.Tile {
	switch t {
	case ToolPlatform:
		return core.TilePlatform
	case ToolLadder:
		return core.TileLadder
	case ToolPresent:
		return core.TileCollectible
	case ToolBall:
		return core.TileHazard
	case ToolBell:
		return core.TileGoal
	case ToolWilly:
		return core.TileActor
	default:
		return core.TileEmpty
	}
}

// Description is the help line shown for the tool.
func (t Tool) Description() string {
	switch t {
	case ToolPlatform:
		return "Solid platforms that Willy can walk on"
	case ToolLadder:
		return "Ladders that Willy can climb up and down"
	case ToolPresent:
		return "Collectible presents worth 100 points each"
	case ToolBall:
		return "Dangerous balls that will hurt Willy"
	case ToolBell:
		return "The goal! Willy must reach this to complete the level"
	case ToolWilly:
		return "Starting position for Willy the Worm"
	case ToolEraser:
		return "Remove objects from the grid"
	default:
		return ""
	}
}

// ParseTool looks a tool up by name.
func ParseTool(s string) (Tool, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllTools {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
