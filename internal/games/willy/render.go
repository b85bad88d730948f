package willy

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-willy/internal/core"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
)

const (
	hudHeight = 2
	boardW    = wcore.Width + 2 // Board plus frame
	boardH    = wcore.Height + 2
)

// MinScreenSize is the smallest terminal the game can be drawn in.
func MinScreenSize() (int, int) {
	return boardW, boardH + hudHeight
}

// TileColor returns the display colour of a tile.
func TileColor(t wcore.Tile) core.Color {
	switch t {
	case wcore.TilePlatform:
		return core.ColorBlue
	case wcore.TileLadder:
		return core.ColorYellow
	case wcore.TileCollectible:
		return core.ColorBrightYellow
	case wcore.TileHazard:
		return core.ColorBrightRed
	case wcore.TileGoal:
		return core.ColorBrightCyan
	case wcore.TileActor:
		return core.ColorBrightGreen
	default:
		return core.ColorDefault
	}
}

// DrawGrid draws a grid with a frame at origin, the frame's top-left corner.
func DrawGrid(dst *core.Screen, g *wcore.Grid, origin core.Rect) {
	dst.DrawBox(core.NewRect(origin.X, origin.Y, boardW, boardH), core.ColorGray)
	g.ForEach(func(p wcore.Pos, t wcore.Tile) {
		dst.SetColor(origin.X+1+p.X, origin.Y+1+p.Y, t.Glyph(), TileColor(t))
	})
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	area := core.CenteredRect(dst.Width(), dst.Height(), minW, minH)

	if g.session == nil {
		g.renderOverlay(dst, "Level cannot be played", errorLine(g.loadErr))
		return
	}

	g.renderHUD(dst, area)

	board := core.NewRect(area.X, area.Y+hudHeight, boardW, boardH)
	DrawGrid(dst, g.session.Grid(), board)

	pos := g.session.Pos()
	dst.SetColor(board.X+1+pos.X, board.Y+1+pos.Y, wcore.GlyphActor, TileColor(wcore.TileActor))

	st := g.State()
	switch {
	case !st.Started:
		g.renderOverlay(dst, g.Title(), "Press Enter or Space to start")
	case st.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case st.GameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final score %d - R to try again", st.Score))
	case st.LevelComplete:
		g.renderOverlay(dst, "Level Complete!", fmt.Sprintf("Score %d - Enter to play again", st.Score))
	}
}

// renderHUD draws the score line and the status line.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	st := g.session.State()
	dst.DrawTextColor(area.X, area.Y, fmt.Sprintf("Score: %-6d", st.Score), core.ColorWhite)
	dst.DrawTextColor(area.X+15, area.Y, fmt.Sprintf("Bonus: %-5d", st.Bonus), bonusColor(st.Bonus, g.rules.InitialBonus))
	dst.DrawTextColor(area.X+29, area.Y, fmt.Sprintf("Worms: %d", st.Lives), core.ColorBrightGreen)

	status := g.event
	if status == "" {
		status = g.LevelTitle()
	}
	if utf8.RuneCountInString(status) > boardW {
		status = string([]rune(status)[:boardW])
	}
	dst.DrawTextColor(area.X, area.Y+1, status, core.ColorGray)
}

// bonusColor turns the bonus red as it runs low.
func bonusColor(bonus, initial int) core.Color {
	switch {
	case initial <= 0 || bonus*4 > initial:
		return core.ColorBrightYellow
	case bonus*10 > initial:
		return core.ColorYellow
	default:
		return core.ColorBrightRed
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := core.CenteredRect(dst.Width(), dst.Height(), textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightCyan)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}

func errorLine(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
