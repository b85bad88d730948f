package willy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-willy/internal/core"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/registry"
)

// corridor is a floor with the actor at (3,22), a present at (4,22) and
// the bell at (6,22).
func corridor(t *testing.T) levels.Level {
	t.Helper()
	g := wcore.EditorTemplate()
	for _, c := range []struct {
		x, y int
		tile wcore.Tile
	}{
		{2, 22, wcore.TileEmpty},
		{3, 22, wcore.TileActor},
		{4, 22, wcore.TileCollectible},
		{6, 22, wcore.TileGoal},
	} {
		if err := g.Set(c.x, c.y, c.tile); err != nil {
			t.Fatal(err)
		}
	}
	return levels.Level{ID: "corridor", Name: "Corridor", Grid: g}
}

func newTestGame(t *testing.T, lvl levels.Level) *Game {
	t.Helper()

	path := filepath.Join(t.TempDir(), "willy.yaml")
	data := "gameplay:\n  lives: 3\n  initial_bonus: 1000\n  bonus_step: 10\n  bonus_interval_ms: 100\n  hazard_policy: lose_life\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := NewWithLevel(lvl)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, ok := g.(registry.Clocked); !ok {
		t.Error("game should run a bonus clock")
	}
}

func TestStartRequiresConfirm(t *testing.T) {
	g := newTestGame(t, corridor(t))

	g.Step(frame(core.ActionRight))
	if g.State().Started || g.session.Pos() != wcore.P(3, 22) {
		t.Fatal("movement before start should be ignored")
	}
	if g.ClockRunning() {
		t.Error("clock should not run before start")
	}

	res := g.Step(frame(core.ActionConfirm))
	if !res.State.Started || !g.ClockRunning() {
		t.Error("confirm should start the run")
	}
	if res.State.Bonus != 1000 || res.State.Lives != 3 {
		t.Errorf("unexpected start state %+v", res.State)
	}
}

func TestCollectAndComplete(t *testing.T) {
	g := newTestGame(t, corridor(t))
	g.Step(frame(core.ActionConfirm))

	res := g.Step(frame(core.ActionRight))
	if res.State.Score != 100 {
		t.Errorf("expected score 100, got %d", res.State.Score)
	}
	if !strings.Contains(res.Event, "Present") {
		t.Errorf("expected pickup notice, got %q", res.Event)
	}

	g.ClockTick()
	res = g.Step(frame(core.ActionRight, core.ActionRight, core.ActionLeft))

	if !res.State.LevelComplete {
		t.Fatalf("expected level complete, got %+v", res.State)
	}
	if res.State.Score != 100+990 {
		t.Errorf("expected score %d, got %d", 100+990, res.State.Score)
	}
	if g.session.Pos() != wcore.P(6, 22) {
		t.Errorf("input after completion should be dropped, actor at %v", g.session.Pos())
	}
	if g.ClockRunning() {
		t.Error("clock should stop on completion")
	}
}

func TestPlayAgainKeepsScore(t *testing.T) {
	g := newTestGame(t, corridor(t))
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionRight, core.ActionRight, core.ActionRight))

	score := g.State().Score
	res := g.Step(frame(core.ActionConfirm))

	if res.State.LevelComplete || !g.ClockRunning() {
		t.Errorf("expected a fresh run, got %+v", res.State)
	}
	if res.State.Score != score {
		t.Errorf("score should carry over: expected %d, got %d", score, res.State.Score)
	}
	if tile, _ := g.session.Grid().TileAt(4, 22); tile != wcore.TileCollectible {
		t.Error("presents should be back")
	}
}

func TestClockTickAndPause(t *testing.T) {
	g := newTestGame(t, corridor(t))
	g.Step(frame(core.ActionConfirm))

	if g.ClockInterval() != 100*time.Millisecond {
		t.Errorf("expected 100ms interval, got %v", g.ClockInterval())
	}

	for _, expected := range []int{990, 980, 970} {
		if got := g.ClockTick().State.Bonus; got != expected {
			t.Errorf("expected bonus %d, got %d", expected, got)
		}
	}

	g.Step(frame(core.ActionPause))
	if !g.State().Paused || g.ClockRunning() {
		t.Fatal("expected paused game with the clock stopped")
	}
	if got := g.ClockTick().State.Bonus; got != 970 {
		t.Errorf("bonus should not decay while paused, got %d", got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused || !g.ClockRunning() {
		t.Error("expected running game")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, corridor(t))
	g.Step(frame(core.ActionConfirm))

	s := core.NewScreen(80, 30)
	g.Render(s)

	// Board frame starts at (19,2); the actor at (3,22) is drawn inside it.
	if c := s.GetCell(19+1+3, 2+1+22); c.Rune != '@' || c.Color != TileColor(wcore.TileActor) {
		t.Errorf("expected actor glyph, got %+v", c)
	}
	if c := s.GetCell(19+1+6, 2+1+22); c.Rune != '♪' {
		t.Errorf("expected goal glyph, got %q", c.Rune)
	}
	if !strings.Contains(s.Row(0), "Score: 0") || !strings.Contains(s.Row(0), "Worms: 3") {
		t.Errorf("HUD missing, row 0 = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "Corridor") {
		t.Errorf("status line should show the level, row 1 = %q", s.Row(1))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, corridor(t))

	s := core.NewScreen(30, 10)
	g.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}

func TestUnplayableLevel(t *testing.T) {
	g := newTestGame(t, levels.Level{ID: "blank", Grid: wcore.EditorTemplate()})

	if g.LoadErr() == nil {
		t.Fatal("expected load error for a level without a bell")
	}

	g.Step(frame(core.ActionConfirm))
	if g.ClockRunning() || g.State().Started {
		t.Error("an unplayable level should never start")
	}

	s := core.NewScreen(80, 30)
	g.Render(s)
	if !strings.Contains(s.String(), "cannot be played") {
		t.Error("expected error overlay")
	}
}

func TestCurrentRulesFollowConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "willy.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  hazard_policy: ignore\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	if got := CurrentRules().HazardPolicy; got != wcore.HazardIgnore {
		t.Errorf("expected ignore policy, got %q", got)
	}
}
