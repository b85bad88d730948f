package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-willy/internal/games/willy"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
	"github.com/vovakirdan/tui-willy/internal/storage"
)

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func startedModel(t *testing.T, lvl levels.Level, store *storage.Store) Model {
	t.Helper()
	useTestRules(t)

	m := NewModel(willy.NewWithLevel(lvl), store, testConfig, "ann")
	m.Init()
	m = update(t, m, keyType(tea.KeyEnter), TickMsg{})
	if !m.State().Started {
		t.Fatal("run should start on enter")
	}
	return m
}

func TestModelArmsClockOnStart(t *testing.T) {
	m := startedModel(t, levels.Builtin(), nil)

	if !m.clockArmed || m.clockGen != 1 {
		t.Errorf("clock not armed after start: armed=%v gen=%d", m.clockArmed, m.clockGen)
	}
}

func TestModelDropsStaleClock(t *testing.T) {
	m := startedModel(t, levels.Builtin(), nil)
	gen := m.clockGen

	m = update(t, m, ClockMsg{Gen: gen - 1})
	if m.State().Bonus != 1000 {
		t.Errorf("stale clock applied: bonus %d", m.State().Bonus)
	}

	m = update(t, m, ClockMsg{Gen: gen})
	if m.State().Bonus != 990 {
		t.Errorf("bonus after one period = %d, want 990", m.State().Bonus)
	}
	if !m.clockArmed || m.clockGen != gen+1 {
		t.Errorf("clock should be re-armed with a new generation, got armed=%v gen=%d", m.clockArmed, m.clockGen)
	}
}

func TestModelPauseStopsClock(t *testing.T) {
	m := startedModel(t, levels.Builtin(), nil)
	pending := m.clockGen

	m = update(t, m, keyRunes("p"), TickMsg{})
	if !m.State().Paused {
		t.Fatal("expected paused")
	}
	if m.clockArmed {
		t.Error("clock should not be armed while paused")
	}

	// The period scheduled before the pause arrives late
	m = update(t, m, ClockMsg{Gen: pending})
	if m.State().Bonus != 1000 {
		t.Errorf("bonus decayed while paused: %d", m.State().Bonus)
	}

	m = update(t, m, keyRunes("p"), TickMsg{})
	if m.State().Paused || !m.clockArmed {
		t.Errorf("resume should re-arm the clock: paused=%v armed=%v", m.State().Paused, m.clockArmed)
	}
	if m.clockGen == pending {
		t.Error("resume should use a fresh generation")
	}
}

func TestModelSavesScoreOncePerRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := startedModel(t, bellLevel(t), store)

	m = update(t, m, keyType(tea.KeyRight), TickMsg{})
	if !m.State().LevelComplete {
		t.Fatal("expected level complete")
	}
	if m.clockArmed {
		t.Error("clock should stop once the level is complete")
	}

	// More frames on the finished run must not save again
	m = update(t, m, TickMsg{}, TickMsg{})

	scores, err := store.TopScores(willy.GameID, "bell", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Score != 1000 || !scores[0].Completed || scores[0].Player != "ann" {
		t.Errorf("unexpected entry %+v", scores[0])
	}

	// Play again keeps the score and saves the next finish
	m = update(t, m, keyRunes("r"), TickMsg{}, keyType(tea.KeyRight), TickMsg{})
	scores, _ = store.TopScores(willy.GameID, "bell", 10)
	if len(scores) != 2 || scores[0].Score != 2000 {
		t.Errorf("expected a second run saved with 2000, got %+v", scores)
	}
}

func TestModelBack(t *testing.T) {
	useTestRules(t)

	m := NewModel(willy.NewWithLevel(levels.Builtin()), nil, testConfig, "")
	m.Init()

	next, cmd := m.Update(keyType(tea.KeyEsc))
	m = next.(Model)
	if !m.BackToMenu() || cmd == nil {
		t.Error("esc before start should leave the game")
	}

	// Back is ignored during a run
	m = startedModel(t, levels.Builtin(), nil)
	m = update(t, m, keyType(tea.KeyEsc))
	if m.BackToMenu() {
		t.Error("esc during a run should be ignored")
	}
}

func TestModelQuit(t *testing.T) {
	m := startedModel(t, levels.Builtin(), nil)

	m = update(t, m, keyRunes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m := startedModel(t, levels.Builtin(), nil)

	view := m.View()
	if view == "" {
		t.Fatal("empty view")
	}
	if !containsAll(view, "Score", "Bonus") {
		t.Errorf("HUD missing from view:\n%s", view)
	}
}
