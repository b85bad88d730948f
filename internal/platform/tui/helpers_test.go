package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-willy/internal/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

var testConfig = core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 30}

// useTestRules points the game at a known gameplay config.
func useTestRules(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "willy.yaml")
	data := "gameplay:\n  lives: 3\n  initial_bonus: 1000\n  bonus_step: 10\n  bonus_interval_ms: 100\n  hazard_policy: lose_life\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	willy.SetConfigPath(path)
	t.Cleanup(func() { willy.SetConfigPath("") })
}

// bellLevel has the actor at (2,22) and the bell right next to it.
func bellLevel(t *testing.T) levels.Level {
	t.Helper()
	g := wcore.EditorTemplate()
	if err := g.Set(3, 22, wcore.TileGoal); err != nil {
		t.Fatal(err)
	}
	return levels.Level{ID: "bell", Name: "Bell", Grid: g}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
