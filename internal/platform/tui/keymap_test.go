package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-willy/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", keyType(tea.KeyLeft), core.ActionLeft, false},
		{"vim right", keyRunes("l"), core.ActionRight, false},
		{"wasd up", keyRunes("w"), core.ActionUp, false},
		{"arrow down", keyType(tea.KeyDown), core.ActionDown, false},
		{"space jumps", keyType(tea.KeySpace), core.ActionJump, false},
		{"enter confirms", keyType(tea.KeyEnter), core.ActionConfirm, false},
		{"escape", keyType(tea.KeyEsc), core.ActionBack, false},
		{"pause", keyRunes("p"), core.ActionPause, false},
		{"restart", keyRunes("r"), core.ActionRestart, false},
		{"quit", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c", keyType(tea.KeyCtrlC), core.ActionQuit, true},
		{"unbound", keyRunes("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{keyType(tea.KeyRight), keyType(tea.KeySpace), keyType(tea.KeyLeft)} {
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatal("movement key reported as quit")
		}
	}
	if !km.MapKeyToFrame(keyRunes("q"), &frame) {
		t.Error("q should be a quit request")
	}

	got := frame.Actions()
	want := []core.Action{core.ActionRight, core.ActionJump, core.ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyRunes("k"), MenuActionUp},
		{keyType(tea.KeyDown), MenuActionDown},
		{keyType(tea.KeyEnter), MenuActionSelect},
		{keyType(tea.KeyEsc), MenuActionBack},
		{keyType(tea.KeyTab), MenuActionScoreboard},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
