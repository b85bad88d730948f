package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-willy/internal/core"
	"github.com/vovakirdan/tui-willy/internal/registry"
	"github.com/vovakirdan/tui-willy/internal/storage"
)

// resizer is implemented by games that can adapt to a new terminal size
// without restarting the run.
type resizer interface {
	Resize(w, h int)
}

// leveled is implemented by games that are played on a named level.
type leveled interface {
	LevelID() string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	clock      registry.Clocked // nil when the game has no second clock
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	clockGen   int  // Generation of the pending clock message
	clockArmed bool // A clock message for clockGen is in flight

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current finished run
}

// NewModel creates a new Bubble Tea model for the given game.
// Parent models that host it check BackToMenu and IsQuitting after each
// Update and drop the returned tea.Quit when they take over.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if c, ok := game.(registry.Clocked); ok {
		m.clock = c
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ClockMsg:
		return m.handleClock(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are collected in the frame
// and applied on the next tick in the order they arrived.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is in progress
	if action == core.ActionBack {
		st := m.game.State()
		if !st.Started || st.Paused || st.Finished() {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize are rebuilt for the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.apply(result)

	return m, tea.Batch(tickCmd(m.config.TickRate), m.syncClock())
}

// handleClock applies one clock period if the message is current.
func (m Model) handleClock(msg ClockMsg) (tea.Model, tea.Cmd) {
	if m.clock == nil || !m.clockArmed || msg.Gen != m.clockGen {
		return m, nil
	}
	m.clockArmed = false

	if m.clock.ClockRunning() {
		m.apply(m.clock.ClockTick())
	}
	return m, m.syncClock()
}

// syncClock arms the clock when the game wants it and orphans a pending
// message when it does not. Returns nil when nothing needs scheduling.
func (m *Model) syncClock() tea.Cmd {
	if m.clock == nil {
		return nil
	}

	running := m.clock.ClockRunning() && m.clock.ClockInterval() > 0
	switch {
	case running && !m.clockArmed:
		m.clockGen++
		m.clockArmed = true
		return clockCmd(m.clock.ClockInterval(), m.clockGen)
	case !running && m.clockArmed:
		m.clockGen++
		m.clockArmed = false
	}
	return nil
}

// apply records a step result and saves the score once per finished run.
func (m *Model) apply(result core.StepResult) {
	m.gameState = result.State

	if !m.gameState.Finished() {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	levelID := ""
	if l, ok := m.game.(leveled); ok {
		levelID = l.LevelID()
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(storage.ScoreEntry{
		GameID:    m.game.ID(),
		LevelID:   levelID,
		Player:    m.player,
		Score:     m.gameState.Score,
		Completed: m.gameState.LevelComplete,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".willy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
// Returns true when the player left with Back rather than Quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
