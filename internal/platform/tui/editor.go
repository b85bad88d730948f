package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-willy/internal/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/editor"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

// EditorKeyMap defines the key bindings for the level editor.
type EditorKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Place key.Binding
	Tool  key.Binding
	Test  key.Binding
	Save  key.Binding
	Clear key.Binding
	Help  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Tool, k.Test, k.Save, k.Help, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Tool, k.Clear},
		{k.Test, k.Save, k.Help},
		{k.Back, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		Place: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "place"),
		),
		Tool: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "tool"),
		),
		Test: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "test level"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

// EditorModel is the Bubble Tea model for the level editor. Test play runs
// inside it and returns to editing when the player backs out.
type EditorModel struct {
	doc     *editor.Document
	source  levels.Level // Id, name and metadata written back on save
	outPath string
	cursor  wcore.Pos
	board   *core.Screen
	keys    EditorKeyMap
	help    help.Model
	theme   Theme
	config  core.RuntimeConfig

	play *Model // Non-nil while test playing

	status      string
	statusKind  statusKind
	confirmQuit bool // Leaving with unsaved changes needs a second press
	quitting    bool
	goingBack   bool
}

// NewEditorModel opens doc for editing. Saves go to outPath in the format
// its extension names; source supplies the id and name stored with it.
func NewEditorModel(doc *editor.Document, source levels.Level, outPath string, cfg core.RuntimeConfig) EditorModel {
	h := help.New()
	h.ShowAll = false

	spawn, _ := doc.Spawn()
	return EditorModel{
		doc:     doc,
		source:  source,
		outPath: outPath,
		cursor:  spawn,
		board:   core.NewScreen(wcore.Width+2, wcore.Height+2),
		keys:    DefaultEditorKeyMap(),
		help:    h,
		theme:   GetTheme(),
		config:  cfg,
	}
}

// Init initializes the editor.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}

	if m.play != nil {
		return m.updatePlay(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// updatePlay forwards messages to the test play model.
func (m EditorModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if pm, ok := next.(Model); ok {
		m.play = &pm
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		m.play = nil
		m.setStatus(statusInfo, "Back to editing")
		return m, nil
	}
	return m, cmd
}

// handleKey processes keyboard input while editing.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	leaving := key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Back)
	if !leaving {
		m.confirmQuit = false
	}

	switch {
	case leaving:
		if m.doc.Dirty() && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus(statusWarn, "Unsaved changes, press again to leave")
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
		} else {
			m.goingBack = true
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Place):
		if err := m.doc.Place(m.cursor.X, m.cursor.Y); err != nil {
			m.setStatus(statusError, err.Error())
		} else {
			m.status = ""
		}

	case key.Matches(msg, m.keys.Tool):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(editor.AllTools) {
			m.doc.SelectTool(editor.AllTools[idx])
			m.status = ""
		}

	case key.Matches(msg, m.keys.Clear):
		m.doc.Clear()
		m.setStatus(statusInfo, "Cleared to a blank level")

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Test):
		return m.startTest()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveCursor moves the cursor, clamped to the grid.
func (m *EditorModel) moveCursor(dx, dy int) {
	m.cursor.X = core.Clamp(m.cursor.X+dx, 0, wcore.Width-1)
	m.cursor.Y = core.Clamp(m.cursor.Y+dy, 0, wcore.Height-1)
}

// save writes the document to the output path.
func (m *EditorModel) save() {
	if m.outPath == "" {
		m.setStatus(statusError, "No output file, start the editor with --out")
		return
	}

	lvl := m.source
	lvl.Grid = m.doc.Grid()
	if err := levels.SaveFile(m.outPath, lvl); err != nil {
		m.setStatus(statusError, err.Error())
		return
	}
	m.doc.MarkSaved()

	if err := m.doc.Validate(); err != nil {
		m.setStatus(statusWarn, fmt.Sprintf("Saved to %s, but %s", m.outPath, describeLevelError(err)))
		return
	}
	m.setStatus(statusInfo, "Saved to "+m.outPath)
}

// startTest validates the document and starts test play.
func (m EditorModel) startTest() (tea.Model, tea.Cmd) {
	playable, err := m.doc.Level()
	if err != nil {
		m.setStatus(statusError, "Cannot test: "+describeLevelError(err))
		return m, nil
	}

	lvl := m.source
	lvl.Grid = m.doc.Grid()
	if lvl.Name == "" {
		lvl.Name = "Test Level"
	}

	pm := NewModel(willy.NewWithLevel(lvl), nil, m.config, "")
	m.play = &pm

	if wcore.GoalReachable(playable, willy.CurrentRules().HazardPolicy) {
		m.status = ""
	} else {
		m.setStatus(statusWarn, "The bell may be unreachable")
	}
	return m, m.play.Init()
}

// describeLevelError turns a validation error into an editor message.
func describeLevelError(err error) string {
	var le *wcore.LevelError
	if errors.As(err, &le) {
		switch le.Code {
		case wcore.CodeMissingMarker:
			return "place Willy first"
		case wcore.CodeMissingGoal:
			return "place a bell first"
		case wcore.CodeMultipleMarkers:
			return "only one Willy allowed"
		}
		return le.Message
	}
	return err.Error()
}

func (m *EditorModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	if m.play != nil {
		return m.play.View()
	}

	var b strings.Builder

	title := "LEVEL EDITOR"
	if m.source.Name != "" {
		title += " - " + m.source.Name
	}
	if m.doc.Dirty() {
		title += " *"
	}
	b.WriteString(m.theme.MenuTitle.Render(title))
	b.WriteString("\n")

	b.WriteString(RenderScreen(m.renderBoard()))
	b.WriteString("\n")

	b.WriteString(m.renderPalette())
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

// renderBoard draws the grid with the cursor on top.
func (m EditorModel) renderBoard() *core.Screen {
	m.board.Clear()
	willy.DrawGrid(m.board, m.doc.Grid(), core.NewRect(0, 0, m.board.Width(), m.board.Height()))

	glyph := '+'
	if t, err := m.doc.TileAt(m.cursor.X, m.cursor.Y); err == nil && t != wcore.TileEmpty {
		glyph = t.Glyph()
	}
	m.board.SetColor(m.cursor.X+1, m.cursor.Y+1, glyph, core.ColorMagenta)
	return m.board
}

// renderPalette shows the tools with the selected one highlighted.
func (m EditorModel) renderPalette() string {
	items := make([]string, len(editor.AllTools))
	for i, t := range editor.AllTools {
		label := fmt.Sprintf("%d %c %s", i+1, t.Tile().Glyph(), t)
		if t == editor.ToolEraser {
			label = fmt.Sprintf("%d %s", i+1, t)
		}
		if t == m.doc.Tool() {
			items[i] = m.theme.PaletteActive.Render(label)
		} else {
			items[i] = m.theme.PaletteItem.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

// renderStatus shows the last message, or the tool description and cursor.
func (m EditorModel) renderStatus() string {
	if m.status != "" {
		switch m.statusKind {
		case statusWarn:
			return m.theme.StatusWarn.Render(m.status)
		case statusError:
			return m.theme.StatusError.Render(m.status)
		default:
			return m.theme.StatusInfo.Render(m.status)
		}
	}
	line := fmt.Sprintf("(%d,%d)  %s", m.cursor.X, m.cursor.Y, m.doc.Tool().Description())
	return m.theme.StatusInfo.Render(line)
}

// Document returns the document being edited.
func (m EditorModel) Document() *editor.Document {
	return m.doc
}

// Cursor returns the cursor position on the grid.
func (m EditorModel) Cursor() wcore.Pos {
	return m.cursor
}

// Testing reports whether test play is running.
func (m EditorModel) Testing() bool {
	return m.play != nil
}

// Status returns the status line message, empty when showing the tool.
func (m EditorModel) Status() string {
	return m.status
}

// IsGoingBack returns true if user wants to go back to menu.
func (m EditorModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// RunEditor runs the level editor.
// Returns true if user wants to go back to menu, false if quitting.
func RunEditor(doc *editor.Document, source levels.Level, outPath string, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewEditorModel(doc, source, outPath, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(EditorModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
