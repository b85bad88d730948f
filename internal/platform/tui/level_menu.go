package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-willy/internal/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy"
	wcore "github.com/vovakirdan/tui-willy/internal/games/willy/core"
	"github.com/vovakirdan/tui-willy/internal/games/willy/levels"
)

// LevelMenuModel is the level picker.
type LevelMenuModel struct {
	levels       []levels.Level
	infos        []string // One description line per level
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	selected     *levels.Level
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLevelMenuModel creates a level picker over lvls. The cursor starts
// on the level whose id is current.
func NewLevelMenuModel(lvls []levels.Level, current string, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels:    lvls,
		infos:     make([]string, len(lvls)),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}
	for i, lvl := range lvls {
		m.infos[i] = describeLevel(lvl)
		if lvl.ID == current {
			m.cursor = i
		}
	}
	m.updateScroll()
	return m
}

// describeLevel summarizes a level for the picker.
func describeLevel(lvl levels.Level) string {
	playable, err := lvl.Playable()
	if err != nil {
		return "not playable: " + err.Error()
	}
	stats := wcore.ComputeStats(lvl.Grid)
	info := fmt.Sprintf("%d presents, %d balls", stats.Collectibles, stats.Hazards)
	if !wcore.GoalReachable(playable, willy.CurrentRules().HazardPolicy) {
		info += ", bell may be unreachable"
	}
	return info
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is how many levels fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	endIdx := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(fmt.Sprintf("%s%2d. %s", cursor, i+1, m.levels[i].Title()))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	if len(m.levels) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.MenuDescription.Render(m.infos[m.cursor]), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m LevelMenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker. Returns nil when the player
// backed out or quit.
func RunLevelSelector(lvls []levels.Level, current string, cfg core.RuntimeConfig) (*levels.Level, error) {
	model := NewLevelMenuModel(lvls, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
