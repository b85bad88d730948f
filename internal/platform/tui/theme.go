package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used outside the game board.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style

	// Editor palette
	PaletteItem   lipgloss.Style
	PaletteActive lipgloss.Style
	Cursor        lipgloss.Style

	// Status line
	StatusInfo  lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		PaletteItem: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1),
		PaletteActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),

		StatusInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.PaletteActive = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	theme.StatusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
