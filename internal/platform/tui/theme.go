package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the level picker and progress board.
// The board itself is drawn from engine styles and does not use it.
type Theme struct {
	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuSolved      lipgloss.Style
	MenuDescription lipgloss.Style

	// Shared chrome
	Controls lipgloss.Style
	Border   lipgloss.Style
	Empty    lipgloss.Style

	// Progress table
	Table table.Styles
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	t := table.DefaultStyles()
	t.Header = t.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	t.Selected = t.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MenuSolved:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Controls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),

		Table: t,
	}
}

// MonoTheme returns a theme that only uses text attributes.
func MonoTheme() Theme {
	t := table.DefaultStyles()
	t.Header = t.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	t.Selected = lipgloss.NewStyle().Reverse(true)

	plain := lipgloss.NewStyle()
	return Theme{
		MenuTitle:       plain.Bold(true),
		MenuItemNormal:  plain,
		MenuItemActive:  plain.Reverse(true),
		MenuSolved:      plain.Bold(true),
		MenuDescription: plain,

		Controls: plain,
		Border:   plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Empty:    plain.Padding(2, 4),

		Table: t,
	}
}

// ThemeByName returns the named theme, falling back to the default one.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
