package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// MenuModel is the level picker for one catalog.
type MenuModel struct {
	title        string
	levelNames   []string
	solved       mapset.Set[string]
	cursor       int
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	selected     bool
	progress     bool
	quitting     bool
}

// NewMenuModel creates a level picker for c. Levels whose names are in
// solved get a check mark and the cursor starts on the first unsolved one.
func NewMenuModel(title string, c sokoban.Catalog, solved mapset.Set[string], theme Theme, width, height int) MenuModel {
	names := make([]string, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		def, err := c.Level(i)
		if err != nil {
			def.Name = fmt.Sprintf("%02d", i+1)
		}
		names = append(names, def.Name)
	}

	m := MenuModel{
		title:      title,
		levelNames: names,
		solved:     solved,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		theme:      theme,
	}
	for i, name := range names {
		if !solved.Has(name) {
			m.cursor = i
			break
		}
	}
	m.updateScroll()
	return m
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levelNames)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levelNames) > 0 {
			m.selected = true
			return m, tea.Quit
		}
	case MenuActionProgress:
		m.progress = true
		return m, tea.Quit
	}
	return m, nil
}

// visibleItems is how many level rows fit between the header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level list.
func (m MenuModel) View() string {
	if m.quitting || m.selected || m.progress {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(sokoban.DefaultTitle), m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("%s: %d/%d solved", m.title, m.solvedCount(), len(m.levelNames))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.levelNames))
	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		mark := "   "
		if m.solved.Has(m.levelNames[i]) {
			mark = m.theme.MenuSolved.Render(" ✓ ")
		}
		line := style.Render(fmt.Sprintf("%s%2d. %-20s", cursor, i+1, m.levelNames[i])) + mark
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if end < len(m.levelNames) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Progress  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) solvedCount() int {
	n := 0
	for _, name := range m.levelNames {
		if m.solved.Has(name) {
			n++
		}
	}
	return n
}

// Cursor returns the highlighted level index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// centerText pads text so it sits in the middle of width columns.
// Width is measured without ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Index        int  // Chosen level, valid when Play is set
	Play         bool // A level was chosen
	WantProgress bool // User opened the progress board
	Quit         bool
	Width        int
	Height       int
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(title string, c sokoban.Catalog, solved mapset.Set[string], theme Theme, width, height int) (MenuResult, error) {
	model := NewMenuModel(title, c, solved, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	return MenuResult{
		Index:        m.cursor,
		Play:         m.selected,
		WantProgress: m.progress,
		Quit:         m.quitting,
		Width:        m.width,
		Height:       m.height,
	}
}
