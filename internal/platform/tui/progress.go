package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Progress board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show pack list sidebar
	sidebarWidth       = 20  // Width of pack list sidebar
	maxSolves          = 100 // Max solves to load
)

// ProgressSource supplies the solve history shown on the board.
type ProgressSource interface {
	RecentSolves(pack string, limit int) ([]storage.Solve, error)
	GetPackStats(pack string) (*storage.PackStats, error)
}

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel is the Bubble Tea model for the progress board.
type ProgressModel struct {
	packs       []registry.PackInfo
	packCursor  int
	source      ProgressSource
	solves      []storage.Solve
	stats       *storage.PackStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a board for packs, showing the one with ID
// current first. source may be nil when no database is available.
func NewProgressModel(source ProgressSource, packs []registry.PackInfo, current string, theme Theme, width, height int) ProgressModel {
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		packs:       packs,
		source:      source,
		keys:        DefaultProgressKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, p := range packs {
		if p.ID == current {
			m.packCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.packs) > 0 {
		m.load(m.packs[m.packCursor].ID)
	}
	return m
}

// createTable creates a new table sized for the current window.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 20},
		{Title: "Solved", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > 44 {
		columns[1].Width = min(tableWidth-22, 30)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help
	)
	t.SetStyles(m.theme.Table)
	return t
}

// load fetches the history of pack id.
func (m *ProgressModel) load(id string) {
	m.solves, m.stats, m.loadErr = nil, nil, nil
	if m.source != nil {
		m.solves, m.loadErr = m.source.RecentSolves(id, maxSolves)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.source.GetPackStats(id)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded solves.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.solves))
	for i, s := range m.solves {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.LevelIndex+1),
			s.LevelName,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress board.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor + 1) % len(m.packs)
				m.load(m.packs[m.packCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor - 1 + len(m.packs)) % len(m.packs)
				m.load(m.packs[m.packCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress board.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "PROGRESS"
	if len(m.packs) > 0 {
		title = fmt.Sprintf("PROGRESS - %s", m.packs[m.packCursor].Title)
	}
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board with a sidebar for pack selection.
func (m ProgressModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Packs\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.packs {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.packCursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(p.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	sidebarRendered := m.theme.Border.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := m.theme.Border.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the board with the current pack above the table.
func (m ProgressModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.packs) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.packs[m.packCursor].Title), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(m.theme.Border.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the stats line and table, or an empty message.
func (m ProgressModel) renderTableContent() string {
	switch {
	case m.loadErr != nil:
		return m.theme.Empty.Render("Progress unavailable:\n" + m.loadErr.Error())
	case len(m.solves) == 0:
		return m.theme.Empty.Render("No levels solved yet.\nPlay a level to record progress!")
	}

	var b strings.Builder
	if m.stats != nil {
		b.WriteString(m.theme.MenuDescription.Render(
			fmt.Sprintf("%d levels solved, %d solves", m.stats.Levels, m.stats.Solves)))
		b.WriteString("\n")
	}
	b.WriteString(m.table.View())
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to the picker.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}

// RunProgress runs the progress board.
// Returns true if user wants to go back to the picker, false if quitting.
func RunProgress(source ProgressSource, packs []registry.PackInfo, current string, theme Theme, width, height int) (goBack bool, err error) {
	model := NewProgressModel(source, packs, current, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ProgressModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
