package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// SolveRecorder persists completed levels. *storage.Store implements it.
type SolveRecorder interface {
	RecordSolve(pack string, levelIndex int, levelName, runID string) (int64, error)
}

// Options configures a play session.
type Options struct {
	Pack   string        // Pack ID stored with solves
	RunID  string        // Identifies this run in the progress database
	Store  SolveRecorder // Optional; nil disables persistence
	Render sokoban.RenderOptions
	Width  int
	Height int
}

// Result summarizes a finished play session.
type Result struct {
	Back   bool    // User asked to go back rather than quit
	Index  int     // Level shown when the session ended
	Solved int     // Levels solved during the session
	Errors []error // Non-fatal errors collected while the terminal was busy
}

// Model is the Bubble Tea model for playing a Sokoban catalog.
type Model struct {
	game      *sokoban.Game
	screen    *core.Screen
	opts      Options
	keyMapper *KeyMapper
	status    string
	statusSeq int
	solved    int
	errs      []error
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *sokoban.Game, opts Options) Model {
	return Model{
		game:      game,
		screen:    core.NewScreen(opts.Width, opts.Height),
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey applies at most one action per key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action == core.ActionRedraw:
		return m, tea.ClearScreen
	case action == core.ActionNone:
		return m, nil
	}

	out, err := m.game.Apply(action)
	if err != nil {
		m.errs = append(m.errs, err)
		return m.setStatus(fmt.Sprintf("Cannot open level: %v", err))
	}

	if out.Solved {
		m.solved++
		if err := m.recordSolve(); err != nil {
			m.errs = append(m.errs, err)
			return m.setStatus("Progress not saved")
		}
	}
	return m, nil
}

func (m Model) recordSolve() error {
	if m.opts.Store == nil {
		return nil
	}
	_, err := m.opts.Store.RecordSolve(m.opts.Pack, m.game.Index(), m.game.LevelName(), m.opts.RunID)
	return err
}

// setStatus shows text on the bottom line until it expires.
func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	return m, expireStatusCmd(m.statusSeq, statusTimeout)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen, m.opts.Render)
	if m.status != "" {
		var style core.Style
		if m.opts.Render.Color {
			style.Attr = core.AttrReverse
		}
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status, style)
	}

	return RenderScreen(m.screen)
}

// Result returns what happened during the session so far.
func (m Model) Result() Result {
	return Result{
		Back:   m.back,
		Index:  m.game.Index(),
		Solved: m.solved,
		Errors: m.errs,
	}
}

// Run plays game until the user quits or goes back.
func Run(game *sokoban.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
