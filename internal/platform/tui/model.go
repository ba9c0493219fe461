package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twenty48/internal/engine"
	"github.com/vovakirdan/twenty48/internal/game"
)

// Options configures a game screen.
type Options struct {
	// Player chooses moves. Nil means the keyboard does.
	Player       game.Player
	Generator    game.Generator
	Initial      *game.State
	InitialTiles int
	// Cycle is the time for one move plus one tile when the player is an agent.
	Cycle time.Duration
	// HumanDelay is the pause between a key press and the next tile.
	HumanDelay time.Duration
	Logger     *log.Logger
}

type turn int

const (
	playerTurn turn = iota
	generatorTurn
)

// moveMsg carries a player decision made off the UI goroutine.
type moveMsg struct {
	epoch int
	dir   game.Direction
	ok    bool
	err   error
}

// placeMsg carries a generator decision made off the UI goroutine.
type placeMsg struct {
	epoch     int
	placement game.Placement
	ok        bool
	err       error
}

// boardView is the Viewer that keeps the latest board for rendering.
type boardView struct {
	board *game.State
}

func (v *boardView) Update(s *game.State) { v.board = s }

// Model is the Bubble Tea model for one game.
type Model struct {
	opts   Options
	game   *engine.Game
	view   *boardView
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	turn        turn
	initialLeft int
	moves       int
	epoch       int  // bumped on restart so late agent results are dropped
	loop        int  // bumped whenever a new tick loop starts
	busy        bool // an agent decision is in flight
	paused      bool
	over        bool
	err         error
	quitting    bool
}

// NewModel creates a game screen. Agents only ever see copies of the board,
// so their searches never race with rendering.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	view := &boardView{}
	g := engine.New(opts.Initial,
		engine.WithViewer(view),
		engine.WithLogger(opts.Logger),
	)

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:   opts,
		game:   g,
		view:   view,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: opts.Logger,
	}
	m.restart()
	return m
}

// Init starts the turn loop.
func (m Model) Init() tea.Cmd {
	return m.tick(0)
}

// tick schedules the next tick of the current loop.
func (m Model) tick(d time.Duration) tea.Cmd {
	return tickCmd(m.loop, d)
}

// newLoop supersedes every tick already scheduled and starts a fresh loop.
func (m *Model) newLoop() tea.Cmd {
	m.loop++
	return m.tick(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()

	case moveMsg:
		return m.handleMove(msg)

	case placeMsg:
		return m.handlePlace(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, m.newLoop()
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			return m, nil
		}
		return m, m.newLoop()
	}

	d, ok := m.keys.direction(msg)
	if !ok || m.opts.Player != nil || m.paused || m.over || m.turn != playerTurn || m.initialLeft > 0 {
		return m, nil
	}
	moved, err := m.game.Move(d)
	if err != nil {
		m.err = err
		return m, nil
	}
	if !moved {
		return m, nil
	}
	m.moves++
	m.turn = generatorTurn
	return m, m.tick(m.opts.HumanDelay)
}

// handleTick asks the agent whose turn it is for a decision.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.busy || m.over || m.err != nil {
		return m, nil
	}

	if m.turn == playerTurn {
		if m.view.board.IsOver() {
			m.over = true
			m.logger.Info("game over", "moves", m.moves, "max_tile", m.view.board.MaxTile().Value())
			return m, nil
		}
		if m.opts.Player == nil {
			return m, nil
		}
	}

	m.busy = true
	return m, m.decide()
}

// decide runs the current agent on a copy of the board.
func (m Model) decide() tea.Cmd {
	s := m.game.State()
	epoch := m.epoch
	if m.turn == playerTurn {
		p := m.opts.Player
		return func() tea.Msg {
			d, ok, err := p.Play(s)
			return moveMsg{epoch: epoch, dir: d, ok: ok, err: err}
		}
	}
	gen := m.opts.Generator
	return func() tea.Msg {
		pl, ok, err := gen.Generate(s)
		return placeMsg{epoch: epoch, placement: pl, ok: ok, err: err}
	}
}

func (m Model) handleMove(msg moveMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.epoch != m.epoch {
		return m, m.tick(0)
	}
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	if !msg.ok {
		m.over = true
		return m, nil
	}
	moved, err := m.game.Move(msg.dir)
	if err != nil {
		m.err = err
		return m, nil
	}
	if !moved {
		m.err = fmt.Errorf("tui: player chose blocked move %s: %w", msg.dir, game.ErrInvalidOperation)
		return m, nil
	}
	m.moves++
	m.turn = generatorTurn
	return m, m.tick(m.opts.Cycle / 5)
}

func (m Model) handlePlace(msg placeMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.epoch != m.epoch {
		return m, m.tick(0)
	}
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	if msg.ok {
		if _, err := m.game.Place(msg.placement); err != nil {
			m.err = err
			return m, nil
		}
	}
	if m.initialLeft > 0 {
		m.initialLeft--
		if m.initialLeft > 0 && msg.ok {
			return m, m.tick(0)
		}
		m.initialLeft = 0
	}
	m.turn = playerTurn
	if m.opts.Player == nil {
		return m, m.tick(0)
	}
	return m, m.tick(m.opts.Cycle * 4 / 5)
}

// restart resets the board. A decision still in flight is dropped when it
// arrives, and busy stays set until then so agents never run twice at once.
func (m *Model) restart() {
	m.epoch++
	m.game.Reset(m.opts.Initial)
	m.initialLeft = m.opts.InitialTiles
	m.turn = playerTurn
	if m.initialLeft > 0 {
		m.turn = generatorTurn
	}
	m.moves = 0
	m.over = false
	m.err = nil
	m.logger.Debug("new game", "initial_tiles", m.initialLeft)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n")
	b.WriteString(RenderBoard(m.view.board))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) status() string {
	parts := []string{
		fmt.Sprintf("Moves: %d", m.moves),
		fmt.Sprintf("Max: %d", m.view.board.MaxTile().Value()),
	}
	switch {
	case m.over:
		parts = append(parts, "GAME OVER - r to restart")
	case m.paused:
		parts = append(parts, "PAUSED")
	case m.busy:
		parts = append(parts, "thinking...")
	}
	return strings.Join(parts, "  ")
}

// Run starts the Bubble Tea program for one game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
