package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/meteors"
	"github.com/vovakirdan/tui-meteors/internal/platform/matrix"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

// GameOptions configures a Model.
type GameOptions struct {
	Runtime core.RuntimeConfig
	Meteors config.MeteorsConfig
	Player  string         // name the scores are saved under
	Store   *storage.Store // nil disables the leaderboard
	Logger  *log.Logger    // nil discards

	// Context bounds every game of the model; nil means background.
	// Hosts that outlive the model (SSH) cancel it when the client leaves.
	Context context.Context
}

// game is one running session with its matrix host.
type game struct {
	id       int
	seed     int64
	display  *matrix.Display
	pad      *matrix.Pad
	session  *meteors.Session
	ctx      context.Context
	cancel   context.CancelFunc
	initial  time.Duration
	decrease time.Duration
}

// run drives the session until the game is cancelled.
func (g *game) run() tea.Cmd {
	return func() tea.Msg {
		err := g.session.Run(g.ctx, g.initial, g.decrease)
		return sessionDoneMsg{id: g.id, err: err}
	}
}

// Model is the Bubble Tea model for the meteors game.
type Model struct {
	opts   GameOptions
	timing meteors.Timing
	logger *log.Logger

	game      *game
	gameState core.GameState
	keys      KeyMap
	help      help.Model

	scores     []storage.ScoreEntry
	savedID    int64
	scoreSaved bool // Whether score has been saved for current game over

	width    int
	height   int
	quitting bool
}

// NewModel creates a model with its first game ready to run.
// opts.Meteors must be valid.
func NewModel(opts GameOptions) (Model, error) {
	timing, err := meteors.TimingFromConfig(opts.Meteors)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "player"
	}

	m := Model{
		opts:   opts,
		timing: timing,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
	m.game = m.newGame(0)
	return m, nil
}

// gameSeed returns the seed of game number id. With a configured seed every
// game is reproducible; zero means time-based.
func (m Model) gameSeed(id int) int64 {
	if m.opts.Runtime.Seed == 0 {
		return time.Now().UnixNano()
	}
	return m.opts.Runtime.Seed + int64(id)
}

// newGame wires a fresh display, pad and session for game number id.
func (m Model) newGame(id int) *game {
	seed := m.gameSeed(id)
	display := matrix.New(meteors.Width, meteors.Height)
	pad := matrix.NewPad()
	session := meteors.NewSession(display, rand.New(rand.NewSource(seed)),
		meteors.WithTiming(m.timing),
		meteors.WithLogger(m.logger.With("game", id)),
	)
	session.Initialize(pad)

	parent := m.opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &game{
		id:       id,
		seed:     seed,
		display:  display,
		pad:      pad,
		session:  session,
		ctx:      ctx,
		cancel:   cancel,
		initial:  m.opts.Meteors.Timing.InitialDelay(),
		decrease: m.opts.Meteors.Timing.DelayDecrease(),
	}
}

// Init starts the session and the redraw loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.game.run(), tickCmd(m.opts.Runtime.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case sessionDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("session stopped", "game", msg.id, "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if b, ok := action.Button(); ok {
		m.game.pad.Press(b)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.game.cancel()
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		m.game.cancel()
		m.game = m.newGame(m.game.id + 1)
		m.gameState = core.GameState{}
		m.scoreSaved = false
		m.savedID = 0
		m.logger.Info("new game", "game", m.game.id, "seed", m.game.seed)
		return m, m.game.run()
	}

	return m, nil
}

// handleTick samples the session state for the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.session.State()
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordScore saves the finished game and reloads the leaderboard.
// Points keep counting after game over; the score at detection time is kept.
func (m *Model) recordScore() {
	m.scoreSaved = true
	m.logger.Info("game over", "player", m.opts.Player, "score", m.gameState.Score)

	if m.opts.Store == nil {
		return
	}

	id, err := m.opts.Store.SaveScore(m.opts.Player, m.gameState.Score)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.savedID = id

	scores, err := m.opts.Store.TopScores(leaderboardSize)
	if err != nil {
		m.logger.Warn("could not load scores", "error", err)
		return
	}
	m.scores = scores
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := m.game.display.Snapshot()
	parts := []string{
		titleStyle.Render("METEORS"),
		RenderBoard(frame),
		statusStyle.Render(m.statusLine()),
	}

	if m.gameState.GameOver {
		parts = append(parts, overStyle.Render("GAME OVER"))
		if m.opts.Store != nil {
			parts = append(parts, renderLeaderboard(m.scores, m.savedID))
		}
	}
	parts = append(parts, helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) statusLine() string {
	return fmt.Sprintf("score %d  delay %dms  meteors %d",
		m.gameState.Score,
		m.game.session.Delay().Milliseconds(),
		m.game.session.Cap(),
	)
}

// Stop cancels the current game.
func (m Model) Stop() {
	m.game.cancel()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts GameOptions) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Stop()
	}
	return err
}
