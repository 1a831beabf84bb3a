package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// Rows reserved under the game for the short and the full key help.
const (
	shortHelpHeight = 1
	fullHelpHeight  = 4
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game: it turns input into frames, redraws the timer
// every tick and records each finished game exactly once.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	renderer  *ScreenRenderer
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	gameState core.GameState
	user      string
	tickID    int64
	termH     int // full terminal height, help included

	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// GameOption customizes NewGameModel.
type GameOption func(*GameModel)

// WithRenderer sets the renderer used for the board (one per SSH session).
func WithRenderer(r *ScreenRenderer) GameOption {
	return func(m *GameModel) { m.renderer = r }
}

// WithUser tags logged results with the player's name.
func WithUser(user string) GameOption {
	return func(m *GameModel) { m.user = user }
}

// Standalone makes Back quit instead of returning to the menu.
func Standalone() GameOption {
	return func(m *GameModel) {
		m.standalone = true
		m.keyMapper.Keys.Back.SetHelp("esc/b", "quit")
	}
}

// NewGameModel creates a model for game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:      game,
		store:     store,
		logger:    logger,
		config:    cfg,
		termH:     cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		tickID:    nextTickID(),
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = NewScreenRenderer(nil)
	}

	m.applyHighScore()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the timer.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if frame, ok := m.keyMapper.MapMouse(msg); ok {
			m.step(frame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil // stale chain from an earlier game
		}
		// Nothing to simulate; the redraw advances the timer.
		return m, tickCmd(m.tickID, m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionRestart:
		m.restart()
		return m, nil

	case action != core.ActionNone:
		frame := core.NewInputFrame()
		frame.Set(action)
		m.step(frame)
	}

	return m, nil
}

// handleResize keeps the board and only recomputes the layout when the game
// supports it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.termH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// boardHeight is the terminal height left for the game above the help bar.
func (m GameModel) boardHeight() int {
	if m.help.ShowAll {
		return max(m.termH-fullHelpHeight, 0)
	}
	return max(m.termH-shortHelpHeight, 0)
}

// layout sizes the screen and the game to the space above the help bar.
func (m *GameModel) layout() {
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()
}

// step applies one frame and records the result when the game ends.
func (m *GameModel) step(frame core.InputFrame) {
	result := m.game.Step(frame)
	m.gameState = result.State
	if result.Finished {
		m.recordResult()
	}
}

// restart starts a fresh board with a new seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.applyHighScore()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
}

func (m *GameModel) applyHighScore() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok || m.store == nil {
		return
	}
	if d, err := minesweeper.ParseDifficulty(m.game.ID()); err == nil {
		hs.SetHighScore(m.store.HighScores().HighScore(d))
	}
}

// recordResult stores the finished game and offers its score to the table.
func (m *GameModel) recordResult() {
	rep, ok := m.game.(registry.Reporter)
	if !ok {
		return
	}
	r := rep.Result()

	m.logger.Info("game finished",
		"user", m.user,
		"difficulty", m.game.ID(),
		"outcome", r.Outcome,
		"score", r.Score,
		"elapsed", r.Elapsed,
		"revealed", r.Revealed,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.ResultEntry{
		SessionID:  r.SessionID,
		Difficulty: m.game.ID(),
		Outcome:    r.Outcome,
		Score:      r.Score,
		Elapsed:    r.Elapsed,
		Revealed:   r.Revealed,
	})
	if err != nil {
		m.logger.Error("could not save result", "error", err)
	}

	d, err := minesweeper.ParseDifficulty(m.game.ID())
	if err != nil {
		return
	}
	if best, improved := m.store.RecordScore(d, r.Score); improved {
		m.logger.Info("new high score", "user", m.user, "difficulty", d, "score", best)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys))
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg, Standalone())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click reveals, right click flags
	)

	_, err := p.Run()
	return err
}
