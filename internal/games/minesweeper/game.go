package minesweeper

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// Layout constants, in screen cells.
const (
	cellWidth    = 3 // "[n]" when the cursor is on it, " n " otherwise
	hudHeight    = 2
	footerHeight = 4
)

var (
	gameConfig   = config.DefaultMinesweeperConfig()
	gameConfigMu sync.RWMutex
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.MinesweeperConfig) {
	gameConfigMu.Lock()
	defer gameConfigMu.Unlock()
	gameConfig = cfg
}

// CurrentConfig returns the configuration set by SetConfig.
func CurrentConfig() config.MinesweeperConfig {
	gameConfigMu.RLock()
	defer gameConfigMu.RUnlock()
	return gameConfig
}

// ParamsFromConfig converts the configured preset for d into engine params.
func ParamsFromConfig(cfg config.MinesweeperConfig, d Difficulty) (Params, Scoring, error) {
	dp, err := cfg.ParamsFor(config.DifficultyPreset(d.String()))
	if err != nil {
		return Params{}, Scoring{}, err
	}
	p := Params{Size: dp.Size, Mines: dp.Mines, Multiplier: dp.Multiplier}
	sc := Scoring{BaseScore: cfg.Scoring.BaseScore, PenaltyPerSecond: cfg.Scoring.PenaltyPerSecond}
	return p, sc, p.Validate()
}

// Game adapts a Session to the platform's registry.Game contract.
// It owns the cursor, the screen layout and the end-of-game bookkeeping.
type Game struct {
	difficulty Difficulty
	session    *Session
	clock      func() time.Time

	cursor  Pos
	message string // one-line notice shown under the board

	screenW, screenH int
	boardX, boardY   int // top-left corner of the board frame
	tooSmall         bool

	best         int
	newBest      bool
	finalScore   int
	finalElapsed int
}

// New creates a game for the given difficulty. Call Reset before use.
func New(d Difficulty) *Game {
	return &Game{
		difficulty: d,
		clock:      time.Now,
	}
}

func init() {
	for _, d := range Difficulties {
		registry.Register(d.String(), func() registry.Game {
			return New(d)
		})
	}
}

// ID returns the game identifier, which is the difficulty name.
func (g *Game) ID() string {
	return g.difficulty.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper (" + g.difficulty.Title() + ")"
}

// Difficulty returns the difficulty this game was created for.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Session exposes the underlying engine session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new board. The same seed always yields the same mine layout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, scoring, err := ParamsFromConfig(CurrentConfig(), g.difficulty)
	if err != nil {
		params, scoring = DefaultParams(g.difficulty), DefaultScoring()
	}

	s, err := NewSession(g.difficulty,
		WithParams(params),
		WithScoring(scoring),
		WithRand(rand.New(rand.NewSource(cfg.Seed))),
		WithClock(g.clock),
	)
	if err != nil {
		// Defaults are always valid, so this only guards against a bad difficulty.
		s, _ = NewSession(Easy, WithRand(rand.New(rand.NewSource(cfg.Seed))), WithClock(g.clock))
	}

	g.session = s
	g.cursor = Pos{Row: s.Params.Size / 2, Col: s.Params.Size / 2}
	g.message = ""
	g.newBest = false
	g.finalScore = 0
	g.finalElapsed = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size. The board is kept.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.session == nil {
		return
	}
	boardW, boardH := g.frameSize()
	g.tooSmall = w < boardW || h < hudHeight+boardH+footerHeight
	g.boardX = (w - boardW) / 2
	g.boardY = hudHeight
}

// frameSize returns the board size including its border.
func (g *Game) frameSize() (int, int) {
	b := g.session.Board
	return b.Cols*cellWidth + 2, b.Rows + 2
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(best int) {
	g.best = best
}

// Step applies one frame of input.
// Movement keys move the cursor; a pointer press targets the cell under it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.tooSmall || !g.session.Active() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Pointer != nil {
		p, ok := g.cellAt(in.Pointer.X, in.Pointer.Y)
		if !ok {
			return core.StepResult{State: g.State()}
		}
		g.cursor = p
	}

	switch {
	case in.Has(core.ActionReveal):
		g.message = ""
		g.session.Reveal(g.cursor.Row, g.cursor.Col)
	case in.Has(core.ActionFlag):
		g.message = ""
		cell := g.session.Board.Cell(g.cursor.Row, g.cursor.Col)
		if res := g.session.ToggleFlag(g.cursor.Row, g.cursor.Col); !res.Changed && !cell.Revealed {
			g.message = "No flags left"
		}
	}

	if g.session.Active() {
		return core.StepResult{State: g.State()}
	}
	g.finish()
	return core.StepResult{State: g.State(), Finished: true}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	b := g.session.Board
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, b.Rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, b.Cols-1)
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (Pos, bool) {
	b := g.session.Board
	inner := core.NewRect(g.boardX+1, g.boardY+1, b.Cols*cellWidth, b.Rows)
	if !inner.Contains(x, y) {
		return Pos{}, false
	}
	return Pos{Row: y - inner.Y, Col: (x - inner.X) / cellWidth}, true
}

// finish freezes the timer and score once the session turns terminal.
func (g *Game) finish() {
	g.finalElapsed = g.session.ElapsedSeconds(g.clock())
	g.finalScore = g.session.Score(g.finalElapsed)

	table, improved := HighScoreTable{g.difficulty: g.best}.Record(g.difficulty, g.finalScore)
	g.best, g.newBest = table.HighScore(g.difficulty), improved
}

// elapsed returns the seconds shown by the timer.
func (g *Game) elapsed() int {
	if g.session == nil {
		return 0
	}
	if !g.session.Active() {
		return g.finalElapsed
	}
	return g.session.ElapsedSeconds(g.clock())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.finalScore,
		GameOver: !g.session.Active(),
		Won:      g.session.Status == Won,
		Paused:   g.tooSmall,
	}
}

// Result describes the finished game for storage.
func (g *Game) Result() registry.Result {
	if g.session == nil {
		return registry.Result{}
	}
	return registry.Result{
		SessionID: g.session.ID.String(),
		Outcome:   g.session.Status.String(),
		Score:     g.finalScore,
		Elapsed:   g.finalElapsed,
		Revealed:  g.session.RevealedSafe,
	}
}
