package minesweeper

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a session.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns the lowercase status name, also used as the stored outcome.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session no longer accepts actions.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Session holds all state for one game. It is owned by a single caller and
// is not safe for concurrent use.
type Session struct {
	ID             uuid.UUID
	Difficulty     Difficulty
	Params         Params
	Scoring        Scoring
	Board          *Board
	RevealedSafe   int
	FlagsRemaining int
	StartedAt      time.Time
	Status         Status

	// Hit is the mine that ended a lost session.
	Hit *Pos
}

type sessionOptions struct {
	params  *Params
	scoring Scoring
	rng     *rand.Rand
	clock   func() time.Time
	layout  []Pos
}

// SessionOption customizes NewSession.
type SessionOption func(*sessionOptions)

// WithParams overrides the built-in params for the difficulty.
func WithParams(p Params) SessionOption {
	return func(o *sessionOptions) {
		o.params = &p
	}
}

// WithScoring overrides the score constants.
func WithScoring(s Scoring) SessionOption {
	return func(o *sessionOptions) {
		o.scoring = s
	}
}

// WithRand sets the random source used for mine placement.
func WithRand(rng *rand.Rand) SessionOption {
	return func(o *sessionOptions) {
		o.rng = rng
	}
}

// WithClock sets the source of the session start time.
func WithClock(now func() time.Time) SessionOption {
	return func(o *sessionOptions) {
		o.clock = now
	}
}

// WithLayout plants mines at fixed positions instead of placing them randomly.
// The session's mine count becomes the number of distinct in-bounds positions.
func WithLayout(mines []Pos) SessionOption {
	return func(o *sessionOptions) {
		o.layout = mines
	}
}

// NewSession creates a fully initialized game: board allocated, mines placed,
// adjacency computed, timer started.
func NewSession(d Difficulty, opts ...SessionOption) (*Session, error) {
	o := sessionOptions{
		scoring: DefaultScoring(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	params := DefaultParams(d)
	if o.params != nil {
		params = *o.params
	}
	if !d.Valid() && o.params == nil {
		return nil, fmt.Errorf("minesweeper: unknown difficulty %d: %w", int(d), ErrInvalidParams)
	}
	if o.layout != nil && params.Size > 0 {
		params.Mines = countDistinctInBounds(o.layout, params.Size)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	board := InitBoard(params)
	if o.layout != nil {
		PlantMines(board, o.layout)
	} else {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(o.clock().UnixNano()))
		}
		if err := PlaceMines(board, params.Mines, rng); err != nil {
			return nil, err
		}
	}
	ComputeAdjacency(board)

	return &Session{
		ID:             uuid.New(),
		Difficulty:     d,
		Params:         params,
		Scoring:        o.scoring,
		Board:          board,
		FlagsRemaining: params.Mines,
		StartedAt:      o.clock(),
		Status:         InProgress,
	}, nil
}

func countDistinctInBounds(mines []Pos, size int) int {
	seen := make(map[Pos]struct{}, len(mines))
	for _, p := range mines {
		if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
			continue
		}
		seen[p] = struct{}{}
	}
	return len(seen)
}

// Active reports whether the session still accepts actions.
func (s *Session) Active() bool {
	return !s.Status.Terminal()
}

// CheckWin reports whether every safe cell has been revealed.
func (s *Session) CheckWin() bool {
	return s.RevealedSafe == s.Params.SafeCells()
}

// ElapsedSeconds returns whole seconds since the session started.
// It never returns a negative value.
func (s *Session) ElapsedSeconds(now time.Time) int {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
