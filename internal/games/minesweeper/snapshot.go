package minesweeper

import (
	"strings"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Difficulty     Difficulty
	Status         Status
	RevealedSafe   int
	FlagsRemaining int
	Cursor         Pos
	Mines          []Pos
	Board          string // one line per row, glyphs as rendered
	Score          int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Difficulty: g.difficulty}
	}
	s := g.session

	rows := make([]string, s.Board.Rows)
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < s.Board.Cols; c++ {
			ch, _ := g.glyph(Pos{Row: r, Col: c})
			sb.WriteRune(ch)
		}
		rows[r] = sb.String()
	}

	return Snapshot{
		Difficulty:     g.difficulty,
		Status:         s.Status,
		RevealedSafe:   s.RevealedSafe,
		FlagsRemaining: s.FlagsRemaining,
		Cursor:         g.cursor,
		Mines:          s.Board.Mines(),
		Board:          strings.Join(rows, "\n"),
		Score:          g.finalScore,
	}
}
