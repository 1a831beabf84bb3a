package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(cells []CellView) []Pos {
	out := make([]Pos, len(cells))
	for i, c := range cells {
		out[i] = c.Pos
	}
	return out
}

func TestRevealFloodStopsAtNumberedBorder(t *testing.T) {
	s := wallSession(t)

	res := s.Reveal(0, 0)
	require.Equal(t, Revealed, res.Outcome)

	want := []Pos{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, // zero region
		{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, // numbered border
	}
	assert.ElementsMatch(t, want, positions(res.Cells))
	assert.Equal(t, len(want), s.RevealedSafe)
	assert.False(t, res.IsWin)

	// Nothing beyond the border.
	for r := 0; r < 5; r++ {
		for c := 2; c < 5; c++ {
			assert.False(t, s.Board.Cell(r, c).Revealed, "(%d,%d) revealed past the border", r, c)
		}
	}
	assert.Equal(t, 2, s.Board.Cell(0, 1).Adjacent)
	assert.Equal(t, 3, s.Board.Cell(2, 1).Adjacent)
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	s := wallSession(t)

	res := s.Reveal(2, 1)
	require.Equal(t, Revealed, res.Outcome)
	assert.Equal(t, []Pos{{2, 1}}, positions(res.Cells))
	assert.Equal(t, 1, s.RevealedSafe)
}

func TestRevealSkipsFlaggedCells(t *testing.T) {
	s := wallSession(t)
	require.True(t, s.ToggleFlag(2, 0).Changed)

	// Direct reveal of a flagged cell is a no-op.
	assert.Equal(t, Unchanged, s.Reveal(2, 0).Outcome)

	res := s.Reveal(0, 0)
	require.Equal(t, Revealed, res.Outcome)
	assert.ElementsMatch(t, []Pos{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}}, positions(res.Cells))

	assert.False(t, s.Board.Cell(2, 0).Revealed)
	assert.True(t, s.Board.Cell(2, 0).Flagged)
	assert.False(t, s.Board.Cell(3, 0).Revealed)
}

func TestRevealMineLoses(t *testing.T) {
	s := wallSession(t)
	s.ToggleFlag(4, 2)

	res := s.Reveal(1, 2)
	require.Equal(t, MineHit, res.Outcome)
	assert.Equal(t, Lost, s.Status)
	assert.Equal(t, &Pos{1, 2}, s.Hit)
	assert.ElementsMatch(t, wallLayout, res.Mines)
	assert.Equal(t, []Pos{{1, 2}}, positions(res.Cells))

	for _, p := range wallLayout {
		assert.True(t, s.Board.Cell(p.Row, p.Col).Revealed, "mine %v not exposed", p)
	}
	// Safe cells are not flooded on loss.
	assert.False(t, s.Board.Cell(0, 0).Revealed)
	assert.Zero(t, s.RevealedSafe)

	// Terminal sessions reject further actions.
	assert.Equal(t, Unchanged, s.Reveal(0, 0).Outcome)
	assert.False(t, s.ToggleFlag(0, 0).Changed)
	assert.False(t, s.Board.Cell(0, 0).Revealed)
}

func TestRevealWinsExactlyWhenAllSafeCellsRevealed(t *testing.T) {
	s, err := NewSession(Easy,
		WithParams(Params{Size: 3, Multiplier: 1}),
		WithLayout([]Pos{{0, 0}}),
	)
	require.NoError(t, err)
	require.Equal(t, 8, s.Params.SafeCells())

	res := s.Reveal(0, 1)
	require.Equal(t, Revealed, res.Outcome)
	assert.False(t, res.IsWin)
	assert.False(t, s.CheckWin())
	assert.Equal(t, InProgress, s.Status)

	res = s.Reveal(2, 2)
	require.Equal(t, Revealed, res.Outcome)
	assert.Len(t, res.Cells, 7)
	assert.True(t, res.IsWin)
	assert.True(t, s.CheckWin())
	assert.Equal(t, Won, s.Status)
	assert.Equal(t, 8, s.RevealedSafe)

	assert.Equal(t, Unchanged, s.Reveal(0, 0).Outcome, "won session must ignore reveals")
}

func TestRevealIsIdempotent(t *testing.T) {
	s := wallSession(t)

	first := s.Reveal(2, 3)
	require.Equal(t, Revealed, first.Outcome)
	before := s.RevealedSafe

	for i := 0; i < 2; i++ {
		res := s.Reveal(2, 3)
		assert.Equal(t, Unchanged, res.Outcome)
		assert.Empty(t, res.Cells)
		assert.Equal(t, before, s.RevealedSafe)
		assert.Equal(t, InProgress, s.Status)
	}
}

func TestRevealOutOfBounds(t *testing.T) {
	s := wallSession(t)
	for _, p := range []Pos{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		assert.Equal(t, Unchanged, s.Reveal(p.Row, p.Col).Outcome, "%v", p)
	}
	assert.Zero(t, s.RevealedSafe)
}

func TestRevealLargeOpenBoard(t *testing.T) {
	// One mine in a corner: a single reveal opens all but the mine.
	s, err := NewSession(Hard,
		WithParams(Params{Size: 64, Multiplier: 1}),
		WithLayout([]Pos{{63, 63}}),
	)
	require.NoError(t, err)

	res := s.Reveal(0, 0)
	assert.True(t, res.IsWin)
	assert.Len(t, res.Cells, 64*64-1)
	assert.Equal(t, Won, s.Status)
}
