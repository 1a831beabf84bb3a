package minesweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScore(t *testing.T) {
	easy, hard := DefaultParams(Easy), DefaultParams(Hard)

	tests := []struct {
		name     string
		params   Params
		revealed int
		elapsed  int
		want     int
	}{
		{"easy win instantly", easy, easy.SafeCells(), 0, 1000},
		{"easy win in 50s", easy, easy.SafeCells(), 50, 750},
		{"hard win in 50s", hard, hard.SafeCells(), 50, 2250},
		{"medium win in 10s", DefaultParams(Medium), DefaultParams(Medium).SafeCells(), 10, 1900},
		{"partial progress on loss", easy, 27, 0, 500},
		{"floored", easy, 1, 0, 18},
		{"never negative", easy, 1, 500, 0},
		{"nothing revealed", hard, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeScore(tc.params, tc.revealed, tc.elapsed, DefaultScoring())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeScoreCustomConstants(t *testing.T) {
	p := Params{Size: 2, Mines: 1, Multiplier: 2}
	got := ComputeScore(p, 3, 4, Scoring{BaseScore: 300, PenaltyPerSecond: 10})
	assert.Equal(t, 520, got) // (300 - 40) * 2
}

func TestSessionScoreAndElapsed(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s, err := NewSession(Easy,
		WithParams(Params{Size: 3, Multiplier: 1}),
		WithLayout([]Pos{{0, 0}}),
		WithClock(func() time.Time { return start }),
	)
	require.NoError(t, err)
	assert.Equal(t, start, s.StartedAt)

	assert.Equal(t, 0, s.ElapsedSeconds(start))
	assert.Equal(t, 50, s.ElapsedSeconds(start.Add(50*time.Second+900*time.Millisecond)))
	assert.Equal(t, 0, s.ElapsedSeconds(start.Add(-time.Minute)))

	s.Reveal(2, 2)
	require.Equal(t, Won, s.Status)
	assert.Equal(t, 1000, s.Score(0))
	assert.Equal(t, 750, s.Score(50))
}
