package minesweeper

import "math"

// Scoring holds the score formula constants.
type Scoring struct {
	BaseScore        int // points for revealing every safe cell
	PenaltyPerSecond int
}

// DefaultScoring returns the standard constants: 1000 base, 5 per second.
func DefaultScoring() Scoring {
	return Scoring{BaseScore: 1000, PenaltyPerSecond: 5}
}

// ComputeScore rates a game by revealed fraction and time taken:
//
//	floor((base * revealed/safe - elapsed * penalty) * multiplier), at least 0
//
// Lost games score their partial progress.
func ComputeScore(p Params, revealedSafe, elapsedSeconds int, sc Scoring) int {
	safe := p.SafeCells()
	if safe <= 0 {
		return 0
	}
	progress := float64(revealedSafe) / float64(safe)
	raw := float64(sc.BaseScore)*progress - float64(elapsedSeconds*sc.PenaltyPerSecond)
	score := math.Floor(raw * float64(p.Multiplier))
	if score < 0 {
		return 0
	}
	return int(score)
}

// Score computes the session's score for the given elapsed time.
func (s *Session) Score(elapsedSeconds int) int {
	return ComputeScore(s.Params, s.RevealedSafe, elapsedSeconds, s.Scoring)
}
