package minesweeper

// FlagResult is returned by Session.ToggleFlag.
type FlagResult struct {
	Changed        bool
	Flagged        bool // flag state of the cell after the call
	FlagsRemaining int
}

// ToggleFlag flags or unflags the hidden cell at (row, col).
//
// Flagging needs a flag left in the pool. Unflagging always returns the flag
// to the pool, without clamping at the mine count.
func (s *Session) ToggleFlag(row, col int) FlagResult {
	res := FlagResult{FlagsRemaining: s.FlagsRemaining}
	if !s.Active() || !s.Board.In(row, col) {
		return res
	}
	cell := s.Board.at(row, col)
	res.Flagged = cell.Flagged
	if cell.Revealed {
		return res
	}

	if cell.Flagged {
		cell.Flagged = false
		s.FlagsRemaining++
	} else {
		if s.FlagsRemaining <= 0 {
			return res
		}
		cell.Flagged = true
		s.FlagsRemaining--
	}

	return FlagResult{
		Changed:        true,
		Flagged:        cell.Flagged,
		FlagsRemaining: s.FlagsRemaining,
	}
}
