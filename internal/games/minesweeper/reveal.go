package minesweeper

import "github.com/gammazero/deque"

// Outcome describes what a reveal did.
type Outcome int

const (
	Unchanged Outcome = iota
	Revealed
	MineHit
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Revealed:
		return "revealed"
	case MineHit:
		return "mine_hit"
	default:
		return "unknown"
	}
}

// CellView is the display state of a single cell after an action.
type CellView struct {
	Pos
	Mine     bool
	Flagged  bool
	Adjacent int
}

// RevealResult is returned by Session.Reveal.
type RevealResult struct {
	Outcome Outcome

	// Cells lists newly revealed cells in the order they were revealed.
	Cells []CellView

	// IsWin is set when this reveal uncovered the last safe cell.
	IsWin bool

	// Mines lists every mine on the board after a MineHit.
	Mines []Pos
}

func (b *Board) view(p Pos) CellView {
	c := b.at(p.Row, p.Col)
	return CellView{Pos: p, Mine: c.Mine, Flagged: c.Flagged, Adjacent: c.Adjacent}
}

// Reveal uncovers the cell at (row, col).
//
// Out-of-bounds positions, already revealed or flagged cells and terminal
// sessions are left untouched. A mine ends the session and exposes every mine.
// A zero cell cascades to its neighbors; numbered cells bound the cascade.
func (s *Session) Reveal(row, col int) RevealResult {
	if !s.Active() || !s.Board.In(row, col) {
		return RevealResult{Outcome: Unchanged}
	}
	cell := s.Board.at(row, col)
	if cell.Revealed || cell.Flagged {
		return RevealResult{Outcome: Unchanged}
	}

	start := Pos{Row: row, Col: col}
	if cell.Mine {
		cell.Revealed = true
		s.Status = Lost
		s.Hit = &start
		return RevealResult{
			Outcome: MineHit,
			Cells:   []CellView{s.Board.view(start)},
			Mines:   s.exposeMines(),
		}
	}

	cells := s.Board.flood(start)
	s.RevealedSafe += len(cells)

	res := RevealResult{Outcome: Revealed, Cells: cells}
	if s.CheckWin() {
		s.Status = Won
		res.IsWin = true
	}
	return res
}

// flood reveals start and, through zero cells, the connected region around it.
// Cells are marked revealed when queued, so each is visited once.
func (b *Board) flood(start Pos) []CellView {
	var queue deque.Deque[Pos]
	var out []CellView

	b.at(start.Row, start.Col).Revealed = true
	queue.PushBack(start)

	for queue.Len() > 0 {
		p := queue.PopFront()
		out = append(out, b.view(p))

		if b.at(p.Row, p.Col).Adjacent != 0 {
			continue
		}
		b.neighbors(p, func(n Pos) {
			c := b.at(n.Row, n.Col)
			if c.Revealed || c.Flagged || c.Mine {
				return
			}
			c.Revealed = true
			queue.PushBack(n)
		})
	}
	return out
}

// exposeMines reveals every mine on the board and returns their positions.
func (s *Session) exposeMines() []Pos {
	mines := s.Board.Mines()
	for _, p := range mines {
		s.Board.at(p.Row, p.Col).Revealed = true
	}
	return mines
}
