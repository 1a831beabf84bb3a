package minesweeper

import (
	"fmt"
	"math/rand"
)

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// Cell is one square of the board.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // mined neighbors, 0..8
}

// Board is a rows x cols grid of cells stored row-major.
type Board struct {
	Rows, Cols int
	cells      []Cell
}

// NewBoard allocates a board with every cell hidden, unflagged and mine free.
func NewBoard(rows, cols int) *Board {
	return &Board{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// InitBoard allocates the square board described by p.
func InitBoard(p Params) *Board {
	return NewBoard(p.Size, p.Size)
}

// In reports whether (row, col) lies on the board.
func (b *Board) In(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Cell returns a copy of the cell at (row, col). The position must be in bounds.
func (b *Board) Cell(row, col int) Cell {
	return *b.at(row, col)
}

func (b *Board) at(row, col int) *Cell {
	return &b.cells[row*b.Cols+col]
}

// MineCount returns the number of mined cells.
func (b *Board) MineCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Mine {
			n++
		}
	}
	return n
}

// Mines returns the positions of all mined cells in row-major order.
func (b *Board) Mines() []Pos {
	var out []Pos
	for i := range b.cells {
		if b.cells[i].Mine {
			out = append(out, Pos{Row: i / b.Cols, Col: i % b.Cols})
		}
	}
	return out
}

// neighbors calls fn for every in-bounds cell at Chebyshev distance 1.
func (b *Board) neighbors(p Pos, fn func(Pos)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := p.Row+dr, p.Col+dc
			if b.In(r, c) {
				fn(Pos{Row: r, Col: c})
			}
		}
	}
}

// PlaceMines marks count distinct cells as mines, chosen uniformly at random.
// It runs a partial Fisher-Yates shuffle over the cell indices, so it always
// terminates. There is no safe first click.
func PlaceMines(b *Board, count int, rng *rand.Rand) error {
	total := len(b.cells)
	if count < 0 || count >= total {
		return fmt.Errorf("minesweeper: cannot place %d mines on %d cells: %w", count, total, ErrInvalidParams)
	}

	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
		b.cells[idx[i]].Mine = true
	}
	return nil
}

// PlantMines marks the given positions as mines. Duplicates and
// out-of-bounds positions are ignored. It returns the number of mines planted.
func PlantMines(b *Board, positions []Pos) int {
	n := 0
	for _, p := range positions {
		if !b.In(p.Row, p.Col) {
			continue
		}
		c := b.at(p.Row, p.Col)
		if c.Mine {
			continue
		}
		c.Mine = true
		n++
	}
	return n
}

// ComputeAdjacency fills Adjacent for every non-mine cell.
// It must run after all mines are placed.
func ComputeAdjacency(b *Board) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.at(r, c)
			if cell.Mine {
				continue
			}
			n := 0
			b.neighbors(Pos{Row: r, Col: c}, func(p Pos) {
				if b.at(p.Row, p.Col).Mine {
					n++
				}
			})
			cell.Adjacent = n
		}
	}
}
