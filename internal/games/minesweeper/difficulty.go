package minesweeper

import (
	"fmt"
	"strings"
)

// Difficulty selects board size, mine count and score multiplier.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the lowercase identifier ("easy", "medium", "hard").
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("minesweeper: unknown difficulty %q (want easy, medium or hard)", s)
}

// Params is the board configuration derived from a difficulty.
// Boards are always square.
type Params struct {
	Size       int // rows and columns
	Mines      int
	Multiplier int // score multiplier
}

// Cells returns the total number of cells on the board.
func (p Params) Cells() int {
	return p.Size * p.Size
}

// SafeCells returns the number of cells without a mine.
func (p Params) SafeCells() int {
	return p.Cells() - p.Mines
}

// Validate checks that a board with these params can be generated.
func (p Params) Validate() error {
	switch {
	case p.Size <= 0:
		return fmt.Errorf("minesweeper: board size %d: %w", p.Size, ErrInvalidParams)
	case p.Mines < 0:
		return fmt.Errorf("minesweeper: mine count %d: %w", p.Mines, ErrInvalidParams)
	case p.Mines >= p.Cells():
		return fmt.Errorf("minesweeper: %d mines on a %dx%d board: %w", p.Mines, p.Size, p.Size, ErrInvalidParams)
	case p.Multiplier < 1:
		return fmt.Errorf("minesweeper: score multiplier %d: %w", p.Multiplier, ErrInvalidParams)
	}
	return nil
}

// DefaultParams returns the built-in params for d.
// Unknown difficulties yield zero Params, which fail Validate.
func DefaultParams(d Difficulty) Params {
	switch d {
	case Easy:
		return Params{Size: 8, Mines: 10, Multiplier: 1}
	case Medium:
		return Params{Size: 12, Mines: 25, Multiplier: 2}
	case Hard:
		return Params{Size: 16, Mines: 40, Multiplier: 3}
	default:
		return Params{}
	}
}
