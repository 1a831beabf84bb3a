package minesweeper

import "errors"

// ErrInvalidParams is returned when a session cannot be created because the
// board configuration is impossible (no cells, negative or too many mines,
// or a multiplier below one).
var ErrInvalidParams = errors.New("invalid board parameters")
