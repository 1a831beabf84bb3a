package minesweeper

// HighScoreTable maps each difficulty to its best score. A missing entry
// means 0. Tables are treated as values: Record never mutates its receiver.
type HighScoreTable map[Difficulty]int

// HighScore returns the best score recorded for d.
func (t HighScoreTable) HighScore(d Difficulty) int {
	return t[d]
}

// Record returns a table that includes score for d and whether it became the
// new best. Only a strictly higher score replaces the stored one.
func (t HighScoreTable) Record(d Difficulty, score int) (HighScoreTable, bool) {
	if score <= t[d] {
		return t, false
	}
	next := make(HighScoreTable, len(t)+1)
	for k, v := range t {
		next[k] = v
	}
	next[d] = score
	return next, true
}
