package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighScoreTable(t *testing.T) {
	var table HighScoreTable
	assert.Equal(t, 0, table.HighScore(Easy))

	table, improved := table.Record(Easy, 500)
	assert.True(t, improved)
	assert.Equal(t, 500, table.HighScore(Easy))

	// Lower and equal scores leave the best unchanged.
	table, improved = table.Record(Easy, 300)
	assert.False(t, improved)
	assert.Equal(t, 500, table.HighScore(Easy))
	table, improved = table.Record(Easy, 500)
	assert.False(t, improved)

	table, improved = table.Record(Easy, 800)
	assert.True(t, improved)
	assert.Equal(t, 800, table.HighScore(Easy))

	// Difficulties are tracked independently.
	table, _ = table.Record(Hard, 2250)
	assert.Equal(t, 800, table.HighScore(Easy))
	assert.Equal(t, 0, table.HighScore(Medium))
	assert.Equal(t, 2250, table.HighScore(Hard))
}

func TestHighScoreRecordDoesNotMutate(t *testing.T) {
	orig := HighScoreTable{Medium: 100}
	next, improved := orig.Record(Medium, 200)

	assert.True(t, improved)
	assert.Equal(t, 100, orig.HighScore(Medium))
	assert.Equal(t, 200, next.HighScore(Medium))
}

func TestHighScoreZeroScoreNotRecorded(t *testing.T) {
	table, improved := HighScoreTable{}.Record(Easy, 0)
	assert.False(t, improved)
	assert.Equal(t, 0, table.HighScore(Easy))
}
