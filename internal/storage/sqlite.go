// Package storage keeps the results of finished games for the lifetime of
// the process. It uses an in-memory SQLite database through the pure-Go
// modernc.org/sqlite driver; nothing is written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

// Store holds finished game results and the high-score table.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time

	mu     sync.Mutex
	scores minesweeper.HighScoreTable
}

// ResultEntry is one finished game.
type ResultEntry struct {
	ID         int64
	SessionID  string
	Difficulty string
	Outcome    string // "won" or "lost"
	Score      int
	Elapsed    int // seconds
	Revealed   int // safe cells revealed
	CreatedAt  time.Time
}

// Open creates an empty in-memory store and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{
		db:     db,
		now:    time.Now,
		scores: minesweeper.HighScoreTable{},
	}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			revealed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(difficulty, score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. All results are discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns the ID of the inserted row.
// CreatedAt is filled in when zero.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}

	result, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, difficulty, outcome, score, elapsed_secs, revealed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Difficulty, e.Outcome, e.Score, e.Elapsed, e.Revealed, e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults returns the best results for a difficulty, highest score first.
func (s *Store) TopResults(difficulty string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryResults(
		`SELECT id, session_id, difficulty, outcome, score, elapsed_secs, revealed, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY score DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

// RecentResults returns the latest results across all difficulties.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryResults(
		`SELECT id, session_id, difficulty, outcome, score, elapsed_secs, revealed, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]ResultEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Difficulty, &e.Outcome,
			&e.Score, &e.Elapsed, &e.Revealed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.Unix(0, createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	Difficulty string
	Games      int
	Wins       int
	BestScore  int
	AvgScore   float64
	FastestWin int // seconds, 0 when there are no wins
	LastPlayed time.Time
}

// Stats returns statistics for every difficulty that has been played.
func (s *Store) Stats() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MAX(score), AVG(score),
		        COALESCE(MIN(CASE WHEN outcome = 'won' THEN elapsed_secs END), 0),
		        MAX(created_at)
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DifficultyStats)
	for rows.Next() {
		var st DifficultyStats
		var lastPlayed int64
		if err := rows.Scan(&st.Difficulty, &st.Games, &st.Wins, &st.BestScore,
			&st.AvgScore, &st.FastestWin, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = time.Unix(0, lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// HighScores returns a copy of the current high-score table.
func (s *Store) HighScores() minesweeper.HighScoreTable {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(minesweeper.HighScoreTable, len(s.scores))
	for d, v := range s.scores {
		out[d] = v
	}
	return out
}

// RecordScore offers a score to the high-score table. It returns the best
// score for d afterwards and whether this score became the new best.
func (s *Store) RecordScore(d minesweeper.Difficulty, score int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var improved bool
	s.scores, improved = s.scores.Record(d, score)
	return s.scores.HighScore(d), improved
}
