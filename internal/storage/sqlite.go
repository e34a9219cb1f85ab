// Package storage provides the SQLite run log: level completions, full
// runs and final scores, appended as they happen and read back only by the
// score commands. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalPlayer is the player name recorded for terminal sessions.
const LocalPlayer = "local"

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// ScoreEntry is the final score of one run.
type ScoreEntry struct {
	ID        int64
	SetID     string
	Player    string
	Score     int
	Deaths    int
	Finished  bool // Reached the end of the set rather than aborting
	CreatedAt time.Time
}

// CompletionEntry is one timed level completion.
type CompletionEntry struct {
	ID        int64
	SetID     string
	Player    string
	Level     int // 0-based index within the set
	Time      time.Duration
	Tokens    int
	Deaths    int
	CreatedAt time.Time
}

// RunEntry is one uninterrupted run through a whole set.
type RunEntry struct {
	ID        int64
	SetID     string
	Player    string
	Time      time.Duration
	Score     int
	Deaths    int
	CreatedAt time.Time
}

// LevelBest is the fastest logged completion of a level.
type LevelBest struct {
	Level  int
	Time   time.Duration
	Tokens int
	Player string
	Count  int // Completions logged for this level
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			set_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			finished INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(set_id, score DESC);

		CREATE TABLE IF NOT EXISTS level_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			set_id TEXT NOT NULL,
			player TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			time_ms INTEGER NOT NULL,
			tokens INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON level_completions(set_id, level_index, time_ms);

		CREATE TABLE IF NOT EXISTS full_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			set_id TEXT NOT NULL,
			player TEXT NOT NULL,
			time_ms INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_full_runs_fastest ON full_runs(set_id, time_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records the final score of a run.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (set_id, player, score, deaths, finished) VALUES (?, ?, ?, ?, ?)",
		e.SetID, playerOrLocal(e.Player), e.Score, e.Deaths, e.Finished,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return insertedID(result)
}

// SaveCompletion records a timed level completion.
func (s *Store) SaveCompletion(e CompletionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_completions (set_id, player, level_index, time_ms, tokens, deaths)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SetID, playerOrLocal(e.Player), e.Level, e.Time.Milliseconds(), e.Tokens, e.Deaths,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}
	return insertedID(result)
}

// SaveFullRun records an uninterrupted run through a set.
func (s *Store) SaveFullRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO full_runs (set_id, player, time_ms, score, deaths) VALUES (?, ?, ?, ?, ?)",
		e.SetID, playerOrLocal(e.Player), e.Time.Milliseconds(), e.Score, e.Deaths,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save full run: %w", err)
	}
	return insertedID(result)
}

// TopScores retrieves the top N scores for the given set.
// Results are ordered by score descending, fewer deaths first on ties.
func (s *Store) TopScores(setID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, set_id, player, score, deaths, finished, created_at
		 FROM scores
		 WHERE set_id = ?
		 ORDER BY score DESC, deaths ASC, id ASC
		 LIMIT ?`,
		setID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SetID, &e.Player, &e.Score, &e.Deaths, &e.Finished, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given set.
// Returns 0 if no scores exist.
func (s *Store) HighScore(setID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE set_id = ?",
		setID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// BestTimes returns the fastest logged completion of every level of the
// set that has one, ordered by level index.
func (s *Store) BestTimes(setID string) ([]LevelBest, error) {
	rows, err := s.db.Query(
		`SELECT c.level_index, c.time_ms, c.tokens, c.player, agg.n
		 FROM level_completions c
		 JOIN (
			SELECT level_index, MIN(time_ms) AS best, COUNT(*) AS n
			FROM level_completions
			WHERE set_id = ?
			GROUP BY level_index
		 ) agg ON agg.level_index = c.level_index AND agg.best = c.time_ms
		 WHERE c.set_id = ?
		 GROUP BY c.level_index
		 ORDER BY c.level_index`,
		setID, setID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	var bests []LevelBest
	for rows.Next() {
		var b LevelBest
		var ms int64
		if err := rows.Scan(&b.Level, &ms, &b.Tokens, &b.Player, &b.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		b.Time = time.Duration(ms) * time.Millisecond
		bests = append(bests, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return bests, nil
}

// FastestRuns returns the fastest full runs of a set.
func (s *Store) FastestRuns(setID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, set_id, player, time_ms, score, deaths, created_at
		 FROM full_runs
		 WHERE set_id = ?
		 ORDER BY time_ms ASC, id ASC
		 LIMIT ?`,
		setID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query full runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		var r RunEntry
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SetID, &r.Player, &ms, &r.Score, &r.Deaths, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Time = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearSet deletes every log entry of the given set.
func (s *Store) ClearSet(setID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	for _, table := range []string{"scores", "level_completions", "full_runs"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE set_id = ?", setID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// SetStats contains aggregated statistics for a level set.
type SetStats struct {
	SetID       string
	Runs        int // Scores logged (finished or aborted)
	Finished    int
	HighScore   int
	AvgScore    float64
	TotalDeaths int64
	Completions int
	FullRuns    int
	LastPlayed  time.Time
}

// GetSetStats retrieves aggregated statistics for a specific set.
func (s *Store) GetSetStats(setID string) (*SetStats, error) {
	stats := &SetStats{SetID: setID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(finished), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(deaths), 0)
		 FROM scores WHERE set_id = ?`,
		setID,
	).Scan(&stats.Runs, &stats.Finished, &stats.HighScore, &stats.AvgScore, &stats.TotalDeaths)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get set stats: %w", err)
	}

	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM level_completions WHERE set_id = ?", setID,
	).Scan(&stats.Completions); err != nil {
		return nil, fmt.Errorf("storage: cannot count completions: %w", err)
	}

	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM full_runs WHERE set_id = ?", setID,
	).Scan(&stats.FullRuns); err != nil {
		return nil, fmt.Errorf("storage: cannot count full runs: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE set_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		setID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

func insertedID(result sql.Result) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

func playerOrLocal(name string) string {
	if name == "" {
		return LocalPlayer
	}
	return name
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
