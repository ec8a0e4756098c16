// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is a single finished round.
type Round struct {
	ID        int64
	Preset    string
	Rows      int
	Cols      int
	Bombs     int
	Outcome   Outcome
	Duration  time.Duration
	Revealed  int // safe cells uncovered by the player
	CreatedAt time.Time
}

// PresetStats contains aggregated statistics for one preset.
type PresetStats struct {
	Preset     string
	Played     int
	Won        int
	BestTime   time.Duration // zero when never won
	AvgTime    time.Duration // average of won rounds
	LastPlayed time.Time
}

// WinRate returns the share of won rounds in [0, 1].
func (s PresetStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			bombs INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			revealed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_preset ON rounds(preset);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(preset, outcome, duration_ms);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (preset, rows, cols, bombs, outcome, duration_ms, revealed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Preset, r.Rows, r.Cols, r.Bombs, string(r.Outcome), r.Duration.Milliseconds(), r.Revealed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, preset, rows, cols, bombs, outcome, duration_ms, revealed, created_at`

// BestTimes retrieves the fastest won rounds for the given preset.
func (s *Store) BestTimes(preset string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE preset = ? AND outcome = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		preset, string(OutcomeWon), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the latest rounds, newest first.
// An empty preset returns rounds of every preset.
func (s *Store) RecentRounds(preset string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = '' OR preset = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		preset, preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var outcome string
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Preset, &r.Rows, &r.Cols, &r.Bombs,
			&outcome, &durationMS, &r.Revealed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// BestTime returns the fastest win for the given preset.
// Returns 0 if the preset was never won.
func (s *Store) BestTime(preset string) (time.Duration, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM rounds WHERE preset = ? AND outcome = ?",
		preset, string(OutcomeWon),
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return time.Duration(best.Int64) * time.Millisecond, nil
}

// ClearRounds deletes all rounds for the given preset.
func (s *Store) ClearRounds(preset string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE preset = ?", preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific preset.
func (s *Store) Stats(preset string) (*PresetStats, error) {
	stats := &PresetStats{Preset: preset}

	var best, avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'won' THEN duration_ms END),
		        AVG(CASE WHEN outcome = 'won' THEN duration_ms END)
		 FROM rounds WHERE preset = ?`,
		preset,
	).Scan(&stats.Played, &stats.Won, &best, &avg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	stats.BestTime = msToDuration(best)
	stats.AvgTime = msToDuration(avg)

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE preset = ? ORDER BY id DESC LIMIT 1`,
		preset,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every preset that has been played.
func (s *Store) AllStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*),
		        SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END),
		        MIN(CASE WHEN outcome = 'won' THEN duration_ms END),
		        AVG(CASE WHEN outcome = 'won' THEN duration_ms END),
		        MAX(created_at)
		 FROM rounds
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var ps PresetStats
		var best, avg sql.NullFloat64
		var lastPlayed any
		if err := rows.Scan(&ps.Preset, &ps.Played, &ps.Won, &best, &avg, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.BestTime = msToDuration(best)
		ps.AvgTime = msToDuration(avg)
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.Preset] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func msToDuration(ms sql.NullFloat64) time.Duration {
	if !ms.Valid {
		return 0
	}
	return time.Duration(ms.Float64 * float64(time.Millisecond))
}

// parseTime handles both time.Time and the SQLite text format.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
