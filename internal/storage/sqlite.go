// Package storage provides SQLite-based persistence of solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Solve represents one recorded completion of a level.
type Solve struct {
	ID         int64
	Pack       string
	LevelIndex int
	LevelName  string
	RunID      string
	CreatedAt  time.Time
}

// PackStats contains aggregated progress for a level pack.
type PackStats struct {
	Pack       string
	Solves     int
	Levels     int // Distinct levels solved
	LastSolved time.Time
}

// NewRunID returns an identifier for one program run, stored with every
// solve recorded during it.
func NewRunID() string {
	return uuid.NewString()
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			run_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_pack ON solves(pack);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(pack, level_name);
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

// RecordSolve records that a level of a pack was completed.
// Returns the ID of the inserted record.
func (s *Store) RecordSolve(pack string, levelIndex int, levelName, runID string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (pack, level_index, level_name, run_id) VALUES (?, ?, ?, ?)",
		pack, levelIndex, levelName, runID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SolvedLevels returns the names of all levels of a pack solved at least once.
func (s *Store) SolvedLevels(pack string) (mapset.Set[string], error) {
	solved := mapset.New[string]()

	rows, err := s.db.Query("SELECT DISTINCT level_name FROM solves WHERE pack = ?", pack)
	if err != nil {
		return solved, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return solved, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		solved.Put(name)
	}

	if err := rows.Err(); err != nil {
		return solved, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solved, nil
}

// RecentSolves retrieves the most recent solves of a pack, newest first.
func (s *Store) RecentSolves(pack string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level_index, level_name, run_id, created_at
		 FROM solves
		 WHERE pack = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pack, &e.LevelIndex, &e.LevelName, &e.RunID, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// GetPackStats retrieves aggregated progress for a specific pack.
func (s *Store) GetPackStats(pack string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level_name) FROM solves WHERE pack = ?`,
		pack,
	).Scan(&stats.Solves, &stats.Levels)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE pack = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		pack,
	).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(last)
	}

	return stats, nil
}

// GetAllPackStats retrieves progress for every pack with at least one solve.
func (s *Store) GetAllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack, COUNT(*), COUNT(DISTINCT level_name), MAX(created_at)
		 FROM solves
		 GROUP BY pack`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var last any
		if err := rows.Scan(&ps.Pack, &ps.Solves, &ps.Levels, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastSolved = parseTime(last)
		stats[ps.Pack] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearProgress deletes all recorded solves of a pack.
func (s *Store) ClearProgress(pack string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE pack = ?", pack)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME columns either as
// time.Time or as text.
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
