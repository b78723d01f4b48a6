// Package storage provides SQLite-based persistence for campaign progress,
// per-level best move counts, and settings overrides.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-serpent/internal/game"
)

// schemaVersion is the current on-disk schema. Version 1 kept bests in a
// best_scores table; migrate() folds it into best_moves.
const schemaVersion = 2

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// BestEntry is one per-level record.
type BestEntry struct {
	LevelID   int
	Moves     int
	ClearedAt time.Time
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

// migrate creates the database schema if it doesn't exist and folds any
// legacy tables into the current layout.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			unlocked INTEGER NOT NULL DEFAULT 0,
			total_moves INTEGER NOT NULL DEFAULT 0,
			total_clears INTEGER NOT NULL DEFAULT 0,
			total_items INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS best_moves (
			level_id INTEGER PRIMARY KEY,
			moves INTEGER NOT NULL,
			cleared_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Version 1 databases kept bests in best_scores(level_id, score).
	var legacy int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'best_scores'",
	).Scan(&legacy)
	if err != nil {
		return err
	}
	if legacy > 0 {
		if _, err := s.db.Exec(
			"INSERT OR IGNORE INTO best_moves (level_id, moves) SELECT level_id, score FROM best_scores",
		); err != nil {
			return err
		}
		if _, err := s.db.Exec("DROP TABLE best_scores"); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES ('schema_version', ?)",
		strconv.Itoa(schemaVersion),
	)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProgress reads the campaign progress. A fresh database yields a fresh
// campaign, not an error.
func (s *Store) LoadProgress() (game.Progress, error) {
	p := game.NewProgress()

	err := s.db.QueryRow(
		"SELECT unlocked, total_moves, total_clears, total_items FROM progress WHERE id = 1",
	).Scan(&p.Unlocked, &p.TotalMoves, &p.TotalClears, &p.TotalItems)
	if err != nil && err != sql.ErrNoRows {
		return game.Progress{}, fmt.Errorf("storage: cannot load progress: %w", err)
	}

	rows, err := s.db.Query("SELECT level_id, moves FROM best_moves")
	if err != nil {
		return game.Progress{}, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, moves int
		if err := rows.Scan(&id, &moves); err != nil {
			return game.Progress{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Best[id] = moves
	}
	if err := rows.Err(); err != nil {
		return game.Progress{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return p, nil
}

// SaveProgress writes the campaign progress in one transaction.
func (s *Store) SaveProgress(p game.Progress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO progress (id, unlocked, total_moves, total_clears, total_items, updated_at)
		 VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			unlocked = excluded.unlocked,
			total_moves = excluded.total_moves,
			total_clears = excluded.total_clears,
			total_items = excluded.total_items,
			updated_at = CURRENT_TIMESTAMP`,
		p.Unlocked, p.TotalMoves, p.TotalClears, p.TotalItems,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}

	for id, moves := range p.Best {
		_, err = tx.Exec(
			`INSERT INTO best_moves (level_id, moves)
			 VALUES (?, ?)
			 ON CONFLICT(level_id) DO UPDATE SET
				moves = excluded.moves,
				cleared_at = CASE WHEN excluded.moves < best_moves.moves
					THEN CURRENT_TIMESTAMP ELSE best_moves.cleared_at END`,
			id, moves,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save best for level %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// BestMoves returns the recorded best for a level.
// Returns 0 if the level has never been cleared.
func (s *Store) BestMoves(levelID int) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT moves FROM best_moves WHERE level_id = ?",
		levelID,
	).Scan(&moves)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	return int(moves.Int64), nil
}

// AllBest retrieves every per-level record in level order.
func (s *Store) AllBest() ([]BestEntry, error) {
	rows, err := s.db.Query(
		"SELECT level_id, moves, cleared_at FROM best_moves ORDER BY level_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best moves: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		var clearedAt any
		if err := rows.Scan(&e.LevelID, &e.Moves, &clearedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := clearedAt.(type) {
		case time.Time:
			e.ClearedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.ClearedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearProgress wipes the campaign: progress row and every best record.
// Settings overrides survive.
func (s *Store) ClearProgress() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM best_moves"); err != nil {
		return fmt.Errorf("storage: cannot clear best moves: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// Setting returns the stored value for a key, or "" when unset.
func (s *Store) Setting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a settings override.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// SchemaVersion reports the schema version recorded in the database.
func (s *Store) SchemaVersion() (int, error) {
	v, err := s.Setting("schema_version")
	if err != nil {
		return 0, err
	}
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("storage: bad schema version %q: %w", v, err)
	}
	return n, nil
}

// Ensure Store implements the engine's persistence interface
var _ game.ProgressStore = (*Store)(nil)
