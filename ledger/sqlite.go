package ledger

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	trade_id TEXT NOT NULL UNIQUE,
	date TEXT NOT NULL,
	symbol TEXT NOT NULL,
	direction TEXT NOT NULL,
	result REAL NOT NULL,
	emotion TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore is the database-backed persistence port. It keeps the
// same all-or-nothing contract as the file slot: every save replaces
// the whole collection inside one transaction, and load returns rows in
// insertion order.
//
// The first save stamps the database (PRAGMA user_version), so an empty
// table in a stamped database is an intentionally emptied ledger, not a
// first run, and loads as an empty collection rather than no state.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the ledger database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the stored collection in insertion order. A database
// that has never been saved to means no prior state and returns a nil
// collection; a stamped database with no rows returns an empty one.
func (s *SQLiteStore) Load() ([]Trade, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, date, symbol, direction, result, emotion, notes
		FROM trades
		ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var t Trade
		var date string
		if err := rows.Scan(&t.ID, &date, &t.Symbol, &t.Direction, &t.Result, &t.Emotion, &t.Notes); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		t.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, fmt.Errorf("parse trade date: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read trades: %w", err)
	}

	if out == nil {
		saved, err := s.stamped()
		if err != nil {
			return nil, err
		}
		if !saved {
			return nil, nil
		}
		out = []Trade{}
	}
	return out, nil
}

// stamped reports whether the database has been saved to at least once.
func (s *SQLiteStore) stamped() (bool, error) {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return false, fmt.Errorf("read ledger version: %w", err)
	}
	return version > 0, nil
}

// Save replaces the stored collection with trades, atomically.
func (s *SQLiteStore) Save(trades []Trade) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return fmt.Errorf("clear trades: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trades (trade_id, date, symbol, direction, result, emotion, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.Exec(
			t.ID,
			t.Date.Format(time.RFC3339Nano),
			t.Symbol,
			string(t.Direction),
			t.Result,
			string(t.Emotion),
			t.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert trade %s: %w", t.ID, err)
		}
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1`); err != nil {
		return fmt.Errorf("stamp ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
