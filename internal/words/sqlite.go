// internal/words/sqlite.go
//
// SQLite-backed dictionary source.
// Responsibilities:
//   - Opening a SQLite file with safe defaults (WAL, busy timeout).
//   - Creating the `words` table if missing (idempotent migration).
//   - Reading the word list (LoadDB) and writing one (SeedDB).
//
// Schema:
//   CREATE TABLE words (word TEXT PRIMARY KEY);

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS words (word TEXT PRIMARY KEY);`

// OpenDB opens (and creates if missing) a SQLite database file.
//
//   - Ensures the parent directory exists for relative paths (e.g. ./data/words.db).
//   - Configures busy timeout and WAL journaling.
func OpenDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate creates the words table if it does not exist yet.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create words table: %w", err)
	}
	return nil
}

// LoadDB reads every row of the words table and builds a Dictionary.
func LoadDB(ctx context.Context, db *sql.DB) (*Dictionary, error) {
	if err := migrate(ctx, db); err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT word FROM words`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var raw []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		raw = append(raw, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(raw)
}

// SeedDB writes every word of d into the words table in one transaction.
// Existing rows are kept; duplicates are ignored.
func SeedDB(ctx context.Context, db *sql.DB, d *Dictionary) (int, error) {
	if err := migrate(ctx, db); err != nil {
		return 0, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word) VALUES(?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, w := range d.list {
		res, err := stmt.ExecContext(ctx, w)
		if err != nil {
			return n, fmt.Errorf("insert %q: %w", w, err)
		}
		if affected, _ := res.RowsAffected(); affected > 0 {
			n++
		}
	}
	return n, tx.Commit()
}
