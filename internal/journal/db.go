package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite event journal.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the journal database in dir.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dbPath := filepath.Join(dir, "journal.db")
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// The TUI and a background watcher may share the file.
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA busy_timeout=2000"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	j := &DB{db: sqlDB, path: dbPath}
	if err := j.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the database.
func (j *DB) Close() error {
	return j.db.Close()
}

// Path returns the path to the journal database file.
func (j *DB) Path() string {
	return j.path
}

func (j *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS connections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		connected INTEGER NOT NULL,
		devices TEXT NOT NULL DEFAULT '',
		at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS switches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		mapped TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_connections_at ON connections(at);
	CREATE INDEX IF NOT EXISTS idx_switches_at ON switches(at);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
