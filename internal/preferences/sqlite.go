package preferences

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS preferences (
	store TEXT NOT NULL,
	key   TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (store, key)
)`

// SQLiteStore keeps the preference file on local disk.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

// OpenSQLite opens (creating if needed) the preference file at path and scopes
// reads and writes to the named store.
func OpenSQLite(path, name string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("preferences path is required")
	}
	if name == "" {
		name = DefaultName
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &SQLiteStore{db: db, name: name}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks the file is still reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save upserts each key as its own statement; there is no enclosing transaction.
func (s *SQLiteStore) Save(ctx context.Context, name, phone, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, value := range []string{name, phone, token} {
		key := keys()[i]
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO preferences (store, key, value) VALUES (?, ?, ?)
			 ON CONFLICT (store, key) DO UPDATE SET value = excluded.value`,
			s.name, key, value)
		if err != nil {
			return fmt.Errorf("save preference %s: %w", key, err)
		}
	}
	return nil
}

// Load reads every key of the store; missing keys stay absent.
func (s *SQLiteStore) Load(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE store = ?`, s.name)
	if err != nil {
		return Record{}, fmt.Errorf("load preferences: %w", err)
	}
	defer rows.Close()

	var rec Record
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Record{}, fmt.Errorf("scan preference: %w", err)
		}
		rec.set(key, value)
	}
	if err := rows.Err(); err != nil {
		return Record{}, fmt.Errorf("iterate preferences: %w", err)
	}
	return rec, nil
}
