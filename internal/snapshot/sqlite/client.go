package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"pokedex/internal/snapshot"
)

var _ snapshot.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Store persists the snapshot in a sqlite database, one row per key.
type Store struct {
	db *sql.DB
}

// Open creates a Store from a sqlite:// DSN.
func Open(ctx context.Context, dsn string) (*Store, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	slog.Debug("opening sqlite snapshot store", "dsn", driverDSN)

	db, err := sql.Open("sqlite", driverDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA journal_mode = WAL;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM snapshots WHERE key = ?", snapshot.Key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading sqlite snapshot: %w", err)
	}
	return data, true, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	slog.Debug("writing sqlite snapshot", "bytes", len(data))
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO snapshots (key, data, updated_at)
	VALUES (?, ?, datetime('now'))
	ON CONFLICT(key) DO UPDATE SET
		data = excluded.data,
		updated_at = excluded.updated_at
	`, snapshot.Key, data)
	if err != nil {
		return fmt.Errorf("writing sqlite snapshot: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	slog.Debug("clearing sqlite snapshot")
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM snapshots WHERE key = ?", snapshot.Key,
	); err != nil {
		return fmt.Errorf("clearing sqlite snapshot: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}
