package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pokedex/internal/snapshot"
)

var _ snapshot.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store persists the snapshot in postgres, for setups that already run
// one. Semantics are identical to the sqlite and bolt backends: one
// row, whole-document reads and writes.
type Store struct {
	pool *pgxpool.Pool
}

// Open creates a Store from a postgres:// DSN.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		"SELECT data FROM snapshots WHERE key = $1", snapshot.Key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading postgres snapshot: %w", err)
	}
	return data, true, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	slog.Debug("writing postgres snapshot", "bytes", len(data))
	_, err := s.pool.Exec(ctx, `
	INSERT INTO snapshots (key, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET
		data = EXCLUDED.data,
		updated_at = EXCLUDED.updated_at
	`, snapshot.Key, data)
	if err != nil {
		return fmt.Errorf("writing postgres snapshot: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	slog.Debug("clearing postgres snapshot")
	if _, err := s.pool.Exec(ctx,
		"DELETE FROM snapshots WHERE key = $1", snapshot.Key,
	); err != nil {
		return fmt.Errorf("clearing postgres snapshot: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}
