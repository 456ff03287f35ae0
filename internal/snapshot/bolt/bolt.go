package bolt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.etcd.io/bbolt"

	"pokedex/internal/snapshot"
)

var _ snapshot.Store = (*Store)(nil)

var bucketName = []byte("snapshot")

// Store persists the snapshot in a single-file bbolt database. This is
// the default backend.
type Store struct {
	db *bbolt.DB
}

// Open creates a Store from a bolt:// DSN.
func Open(dsn string) (*Store, error) {
	path, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}

	slog.Debug("opening bolt snapshot store", "path", path)

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	return &Store{db: db}, nil
}

func parseDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, "bolt://") {
		return "", fmt.Errorf("invalid bolt DSN scheme, expected bolt://")
	}
	path := strings.TrimPrefix(dsn, "bolt://")
	if path == "" {
		return "", fmt.Errorf("bolt DSN has no path")
	}
	return path, nil
}

func (s *Store) Load(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		val := bucket.Get([]byte(snapshot.Key))
		if val == nil {
			return nil
		}
		// val is only valid for the lifetime of the transaction.
		data = make([]byte, len(val))
		copy(data, val)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("reading bolt snapshot: %w", err)
	}
	return data, data != nil, nil
}

func (s *Store) Save(ctx context.Context, data []byte) error {
	slog.Debug("writing bolt snapshot", "bytes", len(data))
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(snapshot.Key), data)
	})
	if err != nil {
		return fmt.Errorf("writing bolt snapshot: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	slog.Debug("clearing bolt snapshot")
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(snapshot.Key))
	})
	if err != nil {
		return fmt.Errorf("clearing bolt snapshot: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}
