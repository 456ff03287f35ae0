package main

import (
	"context"
	"fmt"
	"strings"

	"pokedex/internal/catalog"
	"pokedex/internal/config"
	"pokedex/internal/remote"
	"pokedex/internal/snapshot"
	"pokedex/internal/snapshot/bolt"
	"pokedex/internal/snapshot/postgres"
	"pokedex/internal/snapshot/sqlite"
)

// app bundles the pieces every command needs: the loaded config, the
// snapshot store, and the catalog service wired on top of them.
type app struct {
	cfg  *config.ProjectConfig
	snap snapshot.Store
	cat  *catalog.Catalog
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}

	snap, err := openSnapshotStore(ctx, cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}

	fetcher := remote.New(cfg.Remote.BaseURL, cfg.Remote.Limit)
	return &app{
		cfg:  cfg,
		snap: snap,
		cat:  catalog.New(snap, fetcher),
	}, nil
}

func (a *app) Close(ctx context.Context) error {
	return a.snap.Close(ctx)
}

func openSnapshotStore(ctx context.Context, dsn string) (snapshot.Store, error) {
	switch {
	case strings.HasPrefix(dsn, "bolt://"):
		return bolt.Open(dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(ctx, dsn)
	case dsn == "memory://":
		return snapshot.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported storage DSN %q", dsn)
	}
}
