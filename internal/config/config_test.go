package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadProjectConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Remote.BaseURL != DefaultBaseURL {
			t.Fatalf("expected default base url, got %q", cfg.Remote.BaseURL)
		}
		if cfg.Remote.Limit != DefaultLimit {
			t.Fatalf("expected default limit, got %d", cfg.Remote.Limit)
		}
		if cfg.Storage.DSN != DefaultDSN {
			t.Fatalf("expected default dsn, got %q", cfg.Storage.DSN)
		}
		if cfg.PageSize != DefaultPageSize {
			t.Fatalf("expected default page size, got %d", cfg.PageSize)
		}
	})

	t.Run("valid config loads", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nremote:\n  base_url: http://localhost:8080\n  limit: 50\nstorage:\n  dsn: sqlite://dex.db\npage_size: 10\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Remote.BaseURL != "http://localhost:8080" || cfg.Remote.Limit != 50 {
			t.Fatalf("unexpected remote config: %+v", cfg.Remote)
		}
		if cfg.Storage.DSN != "sqlite://dex.db" || cfg.PageSize != 10 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("partial config gets defaults", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nstorage:\n  dsn: bolt://other.db\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Remote.BaseURL != DefaultBaseURL || cfg.PageSize != DefaultPageSize {
			t.Fatalf("defaults not applied: %+v", cfg)
		}
		if cfg.Storage.DSN != "bolt://other.db" {
			t.Fatalf("explicit dsn lost: %+v", cfg.Storage)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "version: 2\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("trailing slash in base url", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nremote:\n  base_url: http://localhost:8080/\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nremote:\n  limit: -5\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative page size", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\npage_size: -1\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "version: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}
