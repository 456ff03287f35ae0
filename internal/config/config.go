package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL  = "https://pokeapi.co/api/v2"
	DefaultLimit    = 1000
	DefaultDSN      = "bolt://pokedex.db"
	DefaultPageSize = 20
)

type ProjectConfig struct {
	Version  int           `yaml:"version"`
	Remote   RemoteConfig  `yaml:"remote"`
	Storage  StorageConfig `yaml:"storage"`
	PageSize int           `yaml:"page_size"`
}

type RemoteConfig struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `yaml:"base_url"`
	// Limit is the index page size. It must cover the whole dataset;
	// the fetcher requests the index in a single call.
	Limit int `yaml:"limit"`
}

type StorageConfig struct {
	// DSN selects the snapshot backend by scheme: bolt://, sqlite://,
	// postgres:// or memory://.
	DSN string `yaml:"dsn"`
}

// Default returns the configuration used when no config file exists.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Version: 1,
		Remote: RemoteConfig{
			BaseURL: DefaultBaseURL,
			Limit:   DefaultLimit,
		},
		Storage:  StorageConfig{DSN: DefaultDSN},
		PageSize: DefaultPageSize,
	}
}

// LoadProjectConfig reads the config file at path. A missing file is
// not an error: the defaults apply.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *ProjectConfig) {
	if cfg.Remote.BaseURL == "" {
		cfg.Remote.BaseURL = DefaultBaseURL
	}
	if cfg.Remote.Limit == 0 {
		cfg.Remote.Limit = DefaultLimit
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultDSN
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Remote.BaseURL) == "" {
		return fmt.Errorf("remote base_url is required")
	}
	if strings.HasSuffix(cfg.Remote.BaseURL, "/") {
		return fmt.Errorf("remote base_url must not end with a slash")
	}
	if cfg.Remote.Limit < 1 {
		return fmt.Errorf("remote limit must be positive")
	}
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return fmt.Errorf("storage dsn is required")
	}
	if cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be positive")
	}
	return nil
}
