package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a pokedex.yaml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
	return cmd
}

func runInit() error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	contents := fmt.Sprintf(
		"version: 1\n\nremote:\n  base_url: %s\n  limit: %d\n\nstorage:\n  dsn: %s\n\npage_size: %d\n",
		config.DefaultBaseURL, config.DefaultLimit, config.DefaultDSN, config.DefaultPageSize,
	)
	if err := os.WriteFile(configPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s.\n", configPath)
	return nil
}
