package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the type vocabulary observed across the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes()
		},
	}
	return cmd
}

func runTypes() error {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	records, err := a.cat.Load(ctx)
	if err != nil {
		return err
	}

	vocab := catalog.TypeVocabulary(records)
	if len(vocab) == 0 {
		fmt.Fprintln(os.Stdout, "No types observed.")
		return nil
	}
	for _, t := range vocab {
		fmt.Fprintln(os.Stdout, t)
	}
	return nil
}
