package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func randomCmd() *cobra.Command {
	var types []string
	var search string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random record from the filtered catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(types, search)
		},
	}
	cmd.Flags().StringArrayVar(&types, "type", nil, "Type to filter by (repeatable)")
	cmd.Flags().StringVar(&search, "search", "", "Name substring to match")
	return cmd
}

func runRandom(types []string, search string) error {
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

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rec, ok := catalog.RandomPick(records, types, search, rng)
	if !ok {
		fmt.Fprintln(os.Stdout, "No records match the active filters.")
		return nil
	}

	printRecord(os.Stdout, rec)
	return nil
}
