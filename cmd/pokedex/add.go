package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func addCmd() *cobra.Command {
	var name string
	var types []string
	var sprite string
	var height int
	var weight int
	var abilities []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to the local catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := catalog.Draft{
				Name:      name,
				Types:     types,
				Sprite:    sprite,
				Abilities: abilities,
			}
			if cmd.Flags().Changed("height") {
				draft.Height = &height
			}
			if cmd.Flags().Changed("weight") {
				draft.Weight = &weight
			}
			return runAdd(draft)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Record name (required)")
	cmd.Flags().StringArrayVar(&types, "type", nil, "Type name (repeatable, at least one required)")
	cmd.Flags().StringVar(&sprite, "sprite", "", "Sprite URL (defaulted from the new id)")
	cmd.Flags().IntVar(&height, "height", 0, "Height in decimetres (required)")
	cmd.Flags().IntVar(&weight, "weight", 0, "Weight in hectograms (required)")
	cmd.Flags().StringArrayVar(&abilities, "ability", nil, "Ability name (repeatable)")
	return cmd
}

func runAdd(draft catalog.Draft) error {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	id, err := a.cat.Create(ctx, draft)
	if err != nil {
		return err
	}

	rec, err := a.cat.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Created record #%d.\n", id)
	printRecord(os.Stdout, rec)
	return nil
}
