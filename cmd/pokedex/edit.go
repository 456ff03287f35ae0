package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func editCmd() *cobra.Command {
	var name string
	var types []string
	var sprite string
	var height int
	var weight int
	var abilities []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a record in the local catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runEdit(cmd, id, name, types, sprite, height, weight, abilities)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New record name")
	cmd.Flags().StringArrayVar(&types, "type", nil, "New type name (repeatable, replaces all types)")
	cmd.Flags().StringVar(&sprite, "sprite", "", "New sprite URL")
	cmd.Flags().IntVar(&height, "height", 0, "New height in decimetres")
	cmd.Flags().IntVar(&weight, "weight", 0, "New weight in hectograms")
	cmd.Flags().StringArrayVar(&abilities, "ability", nil, "New ability name (repeatable, replaces all abilities)")
	return cmd
}

func runEdit(cmd *cobra.Command, id int, name string, types []string, sprite string, height, weight int, abilities []string) error {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	existing, err := a.cat.Get(ctx, id)
	if err != nil {
		return err
	}

	// Flags left unset keep the stored values.
	patch := catalog.Patch{
		Name:   existing.Name,
		Types:  existing.Types,
		Sprite: existing.Sprite,
	}
	if cmd.Flags().Changed("name") {
		patch.Name = name
	}
	if cmd.Flags().Changed("type") {
		patch.Types = types
	}
	if cmd.Flags().Changed("sprite") {
		patch.Sprite = sprite
	}
	if cmd.Flags().Changed("height") {
		patch.Height = &height
	}
	if cmd.Flags().Changed("weight") {
		patch.Weight = &weight
	}
	if cmd.Flags().Changed("ability") {
		patch.Abilities = abilities
	}

	if err := a.cat.Update(ctx, id, patch); err != nil {
		return err
	}

	updated, err := a.cat.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Updated record #%d.\n", id)
	printRecord(os.Stdout, updated)
	return nil
}
