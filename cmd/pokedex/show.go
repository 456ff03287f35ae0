package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runShow(id)
		},
	}
	return cmd
}

func runShow(id int) error {
	ctx := context.Background()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	rec, err := a.cat.Get(ctx, id)
	if err != nil {
		return err
	}

	printRecord(os.Stdout, rec)
	return nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

func printRecord(out io.Writer, r catalog.Record) {
	fmt.Fprintf(out, "%s (#%d)\n", r.Name, r.ID)
	fmt.Fprintf(out, "  Types:     %s\n", strings.Join(r.Types, ", "))
	fmt.Fprintf(out, "  Sprite:    %s\n", r.Sprite)
	if r.Height != nil {
		fmt.Fprintf(out, "  Height:    %d decimetres\n", *r.Height)
	}
	if r.Weight != nil {
		fmt.Fprintf(out, "  Weight:    %d hectograms\n", *r.Weight)
	}
	if len(r.Abilities) > 0 {
		fmt.Fprintf(out, "  Abilities: %s\n", strings.Join(r.Abilities, ", "))
	}
}
