package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func listCmd() *cobra.Command {
	var types []string
	var search string
	var page int
	var pageSize int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(types, search, page, pageSize)
		},
	}
	cmd.Flags().StringArrayVar(&types, "type", nil, "Type to filter by (repeatable)")
	cmd.Flags().StringVar(&search, "search", "", "Name substring to match")
	cmd.Flags().IntVar(&page, "page", 0, "Zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Records per page (default from config)")
	return cmd
}

func runList(types []string, search string, page, pageSize int) error {
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

	if pageSize < 1 {
		pageSize = a.cfg.PageSize
	}

	// The engine treats out-of-range pages as empty; clamping is this
	// caller's job.
	view := catalog.DeriveView(records, types, search, 0, pageSize)
	if page < 0 {
		page = 0
	}
	if view.PageCount > 0 && page >= view.PageCount {
		page = view.PageCount - 1
	}
	view = catalog.DeriveView(records, types, search, page, pageSize)

	if view.TotalCount == 0 {
		fmt.Fprintln(os.Stdout, "No records found.")
		return nil
	}

	for _, r := range view.Records {
		fmt.Fprintf(os.Stdout, "#%-5d %-20s %s\n", r.ID, r.Name, strings.Join(r.Types, ", "))
	}
	fmt.Fprintf(os.Stdout, "Page %d of %d (%d records)\n", view.PageIndex+1, view.PageCount, view.TotalCount)
	return nil
}
