package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Discard the local snapshot and restore from the remote API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func runSync(cmd *cobra.Command, yes bool) error {
	ctx := context.Background()

	confirmed := yes
	if !confirmed {
		var err error
		confirmed, err = askConfirm(cmd, "Restore the original list from the API? Local changes will be lost.")
		if err != nil {
			return err
		}
	}
	if !confirmed {
		fmt.Fprintln(os.Stdout, "Aborted.")
		return nil
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	if err := a.cat.Reset(ctx); err != nil {
		return err
	}

	records, err := a.cat.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Restored %d records from the remote API.\n", len(records))
	return nil
}
