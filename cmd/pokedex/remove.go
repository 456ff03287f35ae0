package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a record from the local catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runRemove(cmd, id, yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func runRemove(cmd *cobra.Command, id int, yes bool) error {
	ctx := context.Background()

	confirmed := yes
	if !confirmed {
		var err error
		confirmed, err = askConfirm(cmd, fmt.Sprintf("Delete record #%d?", id))
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

	if err := a.cat.Delete(ctx, id, confirmed); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Removed record #%d.\n", id)
	return nil
}

// askConfirm reads a yes/no answer from the command's input. Anything
// other than "y" or "yes" is a no.
func askConfirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprintf(os.Stdout, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
