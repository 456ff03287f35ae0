package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run consistency checks against the local snapshot",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
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

	report := catalog.Validate(records)

	var errorIssues []catalog.Issue
	var warnIssues []catalog.Issue
	for _, issue := range report.Issues {
		switch issue.Severity {
		case catalog.SeverityError:
			errorIssues = append(errorIssues, issue)
		case catalog.SeverityWarn:
			warnIssues = append(warnIssues, issue)
		}
	}

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if len(errorIssues) > 0 {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printIssues(out *os.File, issues []catalog.Issue) {
	for _, issue := range issues {
		location := fmt.Sprintf("#%d", issue.RecordID)
		if issue.Name != "" {
			location = fmt.Sprintf("#%d %s", issue.RecordID, issue.Name)
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
	}
}
