package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <url>",
		Short: "Add a link",
		Long: `Add a link to the store and save it.

In stores with unique titles an existing title gets the new URL.
An empty title or URL is skipped without an error.

Examples:
  olm add Market http://abc...xyz.onion`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	link, added, err := svc.Add(args[0], args[1])
	if err != nil {
		return err
	}
	if !added {
		fmt.Fprintln(cmd.OutOrStdout(), "Skipped: title and URL must not be empty")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", link.Title)
	return nil
}
