package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/suggest"
)

// NewDeleteCmd creates the delete command.
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <title>",
		Aliases: []string{"rm"},
		Short:   "Delete a link by title",
		Long: `Delete removes the first link with the given title.

Deleting a title that is not stored changes nothing and is not an error.`,
		Args:              cobra.ExactArgs(1),
		RunE:              runDelete,
		ValidArgsFunction: completeTitles,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	deleted, err := svc.Delete(args[0])
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing deleted: %v\n", suggest.NotFoundError(svc.List(), args[0]))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
	return nil
}
