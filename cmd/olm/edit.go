package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/suggest"
)

// NewEditCmd creates the edit command.
func NewEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <old-title> <new-title> <new-url>",
		Short: "Rename a link and change its URL",
		Long: `Edit replaces the title and URL of the first link titled old-title.

Renaming onto a title that is already used fails unless
on_rename_conflict is set to overwrite.`,
		Args:              cobra.ExactArgs(3),
		RunE:              runEdit,
		ValidArgsFunction: completeTitles,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	link, err := svc.Edit(args[0], args[1], args[2])
	if errors.Is(err, model.ErrLinkNotFound) {
		return suggest.NotFoundError(svc.List(), args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %q\n", link.Title)
	return nil
}
