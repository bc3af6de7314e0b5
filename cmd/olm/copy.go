package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/picker"
	"github.com/nikbrunner/olm/internal/suggest"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var errEmptyStore = errors.New("no links stored")

// NewCopyCmd creates the copy command.
func NewCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [title]",
		Short: "Copy a link's URL to the clipboard",
		Long: `Copy puts the URL of the titled link on the clipboard.

Without a title a picker lists every link.`,
		Args:              cobra.MaximumNArgs(1),
		RunE:              runCopy,
		ValidArgsFunction: completeTitles,
	}
}

func runCopy(cmd *cobra.Command, args []string) error {
	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	var link model.Link
	if len(args) == 1 {
		var ok bool
		link, ok = svc.Find(args[0])
		if !ok {
			return suggest.NotFoundError(svc.List(), args[0])
		}
	} else {
		if svc.Len() == 0 {
			return fmt.Errorf("%s: %w", svc.Path(), errEmptyStore)
		}
		var ok bool
		link, ok, err = pick(svc.List())
		if err != nil || !ok {
			return err
		}
	}

	if err := writeClipboard(link.URL); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Copied: %s\n", link.Title)
	return nil
}

// pick runs the picker. ok is false when the user cancelled.
func pick(all []model.Link) (model.Link, bool, error) {
	program := tea.NewProgram(picker.New(all, "Copy URL"))
	finalModel, err := program.Run()
	if err != nil {
		return model.Link{}, false, fmt.Errorf("run picker: %w", err)
	}

	link, ok := finalModel.(picker.Picker).Selected()
	return link, ok, nil
}
