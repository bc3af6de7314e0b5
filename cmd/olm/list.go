package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/model"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print all links as a table",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	all := svc.List()
	if len(all) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No links in %s\n", svc.Path())
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(all))
	return nil
}

// renderTable lays links out in a bordered table in store order.
func renderTable(all []model.Link) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Title", "URL", "Onion").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, l := range all {
		t.Row(l.Title, l.URL, model.DetectOnion(l.URL).String())
	}

	return t.Render()
}
