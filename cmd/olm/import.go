package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/importer"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import links from a browser bookmark export",
		Long: `Import reads a Netscape bookmark HTML file and adds its links.

Folders are flattened. Links whose URL is already stored are skipped, as
are links whose title is taken in stores with unique titles.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	incoming, err := importer.ParseHTMLLinks(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	added, skipped, err := svc.Import(incoming)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d links", added)
	if skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d skipped)", skipped)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
