package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/olm/internal/exporter"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export links to HTML bookmarks or Markdown",
		Long: `Export writes every link to a file.

html produces a Netscape bookmark file any browser can import.
markdown produces a table with the onion version of each link.

Examples:
  olm export
  olm export --format markdown -o links.md`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("format", string(exporter.FormatHTML), "Export format: html or markdown")
	cmd.Flags().StringP("output", "o", "",
		"Write to specified file path (default $XDG_DOWNLOAD_DIR/onion-links-<date>.<ext>)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format := exporter.Format(formatName)
	if format != exporter.FormatHTML && format != exporter.FormatMarkdown {
		return fmt.Errorf("unknown export format %q: want html or markdown", formatName)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = exporter.DefaultExportPath(format)
	}

	svc, err := openService(cmd, cliLogger(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	all := svc.List()

	var buf bytes.Buffer
	switch format {
	case exporter.FormatMarkdown:
		if err := exporter.ExportMarkdown(&buf, all); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	default:
		buf.WriteString(exporter.ExportHTML(all))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d links to %s\n", len(all), outputPath)
	return nil
}
