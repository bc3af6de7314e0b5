package exporter

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nikbrunner/olm/internal/model"
)

// ExportMarkdown writes links as a Markdown table with their onion version.
func ExportMarkdown(w io.Writer, links []model.Link) error {
	md := markdown.NewMarkdown(w)

	md.H1("Onion Links")
	md.PlainText("")

	if len(links) == 0 {
		md.PlainText("*No links.*")
		return md.Build()
	}

	rows := make([][]string, len(links))
	for i, link := range links {
		rows[i] = []string{
			escapeCell(link.Title),
			"`" + escapeCell(link.URL) + "`",
			model.DetectOnion(link.URL).String(),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Title", "URL", "Onion"},
		Rows:   rows,
	})

	return md.Build()
}

// escapeCell keeps a value inside its table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
