// Package exporter writes the link collection in formats other tools read.
package exporter

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/nikbrunner/olm/internal/model"
)

// Format names an export format.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Extension returns the file extension for the format, with the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return ".md"
	}
	return ".html"
}

// DefaultExportPath returns the default export file path in the user's
// download directory (XDG_DOWNLOAD_DIR, ~/Downloads when unset).
// Format: <downloads>/onion-links-YYYY-MM-DD.html
func DefaultExportPath(format Format) string {
	filename := fmt.Sprintf("onion-links-%s%s", time.Now().Format("2006-01-02"), format.Extension())
	return filepath.Join(xdg.UserDirs.Download, filename)
}

// ExportHTML exports links to Netscape bookmark HTML format, which every
// browser (Tor Browser included) can import.
func ExportHTML(links []model.Link) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Onion Links</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, link := range links {
		fmt.Fprintf(&b,
			"    <DT><A HREF=\"%s\">%s</A>\n",
			html.EscapeString(link.URL),
			html.EscapeString(link.Title),
		)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}
