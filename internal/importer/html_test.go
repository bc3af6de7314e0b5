package importer_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/olm/internal/exporter"
	"github.com/nikbrunner/olm/internal/importer"
	"github.com/nikbrunner/olm/internal/model"
)

func TestParseHTML_SingleLink(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="http://a.onion" ADD_DATE="1234567890">Market</A>
</DL><p>`

	links, err := importer.ParseHTMLLinks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(links))
	}

	l := links[0]
	if l.Title != "Market" {
		t.Errorf("expected title 'Market', got %q", l.Title)
	}
	if l.URL != "http://a.onion" {
		t.Errorf("expected URL 'http://a.onion', got %q", l.URL)
	}
	if l.ID == "" {
		t.Error("expected non-empty ID")
	}
}

func TestParseHTML_NestedFoldersAreFlattened(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Markets</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">Old</H3>
        <DL><p>
            <DT><A HREF="http://old.onion">Old Market</A>
        </DL><p>
        <DT><A HREF="http://new.onion">New Market</A>
    </DL><p>
    <DT><A HREF="http://forum.onion">Forum</A>
</DL><p>`

	links, err := importer.ParseHTMLLinks(strings.NewReader(html))
	assert.NilError(t, err)

	titles := make([]string, len(links))
	for i, l := range links {
		titles[i] = l.Title
	}
	// Document order, folder names dropped.
	assert.DeepEqual(t, titles, []string{"Old Market", "New Market", "Forum"})
}

func TestParseHTML_EmptyFile(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
</DL><p>`

	links, err := importer.ParseHTMLLinks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected 0 links, got %d", len(links))
	}
}

func TestParseHTML_MissingHref(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><A ADD_DATE="1234567890">No URL</A>
    <DT><A HREF="  ">Blank URL</A>
    <DT><A HREF="http://valid.onion">Valid</A>
</DL><p>`

	links, err := importer.ParseHTMLLinks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should skip links without HREF, keep valid one
	if len(links) != 1 {
		t.Fatalf("expected 1 link (skip missing href), got %d", len(links))
	}
	if links[0].Title != "Valid" {
		t.Errorf("expected 'Valid' link, got %q", links[0].Title)
	}
}

func TestParseHTML_TitleFallsBackToURL(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="http://a.onion">   </A>
    <DT><A HREF="http://b.onion">Two
        Lines</A>
</DL><p>`

	links, err := importer.ParseHTMLLinks(strings.NewReader(html))
	assert.NilError(t, err)
	assert.Equal(t, len(links), 2)
	assert.Equal(t, links[0].Title, "http://a.onion")
	assert.Equal(t, links[1].Title, "Two Lines")
}

func TestParseHTML_ReadsExport(t *testing.T) {
	in := []model.Link{
		{ID: "1", Title: "Tom & Jerry", URL: "http://a.onion/?a=1&b=2"},
		{ID: "2", Title: "Forum", URL: "http://f.onion"},
	}

	links, err := importer.ParseHTMLLinks(strings.NewReader(exporter.ExportHTML(in)))
	assert.NilError(t, err)
	assert.Equal(t, len(links), 2)
	assert.Equal(t, links[0].Title, "Tom & Jerry")
	assert.Equal(t, links[0].URL, "http://a.onion/?a=1&b=2")
	assert.Equal(t, links[1].Title, "Forum")
}
