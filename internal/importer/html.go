// Package importer reads links from browser bookmark exports.
package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/olm/internal/model"
)

// ParseHTMLLinks parses Netscape bookmark HTML and returns its links in
// document order. Folders are flattened; the collection has no hierarchy.
func ParseHTMLLinks(r io.Reader) ([]model.Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []model.Link

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder name, nothing to keep
				return

			case "a":
				href := strings.TrimSpace(getAttr(n, "href"))
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				links = append(links, model.Link{
					ID:    model.GenerateUUID(),
					Title: title,
					URL:   href,
				})
				return // Don't recurse into A
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return links, nil
}

// getTextContent returns the text content of a node, whitespace collapsed.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(text.String()), " ")
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
