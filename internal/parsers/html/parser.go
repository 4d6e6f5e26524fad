// Package html extracts visible text and titles from HTML documents.
package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// skipElements are element types whose text content is never visible.
var skipElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
}

// ExtractText returns the visible text of an HTML document.
//
// Only text nodes under the document body are kept (the whole document
// when no body is present). Each node's text is trimmed and non-empty
// nodes are joined with line breaks. Markup, scripts and attributes are
// discarded. Unparseable input yields an empty string.
func ExtractText(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skipElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}

	return strings.Join(lines, "\n")
}

const (
	titleStart = "<title>"
	titleEnd   = "</title>"

	// DefaultTitle is used when no well-formed <title> tag is found.
	DefaultTitle = "Untitled"
)

// ExtractTitle returns the text of the first case-insensitive
// <title>...</title> occurrence. When either tag is missing, or the end
// tag appears before the start tag, it returns DefaultTitle.
//
// This is a pure string operation: it deliberately does not involve the
// HTML parser so that a title can be recovered from malformed documents.
func ExtractTitle(content string) string {
	lower := strings.ToLower(content)
	start := strings.Index(lower, titleStart)
	end := strings.Index(lower, titleEnd)

	if start == -1 || end == -1 || end <= start {
		return DefaultTitle
	}

	return strings.TrimSpace(content[start+len(titleStart) : end])
}
