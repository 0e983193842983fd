package linkverify

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
)

// Link represents an extracted link from HTML content.
type Link struct {
	URL       string // The URL or path as written
	Text      string // Link text, alt or rel
	Tag       string // HTML tag (a, img, link, script, ...)
	Attribute string // Attribute containing the link (href, src)
}

// Document is what verification needs from one HTML page.
type Document struct {
	Canonicals []string // href of every <link rel="canonical">
	Title      string
	H1         string
	Links      []*Link
}

// ExtractFile parses the HTML file at path.
func ExtractFile(path string) (*Document, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to open HTML file").
			Fatal().WithContext("path", path).Build()
	}
	defer func() {
		_ = file.Close() // read-only
	}()
	return Extract(file)
}

// Extract parses an HTML document and collects its canonical tags, title and
// outgoing links.
func Extract(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to parse HTML").Fatal().Build()
	}
	doc := &Document{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			extractElement(n, doc)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return doc, nil
}

func extractElement(n *html.Node, doc *Document) {
	switch n.Data {
	case "title":
		doc.Title = extractText(n)
	case "h1":
		if doc.H1 == "" {
			doc.H1 = extractText(n)
		}
	case "a":
		if href := getAttr(n, "href"); href != "" {
			doc.Links = append(doc.Links, &Link{URL: href, Text: extractText(n), Tag: "a", Attribute: "href"})
		}
	case "link":
		href := getAttr(n, "href")
		if href == "" {
			return
		}
		rel := strings.ToLower(getAttr(n, "rel"))
		if rel == "canonical" {
			doc.Canonicals = append(doc.Canonicals, href)
			return
		}
		doc.Links = append(doc.Links, &Link{URL: href, Text: rel, Tag: "link", Attribute: "href"})
	case "img", "script", "source", "video", "audio":
		if src := getAttr(n, "src"); src != "" {
			doc.Links = append(doc.Links, &Link{URL: src, Text: getAttr(n, "alt"), Tag: n.Data, Attribute: "src"})
		}
	}
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// extractText extracts text content from an HTML node and its children.
func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}
	return strings.TrimSpace(text.String())
}

// shouldVerify skips anchors, special protocols and empty links.
func shouldVerify(raw string) bool {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return false
	}
	for _, p := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(raw, p) {
			return false
		}
	}
	return true
}
