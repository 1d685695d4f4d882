package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZaguanLabs/frontkit"
	"golang.org/x/net/html"
)

// HTMLProcessor extracts and applies translations to HTML text nodes,
// leaving markup and attributes untouched.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: frontkit.IgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// Extract parses HTML and extracts translatable text nodes, one per
// distinct trimmed text.
func (p *HTMLProcessor) Extract(content string) (interface{}, []frontkit.TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &frontkit.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: frontkit.ContentTypeHTML,
		}
	}

	var nodes []frontkit.TextNode
	seenHashes := make(map[string]bool)

	p.walk(doc, func(n *html.Node) {
		trimmed := strings.TrimSpace(n.Data)
		if trimmed == "" {
			return
		}

		hash := frontkit.HashText(trimmed)
		if seenHashes[hash] {
			return
		}
		seenHashes[hash] = true

		node := frontkit.TextNode{
			ID:       fmt.Sprintf("node-%d", len(nodes)),
			Text:     trimmed,
			Hash:     hash,
			NodeType: "html_text",
			Metadata: map[string]string{},
		}
		if n.Parent != nil {
			node.Metadata["parent_tag"] = n.Parent.Data
		}
		nodes = append(nodes, node)
	})

	return doc, nodes, nil
}

// Apply applies translations back to the HTML document.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []frontkit.TextNode, translations map[string]string) (string, error) {
	doc, ok := parsed.(*goquery.Document)
	if !ok {
		return "", &frontkit.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: frontkit.ContentTypeHTML,
		}
	}

	p.walk(doc, func(n *html.Node) {
		trimmed := strings.TrimSpace(n.Data)
		if trimmed == "" {
			return
		}
		if translated, ok := translations[frontkit.HashText(trimmed)]; ok {
			n.Data = preserveWhitespace(n.Data, translated)
		}
	})

	out, err := doc.Html()
	if err != nil {
		return "", &frontkit.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: frontkit.ContentTypeHTML,
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return frontkit.ContentTypeHTML
}

// walk visits every text node outside ignored elements.
func (p *HTMLProcessor) walk(doc *goquery.Document, visit func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if p.ignoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			visit(n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range doc.Nodes {
		walk(n)
	}
}

// preserveWhitespace preserves the original leading/trailing whitespace.
func preserveWhitespace(original, translated string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 && trailingLen < len(original) {
		trailing = original[len(original)-trailingLen:]
	}

	return leading + translated + trailing
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)
