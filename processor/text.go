package processor

import (
	"fmt"
	"strings"

	"github.com/ZaguanLabs/frontkit"
)

// TextProcessor treats content as an ordered sequence of lines. Every line,
// blank or not, becomes one node so line count and order survive Apply.
type TextProcessor struct{}

// NewTextProcessor creates a line-based processor.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

// parsedText records the line count seen by Extract.
type parsedText struct {
	lines int
}

// Extract splits content into lines. Line terminators are kept in node
// metadata, not in the node text.
func (p *TextProcessor) Extract(content string) (interface{}, []frontkit.TextNode, error) {
	lines := frontkit.SplitLines(content)
	nodes := make([]frontkit.TextNode, len(lines))

	for i, line := range lines {
		text := strings.TrimSuffix(line, "\n")
		eol := line[len(text):]

		nodes[i] = frontkit.TextNode{
			ID:       fmt.Sprintf("line-%d", i+1),
			Text:     text,
			Hash:     frontkit.HashText(text),
			NodeType: "text_line",
			Metadata: map[string]string{
				"eol": eol,
			},
		}
	}

	return &parsedText{lines: len(lines)}, nodes, nil
}

// Apply joins the translated lines back together in their original order.
func (p *TextProcessor) Apply(parsed interface{}, nodes []frontkit.TextNode, translations map[string]string) (string, error) {
	pt, ok := parsed.(*parsedText)
	if !ok {
		return "", &frontkit.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: frontkit.ContentTypeText,
		}
	}
	if pt.lines != len(nodes) {
		return "", &frontkit.ProcessorError{
			Message:     fmt.Sprintf("line count mismatch: parsed %d, got %d nodes", pt.lines, len(nodes)),
			ContentType: frontkit.ContentTypeText,
		}
	}

	var buf strings.Builder
	for _, node := range nodes {
		text := node.Text
		if translated, ok := translations[node.Hash]; ok {
			text = translated
		}
		buf.WriteString(text)
		buf.WriteString(node.Metadata["eol"])
	}

	return buf.String(), nil
}

// ContentType returns "text".
func (p *TextProcessor) ContentType() string {
	return frontkit.ContentTypeText
}

// Verify TextProcessor implements ContentProcessor
var _ ContentProcessor = (*TextProcessor)(nil)
