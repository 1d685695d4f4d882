package frontkit

// Content types understood by the translator.
const (
	ContentTypeText = "text"
	ContentTypeHTML = "html"
)

// TextNode represents a translatable unit of content.
type TextNode struct {
	ID       string            // Position-based identifier ("line-12", "node-3")
	Text     string            // Text handed to the dictionary
	Hash     string            // SHA-256 hash of Text
	NodeType string            // Content type: "text_line", "html_text"
	Metadata map[string]string // Additional info (line terminator, parent tag, ...)
}

// ProcessedContent is the result of a translation operation.
type ProcessedContent struct {
	Content         string // Translated content
	TranslatedCount int    // Number of nodes whose text changed
	CachedCount     int    // Number of cache hits
	TotalNodes      int    // Total translatable nodes found
}

// IgnoredTags contains HTML tags whose content should not be translated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
