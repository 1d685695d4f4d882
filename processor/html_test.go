package processor

import (
	"strings"
	"testing"
)

func TestHTMLProcessor_Extract_Basic(t *testing.T) {
	p := NewHTMLProcessor()

	doc := `<div><h1>Mục Tiêu Chính</h1><p>Code Quality</p></div>`
	parsed, nodes, err := p.Extract(doc)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if parsed == nil {
		t.Fatal("parsed should not be nil")
	}

	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Text != "Mục Tiêu Chính" {
		t.Errorf("Expected 'Mục Tiêu Chính', got %q", nodes[0].Text)
	}
	if nodes[0].NodeType != "html_text" {
		t.Errorf("Expected node type 'html_text', got %q", nodes[0].NodeType)
	}
	if nodes[0].Metadata["parent_tag"] != "h1" {
		t.Errorf("Expected parent tag h1, got %q", nodes[0].Metadata["parent_tag"])
	}
}

func TestHTMLProcessor_Extract_IgnoredTags(t *testing.T) {
	p := NewHTMLProcessor()

	doc := `<div>
		<p>Translate me</p>
		<script>doNotTranslate();</script>
		<style>.class { color: red; }</style>
		<code>const x = 1;</code>
		<pre>preformatted</pre>
		<textarea>form input</textarea>
	</div>`

	_, nodes, err := p.Extract(doc)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(nodes) != 1 {
		t.Fatalf("Expected 1 node (only 'Translate me'), got %d", len(nodes))
	}
	if nodes[0].Text != "Translate me" {
		t.Errorf("Expected 'Translate me', got %q", nodes[0].Text)
	}
}

func TestHTMLProcessor_Extract_DataNoTranslate(t *testing.T) {
	p := NewHTMLProcessor()

	doc := `<div>
		<p data-no-translate>Keep this</p>
		<p>Translate this</p>
	</div>`

	_, nodes, err := p.Extract(doc)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(nodes) != 1 || nodes[0].Text != "Translate this" {
		t.Fatalf("Expected only 'Translate this', got %+v", nodes)
	}
}

func TestHTMLProcessor_CustomIgnoredTags(t *testing.T) {
	p := NewHTMLProcessorWithIgnoredTags([]string{"KBD"})

	_, nodes, err := p.Extract(`<p>keep <kbd>Ctrl</kbd></p>`)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Text != "keep" {
		t.Fatalf("Expected only 'keep', got %+v", nodes)
	}
}

func TestHTMLProcessor_Apply_DuplicateTexts(t *testing.T) {
	p := NewHTMLProcessor()

	doc := `<div><p>trước</p><p>trước</p></div>`
	parsed, nodes, err := p.Extract(doc)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("Expected 1 node, got %d", len(nodes))
	}

	result, err := p.Apply(parsed, nodes, map[string]string{nodes[0].Hash: "before"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if count := strings.Count(result, "before"); count != 2 {
		t.Errorf("Expected 2 instances of 'before', got %d in: %s", count, result)
	}
	if strings.Contains(result, "trước") {
		t.Errorf("Result should not contain source text: %s", result)
	}
}

func TestHTMLProcessor_Apply_PreservesWhitespace(t *testing.T) {
	p := NewHTMLProcessor()

	parsed, nodes, err := p.Extract(`<p>  sau  </p>`)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	result, err := p.Apply(parsed, nodes, map[string]string{nodes[0].Hash: "after"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !strings.Contains(result, "<p>  after  </p>") {
		t.Errorf("Result should preserve whitespace, got: %s", result)
	}
}

func TestHTMLProcessor_Apply_InvalidParsed(t *testing.T) {
	p := NewHTMLProcessor()
	if _, err := p.Apply("not a document", nil, nil); err == nil {
		t.Fatal("expected error for invalid parsed content")
	}
}

func TestHTMLProcessor_ContentType(t *testing.T) {
	p := NewHTMLProcessor()
	if p.ContentType() != "html" {
		t.Errorf("Expected 'html', got %q", p.ContentType())
	}
}

func TestPreserveWhitespace(t *testing.T) {
	tests := []struct {
		original   string
		translated string
		expected   string
	}{
		{"sau", "after", "after"},
		{"  sau", "after", "  after"},
		{"sau  ", "after", "after  "},
		{"\n\tsau\n", "after", "\n\tafter\n"},
	}

	for _, tt := range tests {
		result := preserveWhitespace(tt.original, tt.translated)
		if result != tt.expected {
			t.Errorf("preserveWhitespace(%q, %q) = %q, want %q",
				tt.original, tt.translated, result, tt.expected)
		}
	}
}
