// Package processor splits content into translatable nodes and reassembles
// it. TextProcessor handles documents line by line; HTMLProcessor handles
// markup, skipping code, scripts and elements marked data-no-translate.
package processor

import "github.com/ZaguanLabs/frontkit"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = frontkit.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = frontkit.TextNode

var (
	_ ContentProcessor = (*TextProcessor)(nil)
	_ ContentProcessor = (*HTMLProcessor)(nil)
)
