// Package outline derives a heading index from the document tree. The
// index is recomputed from scratch after every document change; entries
// are never patched in place, and their IDs are only meaningful for the
// document state they were extracted from.
package outline

import (
	"fmt"

	"github.com/opensphere/editorial/pkg/editor"
)

// Heading is one entry of the document outline.
type Heading struct {
	Text  string
	Level int
	ID    string
}

// Extract walks the document in document order and returns every heading
// with its level, flattened text, and a position-derived ID. The result is
// a fresh slice on every call; an empty document yields an empty result.
func Extract(doc *editor.Node) []Heading {
	headings := []Heading{}
	if doc == nil {
		return headings
	}

	pos := 0
	doc.Walk(func(n *editor.Node) {
		if n.Type == editor.TypeHeading {
			// Hand-edited save records can carry any level attr;
			// clamp to the valid 1..3 range.
			level, ok := n.IntAttr("level")
			if !ok || level < 1 {
				level = 1
			}
			if level > 3 {
				level = 3
			}
			headings = append(headings, Heading{
				Text:  n.TextContent(),
				Level: level,
				ID:    fmt.Sprintf("heading-%d", pos),
			})
		}
		pos++
	})
	return headings
}
