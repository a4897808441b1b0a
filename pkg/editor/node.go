// Package editor implements the rich-text editing engine the rest of the
// application drives: a structured document tree, a chainable command
// interface with a terminal Run step, JSON/HTML/text serializers, and an
// update subscription. The node and mark vocabulary follows the basic
// ProseMirror document schema.
package editor

// Node types.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeTaskList       = "taskList"
	TypeListItem       = "listItem"
	TypeTaskItem       = "taskItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeTable          = "table"
	TypeTableRow       = "tableRow"
	TypeTableHeader    = "tableHeader"
	TypeTableCell      = "tableCell"
	TypeImage          = "image"
	TypeHorizontalRule = "horizontalRule"
	TypeHardBreak      = "hardBreak"
	TypeText           = "text"
)

// Mark types.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkHighlight = "highlight"
	MarkTextStyle = "textStyle"
	MarkLink      = "link"
)

// Mark is inline formatting attached to a text node.
type Mark struct {
	Type  string                 `json:"type"`
	Attrs map[string]interface{} `json:"attrs,omitempty"`
}

// Node is one node of the document tree. Text nodes carry Text and Marks;
// all other nodes carry Content.
type Node struct {
	Type    string                 `json:"type"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Marks   []Mark                 `json:"marks,omitempty"`
	Content []*Node                `json:"content,omitempty"`
	Text    string                 `json:"text,omitempty"`
}

// Doc creates a document root with the given blocks.
func Doc(blocks ...*Node) *Node {
	return &Node{Type: TypeDoc, Content: blocks}
}

// Paragraph creates a paragraph containing the given inline nodes.
func Paragraph(inline ...*Node) *Node {
	return &Node{Type: TypeParagraph, Content: inline}
}

// Heading creates a heading of the given level (1-3).
func Heading(level int, inline ...*Node) *Node {
	return &Node{
		Type:    TypeHeading,
		Attrs:   map[string]interface{}{"level": level},
		Content: inline,
	}
}

// Text creates a text node with optional marks.
func Text(text string, marks ...Mark) *Node {
	return &Node{Type: TypeText, Text: text, Marks: marks}
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Type: n.Type, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = make(map[string]interface{}, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		for i, m := range n.Marks {
			out.Marks[i] = Mark{Type: m.Type}
			if m.Attrs != nil {
				out.Marks[i].Attrs = make(map[string]interface{}, len(m.Attrs))
				for k, v := range m.Attrs {
					out.Marks[i].Attrs[k] = v
				}
			}
		}
	}
	if n.Content != nil {
		out.Content = make([]*Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = c.Clone()
		}
	}
	return out
}

// Walk visits n and every descendant in document (pre-order) order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Content {
		c.Walk(visit)
	}
}

// TextContent returns the concatenated text of all descendant text nodes
// with formatting stripped.
func (n *Node) TextContent() string {
	var out []byte
	n.Walk(func(node *Node) {
		if node.Type == TypeText {
			out = append(out, node.Text...)
		}
	})
	return string(out)
}

// HasMark reports whether a text node carries a mark of the given type.
func (n *Node) HasMark(markType string) bool {
	for _, m := range n.Marks {
		if m.Type == markType {
			return true
		}
	}
	return false
}

// markAttr returns an attribute of the first mark of the given type.
func (n *Node) markAttr(markType, attr string) (interface{}, bool) {
	for _, m := range n.Marks {
		if m.Type == markType {
			v, ok := m.Attrs[attr]
			return v, ok
		}
	}
	return nil, false
}

// IntAttr reads an integer node attribute, tolerating the float64 values
// produced by JSON decoding.
func (n *Node) IntAttr(name string) (int, bool) {
	switch v := n.Attrs[name].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// StringAttr reads a string node attribute.
func (n *Node) StringAttr(name string) string {
	if v, ok := n.Attrs[name].(string); ok {
		return v
	}
	return ""
}

// BoolAttr reads a boolean node attribute.
func (n *Node) BoolAttr(name string) bool {
	v, _ := n.Attrs[name].(bool)
	return v
}

// isBlock reports whether the node is a block-level container as opposed
// to inline content.
func (n *Node) isBlock() bool {
	switch n.Type {
	case TypeText, TypeImage, TypeHardBreak:
		return false
	}
	return true
}
