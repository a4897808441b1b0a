package editor

import "strings"

// The flattened text is the single source of truth for selection offsets,
// search, and text editing. Top-level blocks are joined by a blank line,
// nested sibling blocks by a newline, and hard breaks contribute a newline.
const (
	blockSeparator  = "\n\n"
	nestedSeparator = "\n"
)

// segment is one text node located in the flattened text.
type segment struct {
	node   *Node
	parent *Node
	index  int
	start  int
}

func (s segment) end() int {
	return s.start + len(s.node.Text)
}

// span is a node with its flattened-text range.
type span struct {
	node   *Node
	parent *Node
	index  int
	start  int
	end    int
}

// docIndex maps the document tree onto its flattened text.
type docIndex struct {
	text       string
	segments   []segment // text nodes in document order
	textblocks []span    // innermost inline containers (paragraph, heading, codeBlock)
	blocks     []span    // top-level blocks
}

// isTextblock reports whether a node holds inline content directly.
func isTextblock(t string) bool {
	switch t {
	case TypeParagraph, TypeHeading, TypeCodeBlock:
		return true
	}
	return false
}

// buildIndex flattens the document in one pre-order pass.
func buildIndex(doc *Node) *docIndex {
	idx := &docIndex{}
	var b strings.Builder

	var walk func(n *Node, topLevel bool)
	walk = func(n *Node, topLevel bool) {
		for i, c := range n.Content {
			if c.isBlock() && i > 0 {
				if topLevel {
					b.WriteString(blockSeparator)
				} else {
					b.WriteString(nestedSeparator)
				}
			}

			start := b.Len()
			switch c.Type {
			case TypeText:
				idx.segments = append(idx.segments, segment{node: c, parent: n, index: i, start: start})
				b.WriteString(c.Text)
			case TypeHardBreak:
				b.WriteString(nestedSeparator)
			case TypeImage, TypeHorizontalRule:
				// no text contribution
			default:
				walk(c, false)
			}

			if isTextblock(c.Type) {
				idx.textblocks = append(idx.textblocks, span{node: c, parent: n, index: i, start: start, end: b.Len()})
			}
			if topLevel {
				idx.blocks = append(idx.blocks, span{node: c, parent: doc, index: i, start: start, end: b.Len()})
			}
		}
	}
	walk(doc, true)

	idx.text = b.String()
	return idx
}

// segmentAt returns the text segment containing offset, preferring the one
// that starts at it when the offset sits on a boundary.
func (idx *docIndex) segmentAt(off int) (segment, bool) {
	for _, s := range idx.segments {
		if off >= s.start && off < s.end() {
			return s, true
		}
	}
	// Allow the very end of a segment so a cursor after the last rune
	// still belongs to it.
	for i := len(idx.segments) - 1; i >= 0; i-- {
		if off == idx.segments[i].end() {
			return idx.segments[i], true
		}
	}
	return segment{}, false
}

// textblockAt returns the innermost inline container whose range holds the
// offset.
func (idx *docIndex) textblockAt(off int) (span, bool) {
	for _, tb := range idx.textblocks {
		if off >= tb.start && off <= tb.end {
			return tb, true
		}
	}
	return span{}, false
}

// blockAt returns the top-level block whose range holds the offset.
func (idx *docIndex) blockAt(off int) (span, bool) {
	for _, blk := range idx.blocks {
		if off >= blk.start && off <= blk.end {
			return blk, true
		}
	}
	return span{}, false
}

// splitAt introduces a text-node boundary at the offset when it falls
// inside a text node. The tree is mutated; callers re-index afterwards.
func splitAt(doc *Node, off int) {
	idx := buildIndex(doc)
	for _, s := range idx.segments {
		if off > s.start && off < s.end() {
			cut := off - s.start
			left := s.node.Text[:cut]
			right := s.node.Text[cut:]

			s.node.Text = left
			tail := &Node{Type: TypeText, Text: right, Marks: cloneMarks(s.node.Marks)}

			content := s.parent.Content
			content = append(content[:s.index+1], append([]*Node{tail}, content[s.index+1:]...)...)
			s.parent.Content = content
			return
		}
	}
}

func cloneMarks(marks []Mark) []Mark {
	if marks == nil {
		return nil
	}
	out := make([]Mark, len(marks))
	for i, m := range marks {
		out[i] = Mark{Type: m.Type}
		if m.Attrs != nil {
			out[i].Attrs = make(map[string]interface{}, len(m.Attrs))
			for k, v := range m.Attrs {
				out[i].Attrs[k] = v
			}
		}
	}
	return out
}

// segmentsIn returns the text segments fully inside [from, to) after
// boundaries have been split at both ends.
func segmentsIn(doc *Node, from, to int) []segment {
	var out []segment
	for _, s := range buildIndex(doc).segments {
		if s.start >= from && s.end() <= to && s.node.Text != "" {
			out = append(out, s)
		}
	}
	return out
}

// addMarkRange applies a mark to every text node within [from, to),
// replacing an existing mark of the same type.
func addMarkRange(doc *Node, from, to int, mark Mark) {
	splitAt(doc, from)
	splitAt(doc, to)
	for _, s := range segmentsIn(doc, from, to) {
		removeMark(s.node, mark.Type)
		s.node.Marks = append(s.node.Marks, Mark{Type: mark.Type, Attrs: mark.Attrs})
	}
}

// removeMarkRange strips a mark type from every text node within [from, to).
func removeMarkRange(doc *Node, from, to int, markType string) {
	splitAt(doc, from)
	splitAt(doc, to)
	for _, s := range segmentsIn(doc, from, to) {
		removeMark(s.node, markType)
	}
}

// rangeHasMark reports whether every text node within [from, to) carries
// the mark. An empty range reports false.
func rangeHasMark(doc *Node, from, to int, markType string) bool {
	splitAt(doc, from)
	splitAt(doc, to)
	segs := segmentsIn(doc, from, to)
	if len(segs) == 0 {
		return false
	}
	for _, s := range segs {
		if !s.node.HasMark(markType) {
			return false
		}
	}
	return true
}

func removeMark(n *Node, markType string) {
	kept := n.Marks[:0]
	for _, m := range n.Marks {
		if m.Type != markType {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		n.Marks = nil
	} else {
		n.Marks = kept
	}
}

// deleteRange removes the text within [from, to) from the tree. Block
// structure is preserved; only text content is deleted.
func deleteRange(doc *Node, from, to int) {
	if to <= from {
		return
	}
	splitAt(doc, from)
	splitAt(doc, to)

	var doomed []*Node
	for _, s := range segmentsIn(doc, from, to) {
		doomed = append(doomed, s.node)
	}
	if len(doomed) == 0 {
		return
	}
	removeNodes(doc, doomed)
}

func removeNodes(n *Node, doomed []*Node) {
	kept := n.Content[:0]
	for _, c := range n.Content {
		dead := false
		for _, d := range doomed {
			if c == d {
				dead = true
				break
			}
		}
		if !dead {
			removeNodes(c, doomed)
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		n.Content = nil
	} else {
		n.Content = kept
	}
}

// insertTextAt splices plain text into the tree at the offset. Text lands
// in the surrounding text node when there is one, inheriting its marks;
// otherwise a text node is appended to the enclosing textblock.
func insertTextAt(doc *Node, off int, s string) {
	if s == "" {
		return
	}
	idx := buildIndex(doc)

	if seg, ok := idx.segmentAt(off); ok {
		cut := off - seg.start
		if cut < 0 {
			cut = 0
		}
		if cut > len(seg.node.Text) {
			cut = len(seg.node.Text)
		}
		seg.node.Text = seg.node.Text[:cut] + s + seg.node.Text[cut:]
		return
	}

	if tb, ok := idx.textblockAt(off); ok {
		tb.node.Content = append(tb.node.Content, Text(s))
		return
	}

	// Empty document or offset outside any textblock.
	doc.Content = append(doc.Content, Paragraph(Text(s)))
}
