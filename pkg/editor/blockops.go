package editor

// Block-level chain commands. All of them resolve the block from the
// selection start; commands that cannot apply there are no-ops.

// SetParagraph converts the current textblock to a plain paragraph.
func (c *Chain) SetParagraph() *Chain {
	return c.add(true, func(e *Engine) {
		if tb, ok := buildIndex(e.doc).textblockAt(e.selFrom); ok {
			tb.node.Type = TypeParagraph
			tb.node.Attrs = nil
		}
	})
}

// ToggleHeading toggles the current textblock between a heading of the
// given level and a paragraph.
func (c *Chain) ToggleHeading(level int) *Chain {
	return c.add(true, func(e *Engine) {
		tb, ok := buildIndex(e.doc).textblockAt(e.selFrom)
		if !ok {
			return
		}
		if cur, _ := tb.node.IntAttr("level"); tb.node.Type == TypeHeading && cur == level {
			tb.node.Type = TypeParagraph
			tb.node.Attrs = nil
			return
		}
		tb.node.Type = TypeHeading
		tb.node.Attrs = map[string]interface{}{"level": level}
	})
}

// ToggleBulletList wraps the current block in a bullet list, or unwraps it.
func (c *Chain) ToggleBulletList() *Chain {
	return c.add(true, func(e *Engine) { toggleList(e, TypeBulletList, TypeListItem) })
}

// ToggleOrderedList wraps the current block in an ordered list, or unwraps it.
func (c *Chain) ToggleOrderedList() *Chain {
	return c.add(true, func(e *Engine) { toggleList(e, TypeOrderedList, TypeListItem) })
}

// ToggleTaskList wraps the current block in a task list, or unwraps it.
func (c *Chain) ToggleTaskList() *Chain {
	return c.add(true, func(e *Engine) { toggleList(e, TypeTaskList, TypeTaskItem) })
}

func isListType(t string) bool {
	switch t {
	case TypeBulletList, TypeOrderedList, TypeTaskList:
		return true
	}
	return false
}

func toggleList(e *Engine, listType, itemType string) {
	blk, ok := buildIndex(e.doc).blockAt(e.selFrom)
	if !ok {
		return
	}

	switch {
	case blk.node.Type == listType:
		// Unwrap: promote each item's blocks to the top level.
		var promoted []*Node
		for _, item := range blk.node.Content {
			for _, child := range item.Content {
				if isTextblock(child.Type) {
					promoted = append(promoted, child)
				}
			}
		}
		if len(promoted) == 0 {
			promoted = []*Node{Paragraph()}
		}
		replaceBlock(e.doc, blk.index, promoted...)

	case isListType(blk.node.Type):
		// Switch list flavor in place.
		blk.node.Type = listType
		for _, item := range blk.node.Content {
			item.Type = itemType
			if itemType == TypeTaskItem {
				if item.Attrs == nil {
					item.Attrs = map[string]interface{}{"checked": false}
				}
			} else {
				item.Attrs = nil
			}
		}

	default:
		// Wrap the block into a single-item list. The block becomes the
		// item's paragraph.
		block := blk.node
		block.Type = TypeParagraph
		block.Attrs = nil

		item := &Node{Type: itemType, Content: []*Node{block}}
		if itemType == TypeTaskItem {
			item.Attrs = map[string]interface{}{"checked": false}
		}
		replaceBlock(e.doc, blk.index, &Node{Type: listType, Content: []*Node{item}})
	}
}

// ToggleBlockquote wraps the current block in a blockquote, or unwraps it.
func (c *Chain) ToggleBlockquote() *Chain {
	return c.add(true, func(e *Engine) {
		blk, ok := buildIndex(e.doc).blockAt(e.selFrom)
		if !ok {
			return
		}
		if blk.node.Type == TypeBlockquote {
			inner := blk.node.Content
			if len(inner) == 0 {
				inner = []*Node{Paragraph()}
			}
			replaceBlock(e.doc, blk.index, inner...)
			return
		}
		replaceBlock(e.doc, blk.index, &Node{Type: TypeBlockquote, Content: []*Node{blk.node}})
	})
}

// ToggleCodeBlock converts the current textblock to a code block and back.
// Entering a code block strips inline formatting.
func (c *Chain) ToggleCodeBlock() *Chain {
	return c.add(true, func(e *Engine) {
		tb, ok := buildIndex(e.doc).textblockAt(e.selFrom)
		if !ok {
			return
		}
		if tb.node.Type == TypeCodeBlock {
			tb.node.Type = TypeParagraph
			tb.node.Attrs = nil
			return
		}
		text := tb.node.TextContent()
		tb.node.Type = TypeCodeBlock
		tb.node.Attrs = nil
		if text == "" {
			tb.node.Content = nil
		} else {
			tb.node.Content = []*Node{Text(text)}
		}
	})
}

// InsertTable inserts a table with a header row after the current block.
func (c *Chain) InsertTable(rows, cols int) *Chain {
	return c.add(true, func(e *Engine) {
		if rows < 1 || cols < 1 {
			return
		}
		table := &Node{Type: TypeTable}
		for r := 0; r < rows; r++ {
			row := &Node{Type: TypeTableRow}
			cellType := TypeTableCell
			if r == 0 {
				cellType = TypeTableHeader
			}
			for col := 0; col < cols; col++ {
				row.Content = append(row.Content, &Node{
					Type:    cellType,
					Content: []*Node{Paragraph()},
				})
			}
			table.Content = append(table.Content, row)
		}
		insertBlockAfter(e, table)
	})
}

// SetImage inserts an inline image at the cursor.
func (c *Chain) SetImage(src string) *Chain {
	return c.add(true, func(e *Engine) {
		if src == "" {
			return
		}
		img := &Node{Type: TypeImage, Attrs: map[string]interface{}{"src": src}}
		if tb, ok := buildIndex(e.doc).textblockAt(e.selFrom); ok && tb.node.Type != TypeCodeBlock {
			tb.node.Content = append(tb.node.Content, img)
			return
		}
		insertBlockAfter(e, Paragraph(img))
	})
}

// SetHorizontalRule inserts a horizontal rule after the current block.
func (c *Chain) SetHorizontalRule() *Chain {
	return c.add(true, func(e *Engine) {
		insertBlockAfter(e, &Node{Type: TypeHorizontalRule})
	})
}

// SetTextAlign sets the alignment of the current paragraph or heading.
func (c *Chain) SetTextAlign(align string) *Chain {
	return c.add(true, func(e *Engine) {
		tb, ok := buildIndex(e.doc).textblockAt(e.selFrom)
		if !ok || tb.node.Type == TypeCodeBlock {
			return
		}
		if tb.node.Attrs == nil {
			tb.node.Attrs = map[string]interface{}{}
		}
		tb.node.Attrs["textAlign"] = align
	})
}

// InsertParagraph splits the current top-level textblock at the cursor,
// carrying trailing content into a new block of the same type. Elsewhere
// it inserts an empty paragraph after the current block.
func (c *Chain) InsertParagraph() *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo > e.selFrom {
			deleteRange(e.doc, e.selFrom, e.selTo)
			e.selTo = e.selFrom
		}

		splitAt(e.doc, e.selFrom)
		idx := buildIndex(e.doc)

		tb, ok := idx.textblockAt(e.selFrom)
		if ok && tb.parent == e.doc {
			// Partition inline children at the cursor.
			var head, tail []*Node
			off := tb.start
			for _, child := range tb.node.Content {
				end := off + inlineLen(child)
				if off >= e.selFrom {
					tail = append(tail, child)
				} else {
					head = append(head, child)
				}
				off = end
			}
			tb.node.Content = head

			next := &Node{Type: tb.node.Type, Attrs: tb.node.Attrs, Content: tail}
			if tb.node.Type == TypeHeading {
				// A split heading continues as body text.
				next = &Node{Type: TypeParagraph, Content: tail}
			}
			insertAt(e.doc, tb.index+1, next)
		} else if blk, ok := idx.blockAt(e.selFrom); ok {
			insertAt(e.doc, blk.index+1, Paragraph())
		} else {
			e.doc.Content = append(e.doc.Content, Paragraph())
		}

		// Cursor lands at the start of the new block, one separator past
		// the end of the old one.
		e.selFrom += len(blockSeparator)
		e.selTo = e.selFrom
	})
}

func inlineLen(n *Node) int {
	switch n.Type {
	case TypeText:
		return len(n.Text)
	case TypeHardBreak:
		return len(nestedSeparator)
	default:
		return 0
	}
}

func insertBlockAfter(e *Engine, block *Node) {
	if blk, ok := buildIndex(e.doc).blockAt(e.selFrom); ok {
		insertAt(e.doc, blk.index+1, block)
		return
	}
	e.doc.Content = append(e.doc.Content, block)
}

func insertAt(doc *Node, index int, blocks ...*Node) {
	if index < 0 {
		index = 0
	}
	if index > len(doc.Content) {
		index = len(doc.Content)
	}
	doc.Content = append(doc.Content[:index], append(blocks, doc.Content[index:]...)...)
}

func replaceBlock(doc *Node, index int, with ...*Node) {
	if index < 0 || index >= len(doc.Content) {
		return
	}
	rest := append([]*Node{}, doc.Content[index+1:]...)
	doc.Content = append(doc.Content[:index], append(with, rest...)...)
}
