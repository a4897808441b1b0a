package editor

import "unicode/utf8"

// Chain is the fluent command interface. Commands queue until the terminal
// Run step, which applies them in order, records one undo snapshot, and
// emits a single update notification.
type chainOp struct {
	apply   func(e *Engine)
	mutates bool
}

// Chain collects editor commands for a single Run.
type Chain struct {
	e     *Engine
	ops   []chainOp
	focus bool
}

// Chain starts a new command chain.
func (e *Engine) Chain() *Chain {
	return &Chain{e: e}
}

func (c *Chain) add(mutates bool, apply func(e *Engine)) *Chain {
	c.ops = append(c.ops, chainOp{apply: apply, mutates: mutates})
	return c
}

// Run executes the queued commands. It never fails; commands that cannot
// apply at the current selection are no-ops.
func (c *Chain) Run() {
	e := c.e

	e.mu.Lock()
	if c.focus {
		e.focused = true
	}
	mutated := false
	for _, op := range c.ops {
		if op.mutates && !mutated {
			e.snapshotLocked()
			mutated = true
		}
		op.apply(e)
	}
	if len(c.ops) > 0 {
		e.setSelectionLocked(e.selFrom, e.selTo)
	}
	ran := len(c.ops) > 0
	e.mu.Unlock()

	if ran {
		e.notify()
	}
}

// Focus marks the editing surface focused before any command runs.
func (c *Chain) Focus() *Chain {
	c.focus = true
	return c
}

// --- mark commands ---

func (c *Chain) toggleMark(markType string, attrs map[string]interface{}) *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo <= e.selFrom {
			return
		}
		if rangeHasMark(e.doc, e.selFrom, e.selTo, markType) {
			removeMarkRange(e.doc, e.selFrom, e.selTo, markType)
		} else {
			addMarkRange(e.doc, e.selFrom, e.selTo, Mark{Type: markType, Attrs: attrs})
		}
	})
}

// ToggleBold toggles the bold mark on the selection.
func (c *Chain) ToggleBold() *Chain { return c.toggleMark(MarkBold, nil) }

// ToggleItalic toggles the italic mark on the selection.
func (c *Chain) ToggleItalic() *Chain { return c.toggleMark(MarkItalic, nil) }

// ToggleUnderline toggles the underline mark on the selection.
func (c *Chain) ToggleUnderline() *Chain { return c.toggleMark(MarkUnderline, nil) }

// ToggleStrike toggles the strikethrough mark on the selection.
func (c *Chain) ToggleStrike() *Chain { return c.toggleMark(MarkStrike, nil) }

// ToggleCode toggles the inline code mark on the selection.
func (c *Chain) ToggleCode() *Chain { return c.toggleMark(MarkCode, nil) }

// ToggleHighlight toggles a colored highlight on the selection.
func (c *Chain) ToggleHighlight(color string) *Chain {
	return c.toggleMark(MarkHighlight, map[string]interface{}{"color": color})
}

// UnsetHighlight removes any highlight from the selection.
func (c *Chain) UnsetHighlight() *Chain {
	return c.add(true, func(e *Engine) {
		removeMarkRange(e.doc, e.selFrom, e.selTo, MarkHighlight)
	})
}

// SetColor applies a text color to the selection.
func (c *Chain) SetColor(color string) *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo <= e.selFrom {
			return
		}
		addMarkRange(e.doc, e.selFrom, e.selTo, Mark{Type: MarkTextStyle, Attrs: map[string]interface{}{"color": color}})
	})
}

// UnsetColor removes any text color from the selection.
func (c *Chain) UnsetColor() *Chain {
	return c.add(true, func(e *Engine) {
		removeMarkRange(e.doc, e.selFrom, e.selTo, MarkTextStyle)
	})
}

// SetLink applies a link mark with the given href to the selection.
func (c *Chain) SetLink(href string) *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo <= e.selFrom || href == "" {
			return
		}
		addMarkRange(e.doc, e.selFrom, e.selTo, Mark{Type: MarkLink, Attrs: map[string]interface{}{"href": href}})
	})
}

// UnsetLink removes any link mark from the selection.
func (c *Chain) UnsetLink() *Chain {
	return c.add(true, func(e *Engine) {
		removeMarkRange(e.doc, e.selFrom, e.selTo, MarkLink)
	})
}

// --- text commands ---

// InsertContent replaces the selection with plain text.
func (c *Chain) InsertContent(text string) *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo > e.selFrom {
			deleteRange(e.doc, e.selFrom, e.selTo)
		}
		insertTextAt(e.doc, e.selFrom, text)
		e.selFrom += len(text)
		e.selTo = e.selFrom
	})
}

// DeleteSelection removes the selected text.
func (c *Chain) DeleteSelection() *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo > e.selFrom {
			deleteRange(e.doc, e.selFrom, e.selTo)
			e.selTo = e.selFrom
		}
	})
}

// DeleteBackward removes the selection, or the rune before the cursor.
func (c *Chain) DeleteBackward() *Chain {
	return c.add(true, func(e *Engine) {
		if e.selTo > e.selFrom {
			deleteRange(e.doc, e.selFrom, e.selTo)
			e.selTo = e.selFrom
			return
		}
		if e.selFrom == 0 {
			return
		}
		// Offsets are bytes; step back one rune, not one byte.
		text := buildIndex(e.doc).text
		_, size := utf8.DecodeLastRuneInString(text[:e.selFrom])
		if size == 0 {
			return
		}
		deleteRange(e.doc, e.selFrom-size, e.selFrom)
		e.selFrom -= size
		e.selTo = e.selFrom
	})
}

// --- history commands ---

// Undo reverts the last mutation.
func (c *Chain) Undo() *Chain {
	return c.add(false, func(e *Engine) { e.undoLocked() })
}

// Redo re-applies the last undone mutation.
func (c *Chain) Redo() *Chain {
	return c.add(false, func(e *Engine) { e.redoLocked() })
}
