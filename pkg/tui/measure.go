package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/opensphere/editorial/pkg/editor"
)

// blankLinesBetweenBlocks is the vertical gap the canvas draws between
// top-level blocks.
const blankLinesBetweenBlocks = 1

// measureHeightPx converts the document's rendered extent at the given
// column width into pixels: wrapped line count times the configured line
// height. This is the measurement the pagination engine consumes; zoom
// never feeds it.
func measureHeightPx(doc *editor.Node, width, lineHeightPx int) int {
	return measureLines(doc, width) * lineHeightPx
}

// measureLines counts the wrapped lines the document occupies at the
// given column width.
func measureLines(doc *editor.Node, width int) int {
	if doc == nil || width <= 0 {
		return 0
	}
	lines := 0
	for i, block := range doc.Content {
		if i > 0 {
			lines += blankLinesBetweenBlocks
		}
		lines += blockLines(block, width)
	}
	return lines
}

func blockLines(block *editor.Node, width int) int {
	switch block.Type {
	case editor.TypeHorizontalRule:
		return 1

	case editor.TypeCodeBlock:
		// Code is not soft-wrapped; each source line is one row.
		return strings.Count(block.TextContent(), "\n") + 1

	case editor.TypeBulletList, editor.TypeOrderedList, editor.TypeTaskList:
		// List markers eat into the wrap width.
		lines := 0
		for _, item := range block.Content {
			for _, inner := range item.Content {
				lines += blockLines(inner, width-3)
			}
		}
		return lines

	case editor.TypeBlockquote:
		lines := 0
		for _, inner := range block.Content {
			lines += blockLines(inner, width-2)
		}
		return lines

	case editor.TypeTable:
		// One row per table row plus a rule line above and below.
		return len(block.Content) + 2

	case editor.TypeImage:
		return 1

	default:
		return wrappedLines(block.TextContent(), width)
	}
}

// wrapText wraps text to width columns: word wrapping first, then a hard
// break for words longer than the width. The canvas renders through the
// same function so measurement matches presentation.
func wrapText(text string, width int) string {
	if width < 1 {
		width = 1
	}
	return wrap.String(wordwrap.String(text, width), width)
}

// wrappedLines counts the lines text occupies after wrapping to width
// columns. Empty text still occupies its line.
func wrappedLines(text string, width int) int {
	if text == "" {
		return 1
	}
	return strings.Count(wrapText(text, width), "\n") + 1
}
