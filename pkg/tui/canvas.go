package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/pagination"
)

// Canvas renders the document as a paged column of text and owns the
// editing keys. It is also the measurement host: the rendered extent is
// what pagination recomputes from.
type Canvas struct {
	engine *editor.Engine
	styles *Styles

	viewport     viewport.Model
	width        int
	height       int
	textWidth    int
	lineHeightPx int
	pageLines    int

	geometry pagination.Geometry
}

// NewCanvas creates the canvas over the given engine.
func NewCanvas(engine *editor.Engine, styles *Styles, lineHeightPx int) *Canvas {
	geometry := pagination.DefaultGeometry
	return &Canvas{
		engine:       engine,
		styles:       styles,
		viewport:     viewport.New(0, 0),
		lineHeightPx: lineHeightPx,
		geometry:     geometry,
		pageLines:    geometry.UsableHeightPx() / lineHeightPx,
	}
}

// SetSize resizes the canvas. The text column tracks the terminal width,
// which is why a resize forces a re-measure.
func (c *Canvas) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.textWidth = width - 6
	if c.textWidth < 20 {
		c.textWidth = 20
	}
	c.viewport.Width = width
	c.viewport.Height = height
}

// MeasuredHeightPx reports the document's rendered extent in pixels at
// the current width.
func (c *Canvas) MeasuredHeightPx() int {
	return measureHeightPx(c.engine.Doc(), c.textWidth, c.lineHeightPx)
}

// GoToPage scrolls the viewport to the top of page n (1-based).
func (c *Canvas) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	// Page breaks occupy one extra line each.
	c.viewport.SetYOffset((n - 1) * (c.pageLines + 1))
}

// HandleKey applies an editing key to the engine. It reports whether the
// key was consumed.
func (c *Canvas) HandleKey(msg tea.KeyMsg) bool {
	from, to := c.engine.Selection()

	switch msg.String() {
	case "ctrl+b":
		c.engine.Chain().Focus().ToggleBold().Run()
	case "ctrl+i":
		c.engine.Chain().Focus().ToggleItalic().Run()
	case "ctrl+u":
		c.engine.Chain().Focus().ToggleUnderline().Run()
	case "ctrl+z":
		c.engine.Chain().Focus().Undo().Run()
	case "ctrl+y":
		c.engine.Chain().Focus().Redo().Run()
	case "ctrl+alt+1":
		c.engine.Chain().Focus().ToggleHeading(1).Run()
	case "ctrl+alt+2":
		c.engine.Chain().Focus().ToggleHeading(2).Run()
	case "ctrl+alt+3":
		c.engine.Chain().Focus().ToggleHeading(3).Run()
	case "ctrl+alt+0":
		c.engine.Chain().Focus().SetParagraph().Run()
	case "enter":
		c.engine.Chain().Focus().InsertParagraph().Run()
	case "backspace":
		c.engine.Chain().Focus().DeleteBackward().Run()
	case "left":
		p := prevOffset(c.engine.Text(), from)
		c.engine.SetSelection(p, p)
	case "right":
		p := nextOffset(c.engine.Text(), from)
		c.engine.SetSelection(p, p)
	case "shift+left":
		c.engine.SetSelection(prevOffset(c.engine.Text(), from), to)
	case "shift+right":
		c.engine.SetSelection(from, nextOffset(c.engine.Text(), to))
	case "home":
		c.engine.SetSelection(0, 0)
	case "end":
		n := len(c.engine.Text())
		c.engine.SetSelection(n, n)
	case "esc":
		if from != to {
			c.engine.SetSelection(to, to)
		} else {
			c.engine.Blur()
		}
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			c.engine.Chain().Focus().InsertContent(string(msg.Runes)).Run()
			return true
		}
		if msg.Type == tea.KeySpace {
			c.engine.Chain().Focus().InsertContent(" ").Run()
			return true
		}
		return false
	}
	return true
}

// prevOffset returns the byte offset one rune before at.
func prevOffset(text string, at int) int {
	if at <= 0 {
		return 0
	}
	if at > len(text) {
		at = len(text)
	}
	_, size := utf8.DecodeLastRuneInString(text[:at])
	return at - size
}

// nextOffset returns the byte offset one rune after at.
func nextOffset(text string, at int) int {
	if at < 0 {
		at = 0
	}
	if at >= len(text) {
		return len(text)
	}
	_, size := utf8.DecodeRuneInString(text[at:])
	return at + size
}

// Update routes scroll messages to the viewport.
func (c *Canvas) Update(msg tea.Msg) (*Canvas, tea.Cmd) {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// Refresh re-renders the document into the viewport.
func (c *Canvas) Refresh() {
	c.viewport.SetContent(c.render())
}

// View renders the visible slice of the document.
func (c *Canvas) View() string {
	return c.viewport.View()
}

func (c *Canvas) render() string {
	doc := c.engine.Doc()
	from, to := c.engine.Selection()

	var lines []string
	offset := 0
	for i, block := range doc.Content {
		if i > 0 {
			lines = append(lines, "")
			offset += 2
		}
		rendered := c.renderBlock(block, from-offset, to-offset)
		lines = append(lines, strings.Split(rendered, "\n")...)
		offset += len(flattenedBlockText(block))
	}

	// Interleave page break rules at page-height intervals.
	var out []string
	page := 1
	for i, line := range lines {
		if i > 0 && i%c.pageLines == 0 {
			page++
			out = append(out, c.pageBreakRule(page))
		}
		out = append(out, line)
	}

	body := strings.Join(out, "\n")
	return c.styles.Page.Width(c.width).Render(body)
}

func (c *Canvas) pageBreakRule(page int) string {
	label := fmt.Sprintf(" Page %d ", page)
	width := c.textWidth - lipgloss.Width(label)
	if width < 2 {
		width = 2
	}
	rule := strings.Repeat("─", width/2) + label + strings.Repeat("─", width-width/2)
	return c.styles.PageBreak.Render(rule)
}

func (c *Canvas) renderBlock(block *editor.Node, selFrom, selTo int) string {
	text := flattenedBlockText(block)
	styled := c.applySelection(text, selFrom, selTo)

	switch block.Type {
	case editor.TypeHeading:
		level, _ := block.IntAttr("level")
		prefix := strings.Repeat("#", level) + " "
		return c.styles.HeadingText.Render(prefix) + c.styles.HeadingText.Render(wrapText(styled, c.textWidth-len(prefix)))

	case editor.TypeCodeBlock:
		return c.styles.CodeText.Render(styled)

	case editor.TypeBlockquote:
		wrapped := wrapText(styled, c.textWidth-2)
		var b strings.Builder
		for i, line := range strings.Split(wrapped, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(c.styles.QuoteText.Render("│ " + line))
		}
		return b.String()

	case editor.TypeBulletList, editor.TypeOrderedList, editor.TypeTaskList:
		return c.renderList(block, selFrom, selTo)

	case editor.TypeHorizontalRule:
		return c.styles.PageBreak.Render(strings.Repeat("─", c.textWidth))

	case editor.TypeTable:
		return c.renderTable(block)

	default:
		return wrapText(styled, c.textWidth)
	}
}

func (c *Canvas) renderList(list *editor.Node, selFrom, selTo int) string {
	var b strings.Builder
	offset := 0
	for i, item := range list.Content {
		if i > 0 {
			b.WriteString("\n")
			offset++
		}
		marker := "• "
		switch list.Type {
		case editor.TypeOrderedList:
			marker = fmt.Sprintf("%d. ", i+1)
		case editor.TypeTaskList:
			marker = "☐ "
			if item.BoolAttr("checked") {
				marker = "☑ "
			}
		}
		text := itemText(item)
		styled := c.applySelection(text, selFrom-offset, selTo-offset)
		b.WriteString(marker + wrapText(styled, c.textWidth-len(marker)))
		offset += len(text)
	}
	return b.String()
}

func (c *Canvas) renderTable(table *editor.Node) string {
	var rows []string
	for _, row := range table.Content {
		var cells []string
		for _, cell := range row.Content {
			cells = append(cells, cell.TextContent())
		}
		rows = append(rows, "│ "+strings.Join(cells, " │ ")+" │")
	}
	rule := c.styles.PageBreak.Render(strings.Repeat("─", c.textWidth))
	return rule + "\n" + strings.Join(rows, "\n") + "\n" + rule
}

// applySelection reverses the selected slice of text. Offsets are
// relative to the start of text; out-of-range selections are ignored.
func (c *Canvas) applySelection(text string, from, to int) string {
	if from >= to || to <= 0 || from >= len(text) {
		return text
	}
	if from < 0 {
		from = 0
	}
	if to > len(text) {
		to = len(text)
	}
	return text[:from] + c.styles.Selection.Render(text[from:to]) + text[to:]
}

// flattenedBlockText mirrors the engine's flattening for one top-level
// block: nested textblocks joined by single newlines.
func flattenedBlockText(block *editor.Node) string {
	switch block.Type {
	case editor.TypeBulletList, editor.TypeOrderedList, editor.TypeTaskList:
		var parts []string
		for _, item := range block.Content {
			parts = append(parts, itemText(item))
		}
		return strings.Join(parts, "\n")
	case editor.TypeBlockquote:
		var parts []string
		for _, inner := range block.Content {
			parts = append(parts, inner.TextContent())
		}
		return strings.Join(parts, "\n")
	case editor.TypeTable:
		var parts []string
		for _, row := range block.Content {
			for _, cell := range row.Content {
				parts = append(parts, cell.TextContent())
			}
		}
		return strings.Join(parts, "\n")
	default:
		return block.TextContent()
	}
}

func itemText(item *editor.Node) string {
	var parts []string
	for _, inner := range item.Content {
		parts = append(parts, inner.TextContent())
	}
	return strings.Join(parts, "\n")
}
