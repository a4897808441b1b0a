package editor

import (
	"fmt"
	"html"
	"strings"
)

// HTML serializes the document tree to HTML. The element vocabulary
// mirrors what ParseHTML accepts, so HTML round-trips structurally.
func (e *Engine) HTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var b strings.Builder
	for _, block := range e.doc.Content {
		renderNode(&b, block)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n *Node) {
	switch n.Type {
	case TypeParagraph:
		b.WriteString("<p" + alignStyle(n) + ">")
		renderInline(b, n.Content)
		b.WriteString("</p>")

	case TypeHeading:
		level, ok := n.IntAttr("level")
		if !ok || level < 1 || level > 6 {
			level = 1
		}
		fmt.Fprintf(b, "<h%d%s>", level, alignStyle(n))
		renderInline(b, n.Content)
		fmt.Fprintf(b, "</h%d>", level)

	case TypeBulletList:
		b.WriteString("<ul>")
		for _, item := range n.Content {
			renderNode(b, item)
		}
		b.WriteString("</ul>")

	case TypeOrderedList:
		b.WriteString("<ol>")
		for _, item := range n.Content {
			renderNode(b, item)
		}
		b.WriteString("</ol>")

	case TypeTaskList:
		b.WriteString(`<ul data-type="taskList">`)
		for _, item := range n.Content {
			renderNode(b, item)
		}
		b.WriteString("</ul>")

	case TypeListItem:
		b.WriteString("<li>")
		renderListItemBody(b, n)
		b.WriteString("</li>")

	case TypeTaskItem:
		checked := "false"
		if n.BoolAttr("checked") {
			checked = "true"
		}
		fmt.Fprintf(b, `<li data-type="taskItem" data-checked=%q>`, checked)
		renderListItemBody(b, n)
		b.WriteString("</li>")

	case TypeBlockquote:
		b.WriteString("<blockquote>")
		for _, child := range n.Content {
			renderNode(b, child)
		}
		b.WriteString("</blockquote>")

	case TypeCodeBlock:
		b.WriteString("<pre><code")
		if lang := n.StringAttr("language"); lang != "" {
			fmt.Fprintf(b, ` class="language-%s"`, html.EscapeString(lang))
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(n.TextContent()))
		b.WriteString("</code></pre>")

	case TypeTable:
		b.WriteString("<table><tbody>")
		for _, row := range n.Content {
			renderNode(b, row)
		}
		b.WriteString("</tbody></table>")

	case TypeTableRow:
		b.WriteString("<tr>")
		for _, cell := range n.Content {
			renderNode(b, cell)
		}
		b.WriteString("</tr>")

	case TypeTableHeader, TypeTableCell:
		tag := "td"
		if n.Type == TypeTableHeader {
			tag = "th"
		}
		fmt.Fprintf(b, "<%s>", tag)
		for _, child := range n.Content {
			renderNode(b, child)
		}
		fmt.Fprintf(b, "</%s>", tag)

	case TypeHorizontalRule:
		b.WriteString("<hr>")

	case TypeImage:
		fmt.Fprintf(b, `<img src=%q>`, n.StringAttr("src"))

	case TypeHardBreak:
		b.WriteString("<br>")

	case TypeText:
		b.WriteString(renderText(n))

	default:
		renderInline(b, n.Content)
	}
}

// renderListItemBody renders an item's blocks, unwrapping a single
// paragraph to keep list markup compact.
func renderListItemBody(b *strings.Builder, item *Node) {
	if len(item.Content) == 1 && item.Content[0].Type == TypeParagraph && item.Content[0].Attrs == nil {
		renderInline(b, item.Content[0].Content)
		return
	}
	for _, child := range item.Content {
		renderNode(b, child)
	}
}

func renderInline(b *strings.Builder, inline []*Node) {
	for _, n := range inline {
		renderNode(b, n)
	}
}

// renderText wraps the escaped text in mark elements, link outermost and
// inline code innermost.
func renderText(n *Node) string {
	out := html.EscapeString(n.Text)

	if n.HasMark(MarkCode) {
		out = "<code>" + out + "</code>"
	}
	if n.HasMark(MarkStrike) {
		out = "<s>" + out + "</s>"
	}
	if n.HasMark(MarkUnderline) {
		out = "<u>" + out + "</u>"
	}
	if n.HasMark(MarkItalic) {
		out = "<em>" + out + "</em>"
	}
	if n.HasMark(MarkBold) {
		out = "<strong>" + out + "</strong>"
	}
	if n.HasMark(MarkHighlight) {
		color, _ := n.markAttr(MarkHighlight, "color")
		if c, ok := color.(string); ok && c != "" {
			out = fmt.Sprintf(`<mark data-color=%q style="background-color: %s">%s</mark>`, c, c, out)
		} else {
			out = "<mark>" + out + "</mark>"
		}
	}
	if color, ok := n.markAttr(MarkTextStyle, "color"); ok {
		if c, ok := color.(string); ok && c != "" {
			out = fmt.Sprintf(`<span style="color: %s">%s</span>`, c, out)
		}
	}
	if href, ok := n.markAttr(MarkLink, "href"); ok {
		if h, ok := href.(string); ok && h != "" {
			out = fmt.Sprintf(`<a href=%q>%s</a>`, h, out)
		}
	}
	return out
}

func alignStyle(n *Node) string {
	align := n.StringAttr("textAlign")
	if align == "" || align == "left" {
		return ""
	}
	return fmt.Sprintf(` style="text-align: %s"`, align)
}
