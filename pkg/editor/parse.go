package editor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML builds a document tree from an HTML fragment. Unknown
// elements are transparent: their children are parsed in place.
func ParseHTML(src string) (*Node, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	body := findElement(root, "body")
	if body == nil {
		body = root
	}

	doc := Doc()
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		doc.Content = append(doc.Content, parseBlock(c)...)
	}
	if len(doc.Content) == 0 {
		doc.Content = []*Node{Paragraph()}
	}
	return doc, nil
}

// SetContentHTML replaces the document with the parsed HTML fragment.
func (e *Engine) SetContentHTML(src string) error {
	doc, err := ParseHTML(src)
	if err != nil {
		return err
	}
	e.SetContent(doc)
	return nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func parseBlock(n *html.Node) []*Node {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			return []*Node{Paragraph(Text(text))}
		}
		return nil
	case html.ElementNode:
		// handled below
	default:
		return nil
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		if level > 3 {
			level = 3
		}
		block := Heading(level, parseInline(n, nil)...)
		applyAlign(block, n)
		return []*Node{block}

	case "p":
		block := Paragraph(parseInline(n, nil)...)
		applyAlign(block, n)
		return []*Node{block}

	case "ul":
		if attr(n, "data-type") == "taskList" {
			return []*Node{parseList(n, TypeTaskList, TypeTaskItem)}
		}
		return []*Node{parseList(n, TypeBulletList, TypeListItem)}

	case "ol":
		return []*Node{parseList(n, TypeOrderedList, TypeListItem)}

	case "blockquote":
		quote := &Node{Type: TypeBlockquote}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			quote.Content = append(quote.Content, parseBlock(c)...)
		}
		if len(quote.Content) == 0 {
			quote.Content = []*Node{Paragraph(parseInline(n, nil)...)}
		}
		return []*Node{quote}

	case "pre":
		block := &Node{Type: TypeCodeBlock}
		code := findElement(n, "code")
		if code == nil {
			code = n
		}
		if class := attr(code, "class"); strings.HasPrefix(class, "language-") {
			block.Attrs = map[string]interface{}{"language": strings.TrimPrefix(class, "language-")}
		}
		if text := textOf(code); text != "" {
			block.Content = []*Node{Text(text)}
		}
		return []*Node{block}

	case "table":
		return []*Node{parseTable(n)}

	case "hr":
		return []*Node{{Type: TypeHorizontalRule}}

	case "img":
		if src := attr(n, "src"); src != "" {
			return []*Node{Paragraph(&Node{Type: TypeImage, Attrs: map[string]interface{}{"src": src}})}
		}
		return nil

	default:
		// Transparent container: parse children in place. Inline-only
		// content becomes a paragraph.
		if inline := parseInline(n, nil); len(inline) > 0 && !hasBlockChild(n) {
			return []*Node{Paragraph(inline...)}
		}
		var blocks []*Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			blocks = append(blocks, parseBlock(c)...)
		}
		return blocks
	}
}

func parseList(n *html.Node, listType, itemType string) *Node {
	list := &Node{Type: listType}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		item := &Node{Type: itemType}
		if itemType == TypeTaskItem {
			item.Attrs = map[string]interface{}{"checked": attr(c, "data-checked") == "true"}
		}
		if hasBlockChild(c) {
			for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
				item.Content = append(item.Content, parseBlock(gc)...)
			}
		} else {
			item.Content = []*Node{Paragraph(parseInline(c, nil)...)}
		}
		if len(item.Content) == 0 {
			item.Content = []*Node{Paragraph()}
		}
		list.Content = append(list.Content, item)
	}
	return list
}

func parseTable(n *html.Node) *Node {
	table := &Node{Type: TypeTable}
	var walkRows func(*html.Node)
	walkRows = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				walkRows(c)
			case "tr":
				row := &Node{Type: TypeTableRow}
				for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type != html.ElementNode {
						continue
					}
					var cellType string
					switch cell.Data {
					case "th":
						cellType = TypeTableHeader
					case "td":
						cellType = TypeTableCell
					default:
						continue
					}
					cellNode := &Node{Type: cellType}
					if hasBlockChild(cell) {
						for gc := cell.FirstChild; gc != nil; gc = gc.NextSibling {
							cellNode.Content = append(cellNode.Content, parseBlock(gc)...)
						}
					} else {
						cellNode.Content = []*Node{Paragraph(parseInline(cell, nil)...)}
					}
					row.Content = append(row.Content, cellNode)
				}
				table.Content = append(table.Content, row)
			}
		}
	}
	walkRows(n)
	return table
}

// parseInline flattens an element's inline content, accumulating marks.
func parseInline(n *html.Node, marks []Mark) []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if c.Data != "" {
				text := collapseSpace(c.Data)
				if text != "" {
					out = append(out, Text(text, cloneMarks(marks)...))
				}
			}
		case html.ElementNode:
			childMarks := marks
			switch c.Data {
			case "strong", "b":
				childMarks = appendMark(marks, Mark{Type: MarkBold})
			case "em", "i":
				childMarks = appendMark(marks, Mark{Type: MarkItalic})
			case "u":
				childMarks = appendMark(marks, Mark{Type: MarkUnderline})
			case "s", "del", "strike":
				childMarks = appendMark(marks, Mark{Type: MarkStrike})
			case "code":
				childMarks = appendMark(marks, Mark{Type: MarkCode})
			case "mark":
				m := Mark{Type: MarkHighlight}
				if color := attr(c, "data-color"); color != "" {
					m.Attrs = map[string]interface{}{"color": color}
				} else if color := styleValue(attr(c, "style"), "background-color"); color != "" {
					m.Attrs = map[string]interface{}{"color": color}
				}
				childMarks = appendMark(marks, m)
			case "a":
				if href := attr(c, "href"); href != "" {
					childMarks = appendMark(marks, Mark{Type: MarkLink, Attrs: map[string]interface{}{"href": href}})
				}
			case "span":
				if color := styleValue(attr(c, "style"), "color"); color != "" {
					childMarks = appendMark(marks, Mark{Type: MarkTextStyle, Attrs: map[string]interface{}{"color": color}})
				}
			case "br":
				out = append(out, &Node{Type: TypeHardBreak})
				continue
			case "img":
				if src := attr(c, "src"); src != "" {
					out = append(out, &Node{Type: TypeImage, Attrs: map[string]interface{}{"src": src}})
				}
				continue
			}
			out = append(out, parseInline(c, childMarks)...)
		}
	}
	return out
}

func appendMark(marks []Mark, m Mark) []Mark {
	out := cloneMarks(marks)
	return append(out, m)
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol",
			"blockquote", "pre", "table", "hr", "div", "li":
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimRight(b.String(), "\n")
}

// collapseSpace folds runs of whitespace into single spaces, dropping
// whitespace-only runs produced by markup indentation.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if s[0] == ' ' || s[0] == '\t' {
		// keep a single leading space between inline siblings
		out = " " + out
	}
	if last := s[len(s)-1]; last == ' ' || last == '\t' {
		out = out + " "
	}
	return out
}

func applyAlign(block *Node, n *html.Node) {
	if align := styleValue(attr(n, "style"), "text-align"); align != "" && align != "left" {
		if block.Attrs == nil {
			block.Attrs = map[string]interface{}{}
		}
		block.Attrs["textAlign"] = align
	}
}

// styleValue extracts one property from an inline style attribute.
func styleValue(style, property string) string {
	for _, decl := range strings.Split(style, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == property {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}
