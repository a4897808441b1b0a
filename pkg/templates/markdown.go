package templates

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/opensphere/editorial/pkg/editor"
)

// parseMarkdown turns template Markdown into an engine document.
func parseMarkdown(src []byte) (*editor.Node, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.TaskList))
	root := md.Parser().Parse(text.NewReader(src))

	var blocks []*editor.Node
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		block, err := convertBlock(n, src)
		if err != nil {
			return nil, err
		}
		if block != nil {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, editor.Paragraph())
	}
	return editor.Doc(blocks...), nil
}

func convertBlock(n ast.Node, src []byte) (*editor.Node, error) {
	switch node := n.(type) {
	case *ast.Heading:
		level := node.Level
		if level > 3 {
			level = 3
		}
		return editor.Heading(level, convertInlines(node, src)...), nil

	case *ast.Paragraph, *ast.TextBlock:
		return editor.Paragraph(convertInlines(n, src)...), nil

	case *ast.List:
		return convertList(node, src)

	case *ast.Blockquote:
		quote := &editor.Node{Type: editor.TypeBlockquote}
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			block, err := convertBlock(c, src)
			if err != nil {
				return nil, err
			}
			if block != nil {
				quote.Content = append(quote.Content, block)
			}
		}
		return quote, nil

	case *ast.FencedCodeBlock:
		block := &editor.Node{Type: editor.TypeCodeBlock}
		if lang := node.Language(src); len(lang) > 0 {
			block.Attrs = map[string]interface{}{"language": string(lang)}
		}
		if code := blockLines(node, src); code != "" {
			block.Content = []*editor.Node{editor.Text(code)}
		}
		return block, nil

	case *ast.CodeBlock:
		block := &editor.Node{Type: editor.TypeCodeBlock}
		if code := blockLines(node, src); code != "" {
			block.Content = []*editor.Node{editor.Text(code)}
		}
		return block, nil

	case *ast.ThematicBreak:
		return &editor.Node{Type: editor.TypeHorizontalRule}, nil

	case *ast.HTMLBlock:
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported markdown block %s", n.Kind())
	}
}

func convertList(list *ast.List, src []byte) (*editor.Node, error) {
	listType := editor.TypeBulletList
	itemType := editor.TypeListItem
	if list.IsOrdered() {
		listType = editor.TypeOrderedList
	}
	if isTaskList(list) {
		listType = editor.TypeTaskList
		itemType = editor.TypeTaskItem
	}

	out := &editor.Node{Type: listType}
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		item := &editor.Node{Type: itemType}
		checked := false
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			block, err := convertBlock(c, src)
			if err != nil {
				return nil, err
			}
			if block != nil {
				item.Content = append(item.Content, block)
			}
		}
		if box := findCheckbox(li); box != nil {
			checked = box.IsChecked
		}
		if itemType == editor.TypeTaskItem {
			item.Attrs = map[string]interface{}{"checked": checked}
		}
		if len(item.Content) == 0 {
			item.Content = []*editor.Node{editor.Paragraph()}
		}
		out.Content = append(out.Content, item)
	}
	return out, nil
}

func isTaskList(list *ast.List) bool {
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		if findCheckbox(li) == nil {
			return false
		}
	}
	return list.FirstChild() != nil
}

func findCheckbox(li ast.Node) *east.TaskCheckBox {
	for c := li.FirstChild(); c != nil; c = c.NextSibling() {
		for i := c.FirstChild(); i != nil; i = i.NextSibling() {
			if box, ok := i.(*east.TaskCheckBox); ok {
				return box
			}
		}
	}
	return nil
}

func convertInlines(parent ast.Node, src []byte) []*editor.Node {
	return convertInlineRange(parent, src, nil)
}

func convertInlineRange(parent ast.Node, src []byte, marks []editor.Mark) []*editor.Node {
	var out []*editor.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			if value := string(node.Segment.Value(src)); value != "" {
				out = append(out, editor.Text(value, marks...))
			}
			if node.HardLineBreak() {
				out = append(out, &editor.Node{Type: editor.TypeHardBreak})
			} else if node.SoftLineBreak() {
				out = append(out, editor.Text(" ", marks...))
			}

		case *ast.String:
			if len(node.Value) > 0 {
				out = append(out, editor.Text(string(node.Value), marks...))
			}

		case *ast.Emphasis:
			mark := editor.Mark{Type: editor.MarkItalic}
			if node.Level >= 2 {
				mark = editor.Mark{Type: editor.MarkBold}
			}
			out = append(out, convertInlineRange(node, src, append(cloneMarkSlice(marks), mark))...)

		case *ast.CodeSpan:
			text := string(node.Text(src))
			if text != "" {
				out = append(out, editor.Text(text, append(cloneMarkSlice(marks), editor.Mark{Type: editor.MarkCode})...))
			}

		case *ast.Link:
			mark := editor.Mark{
				Type:  editor.MarkLink,
				Attrs: map[string]interface{}{"href": string(node.Destination)},
			}
			out = append(out, convertInlineRange(node, src, append(cloneMarkSlice(marks), mark))...)

		case *east.TaskCheckBox:
			// Consumed by the enclosing list item.

		default:
			out = append(out, convertInlineRange(c, src, marks)...)
		}
	}
	return out
}

func cloneMarkSlice(marks []editor.Mark) []editor.Mark {
	out := make([]editor.Mark, len(marks))
	copy(out, marks)
	return out
}

func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	out := buf.Bytes()
	if len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	return string(out)
}
