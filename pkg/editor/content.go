package editor

// DefaultDocument is the welcome content shown on first launch, before any
// saved state exists.
func DefaultDocument() *Node {
	return Doc(
		Heading(1, Text("Welcome to OpenSphere")),
		Paragraph(Text("A modern document editor with a PDF-style paginated canvas.")),
		Heading(2, Text("Features")),
		bulletList(
			Paragraph(Text("Rich text formatting with "), Text("colors", Mark{Type: MarkBold})),
			Paragraph(Text("Highlight text with multiple colors")),
			Paragraph(Text("Tables and task lists")),
			Paragraph(Text("Auto-save to local storage")),
		),
		Heading(2, Text("Getting Started")),
		Paragraph(Text("Use the toolbar above to format your text. Try the following:")),
		taskList(
			Paragraph(Text("Select text and use the color picker")),
			Paragraph(Text("Insert an image from a URL")),
			Paragraph(Text("Try different highlight colors")),
		),
	)
}

func bulletList(items ...*Node) *Node {
	list := &Node{Type: TypeBulletList}
	for _, item := range items {
		list.Content = append(list.Content, &Node{Type: TypeListItem, Content: []*Node{item}})
	}
	return list
}

func taskList(items ...*Node) *Node {
	list := &Node{Type: TypeTaskList}
	for _, item := range items {
		list.Content = append(list.Content, &Node{
			Type:    TypeTaskItem,
			Attrs:   map[string]interface{}{"checked": false},
			Content: []*Node{item},
		})
	}
	return list
}
