package editor

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func twoParagraphDoc() *Node {
	return Doc(
		Paragraph(Text("hello world")),
		Paragraph(Text("second block")),
	)
}

func TestTextFlattening(t *testing.T) {
	e := NewWithContent(twoParagraphDoc())
	want := "hello world\n\nsecond block"
	if got := e.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextNestedBlocks(t *testing.T) {
	e := NewWithContent(Doc(
		Heading(1, Text("Title")),
		bulletList(
			Paragraph(Text("one")),
			Paragraph(Text("two")),
		),
	))
	want := "Title\n\none\ntwo"
	if got := e.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestToggleBoldOnSelection(t *testing.T) {
	e := NewWithContent(twoParagraphDoc())
	e.SetSelection(0, 5) // "hello"

	e.Chain().Focus().ToggleBold().Run()
	if !e.IsActive(MarkBold) {
		t.Fatal("bold not active after toggle")
	}
	if text := e.Text(); text != "hello world\n\nsecond block" {
		t.Errorf("text changed by mark toggle: %q", text)
	}

	// Toggling again removes the mark.
	e.Chain().Focus().ToggleBold().Run()
	if e.IsActive(MarkBold) {
		t.Error("bold still active after second toggle")
	}
}

func TestToggleBoldCollapsedSelectionNoop(t *testing.T) {
	e := NewWithContent(twoParagraphDoc())
	e.SetSelection(3, 3)
	e.Chain().Focus().ToggleBold().Run()
	if strings.Contains(e.HTML(), "<strong>") {
		t.Error("collapsed-selection toggle produced a bold mark")
	}
}

func TestToggleHeading(t *testing.T) {
	e := NewWithContent(twoParagraphDoc())
	e.SetSelection(2, 2)

	e.Chain().Focus().ToggleHeading(2).Run()
	if !e.IsActive(TypeHeading, map[string]interface{}{"level": 2}) {
		t.Fatal("heading level 2 not active")
	}

	// Same level toggles back to paragraph.
	e.Chain().Focus().ToggleHeading(2).Run()
	if !e.IsActive(TypeParagraph) {
		t.Error("paragraph not restored after second toggle")
	}
}

func TestInsertContentReplacesSelection(t *testing.T) {
	e := NewWithContent(Doc(Paragraph(Text("cat sat"))))
	e.SetSelection(0, 3)
	e.Chain().Focus().InsertContent("dog").Run()

	if got := e.Text(); got != "dog sat" {
		t.Errorf("Text() = %q, want %q", got, "dog sat")
	}
	from, to := e.Selection()
	if from != 3 || to != 3 {
		t.Errorf("selection = (%d, %d), want collapsed at 3", from, to)
	}
}

func TestUndoRedo(t *testing.T) {
	e := NewWithContent(Doc(Paragraph(Text("one"))))
	e.SetSelection(3, 3)
	e.Chain().Focus().InsertContent(" two").Run()

	if got := e.Text(); got != "one two" {
		t.Fatalf("Text() = %q, want %q", got, "one two")
	}
	if !e.CanUndo() {
		t.Fatal("CanUndo() = false after mutation")
	}

	e.Chain().Undo().Run()
	if got := e.Text(); got != "one" {
		t.Errorf("after undo: Text() = %q, want %q", got, "one")
	}
	if !e.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	e.Chain().Redo().Run()
	if got := e.Text(); got != "one two" {
		t.Errorf("after redo: Text() = %q, want %q", got, "one two")
	}
}

func TestUpdateNotificationOncePerChain(t *testing.T) {
	e := NewWithContent(twoParagraphDoc())
	count := 0
	unsubscribe := e.OnUpdate(func() { count++ })

	e.SetSelection(0, 5)
	e.Chain().Focus().ToggleBold().ToggleItalic().Run()
	if count != 1 {
		t.Errorf("update fired %d times for one chain, want 1", count)
	}

	unsubscribe()
	e.Chain().Focus().ToggleBold().Run()
	if count != 1 {
		t.Errorf("update fired after unsubscribe: count = %d", count)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	e := NewWithContent(Doc(
		Heading(1, Text("Title")),
		Paragraph(Text("plain "), Text("bold", Mark{Type: MarkBold})),
	))

	data, err := e.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	restored := NewWithContent(nil)
	if err := restored.SetContentJSON(data); err != nil {
		t.Fatalf("SetContentJSON failed: %v", err)
	}

	if got, want := restored.Text(), e.Text(); got != want {
		t.Errorf("restored text = %q, want %q", got, want)
	}
	if got, want := restored.HTML(), e.HTML(); got != want {
		t.Errorf("restored HTML = %q, want %q", got, want)
	}
}

func TestSetContentJSONRejectsNonDoc(t *testing.T) {
	e := New()
	if err := e.SetContentJSON([]byte(`{"type":"paragraph"}`)); err == nil {
		t.Error("expected error for non-doc root")
	}
	if err := e.SetContentJSON([]byte(`{broken`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestHTMLRendering(t *testing.T) {
	tests := []struct {
		name string
		doc  *Node
		want string
	}{
		{
			name: "heading and paragraph",
			doc:  Doc(Heading(2, Text("Hi")), Paragraph(Text("body"))),
			want: "<h2>Hi</h2><p>body</p>",
		},
		{
			name: "marks nest",
			doc:  Doc(Paragraph(Text("x", Mark{Type: MarkBold}, Mark{Type: MarkItalic}))),
			want: "<p><strong><em>x</em></strong></p>",
		},
		{
			name: "bullet list",
			doc:  Doc(bulletList(Paragraph(Text("a")), Paragraph(Text("b")))),
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "task list",
			doc:  Doc(taskList(Paragraph(Text("todo")))),
			want: `<ul data-type="taskList"><li data-type="taskItem" data-checked="false">todo</li></ul>`,
		},
		{
			name: "escapes text",
			doc:  Doc(Paragraph(Text("a < b & c"))),
			want: "<p>a &lt; b &amp; c</p>",
		},
		{
			name: "horizontal rule",
			doc:  Doc(Paragraph(Text("a")), &Node{Type: TypeHorizontalRule}),
			want: "<p>a</p><hr>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewWithContent(tt.doc)
			if got := e.HTML(); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHTML(t *testing.T) {
	src := `<h1>Title</h1><p>plain <strong>bold</strong> tail</p><ul><li>one</li><li>two</li></ul>`
	doc, err := ParseHTML(src)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	e := NewWithContent(doc)
	if got := e.Text(); got != "Title\n\nplain bold tail\n\none\ntwo" {
		t.Errorf("parsed text = %q", got)
	}

	// Structural round trip through the serializer.
	if got := e.HTML(); got != src {
		t.Errorf("round trip = %q, want %q", got, src)
	}
}

func TestParseHTMLTaskListAndTable(t *testing.T) {
	src := `<ul data-type="taskList"><li data-type="taskItem" data-checked="true">done</li></ul>` +
		`<table><tbody><tr><th>H</th><td>V</td></tr></tbody></table>`
	doc, err := ParseHTML(src)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	if len(doc.Content) != 2 {
		t.Fatalf("got %d blocks, want 2", len(doc.Content))
	}
	list := doc.Content[0]
	if list.Type != TypeTaskList || len(list.Content) != 1 {
		t.Fatalf("first block = %+v, want task list with one item", list)
	}
	if !list.Content[0].BoolAttr("checked") {
		t.Error("task item lost its checked state")
	}
	if doc.Content[1].Type != TypeTable {
		t.Errorf("second block type = %q, want table", doc.Content[1].Type)
	}
}

func TestInsertTable(t *testing.T) {
	e := NewWithContent(Doc(Paragraph(Text("before"))))
	e.SetSelection(0, 0)
	e.Chain().Focus().InsertTable(3, 3).Run()

	doc := e.Doc()
	if len(doc.Content) != 2 || doc.Content[1].Type != TypeTable {
		t.Fatalf("table not inserted after current block: %+v", doc.Content)
	}
	table := doc.Content[1]
	if len(table.Content) != 3 {
		t.Fatalf("table has %d rows, want 3", len(table.Content))
	}
	for i, cell := range table.Content[0].Content {
		if cell.Type != TypeTableHeader {
			t.Errorf("first-row cell %d type = %q, want tableHeader", i, cell.Type)
		}
	}
	if table.Content[1].Content[0].Type != TypeTableCell {
		t.Error("second-row cell should be a plain cell")
	}
}

func TestLinkCommands(t *testing.T) {
	e := NewWithContent(Doc(Paragraph(Text("click here"))))
	e.SetSelection(6, 10)

	// Empty href is a no-op.
	e.Chain().Focus().SetLink("").Run()
	if e.IsActive(MarkLink) {
		t.Fatal("empty href created a link")
	}

	e.Chain().Focus().SetLink("https://example.com").Run()
	if !e.IsActive(MarkLink) {
		t.Fatal("link not active after SetLink")
	}
	if got := e.LinkHref(); got != "https://example.com" {
		t.Errorf("LinkHref() = %q", got)
	}

	e.Chain().Focus().UnsetLink().Run()
	if e.IsActive(MarkLink) {
		t.Error("link still active after UnsetLink")
	}
}

func TestToggleBulletListWrapsAndUnwraps(t *testing.T) {
	e := NewWithContent(Doc(Paragraph(Text("item"))))
	e.SetSelection(1, 1)

	e.Chain().Focus().ToggleBulletList().Run()
	if !e.IsActive(TypeBulletList) {
		t.Fatal("bullet list not active after wrap")
	}

	e.Chain().Focus().ToggleBulletList().Run()
	if e.IsActive(TypeBulletList) {
		t.Error("bullet list still active after unwrap")
	}
	if got := e.Text(); got != "item" {
		t.Errorf("text after unwrap = %q, want %q", got, "item")
	}
}

func TestSelectionClamping(t *testing.T) {
	e := NewWithContent(Doc(Paragraph(Text("abc"))))
	e.SetSelection(-5, 100)
	from, to := e.Selection()
	if from != 0 || to != 3 {
		t.Errorf("selection = (%d, %d), want (0, 3)", from, to)
	}

	e.SetSelection(2, 1)
	from, to = e.Selection()
	if from != 1 || to != 2 {
		t.Errorf("inverted selection = (%d, %d), want normalized (1, 2)", from, to)
	}
}

func TestDeleteBackwardRemovesWholeRune(t *testing.T) {
	e := NewWithContent(Doc(Paragraph()))
	e.Chain().Focus().InsertContent("é").Run()

	e.Chain().Focus().DeleteBackward().Run()
	if got := e.Text(); got != "" {
		t.Errorf("text after deleting é = %q, want empty", got)
	}

	e.Chain().Focus().InsertContent("né").Run()
	e.Chain().Focus().DeleteBackward().Run()
	if got := e.Text(); got != "n" {
		t.Errorf("text = %q, want %q", got, "n")
	}
	if !utf8.ValidString(e.Text()) {
		t.Error("document text is not valid UTF-8")
	}
	if from, to := e.Selection(); from != 1 || to != 1 {
		t.Errorf("selection = (%d, %d), want (1, 1)", from, to)
	}
}

func TestWordCount(t *testing.T) {
	e := NewWithContent(Doc(
		Heading(1, Text("Two words")),
		Paragraph(Text("and three more")),
	))
	if got := e.WordCount(); got != 5 {
		t.Errorf("WordCount() = %d, want 5", got)
	}
}
