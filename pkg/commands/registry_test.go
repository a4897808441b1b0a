package commands

import (
	"testing"

	"github.com/opensphere/editorial/pkg/editor"
)

func TestPaletteOrder(t *testing.T) {
	want := []string{
		"paragraph", "heading1", "heading2", "heading3",
		"bulletList", "orderedList", "taskList",
		"blockquote", "codeBlock",
		"table", "image", "horizontalRule",
	}
	palette := Palette()
	if len(palette) != len(want) {
		t.Fatalf("palette has %d commands, want %d", len(palette), len(want))
	}
	for i, id := range want {
		if palette[i].ID != id {
			t.Errorf("palette[%d] = %q, want %q", i, palette[i].ID, id)
		}
	}
}

func TestEveryCommandIsComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, cmd := range All() {
		if cmd.ID == "" || cmd.Label == "" || cmd.Description == "" || cmd.Run == nil {
			t.Errorf("command %+v is missing required fields", cmd)
		}
		if seen[cmd.ID] {
			t.Errorf("duplicate command ID %q", cmd.ID)
		}
		seen[cmd.ID] = true
		if cmd.NeedsInput && cmd.InputPrompt == "" {
			t.Errorf("command %q prompts without a prompt label", cmd.ID)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"heading", []string{"heading1", "heading2", "heading3"}},
		{"LIST", []string{"bulletList", "orderedList", "taskList"}},
		{"checkbox", []string{"taskList"}},
		{"nosuchthing", []string{}},
	}
	for _, tt := range tests {
		got := Filter(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) returned %d commands, want %d", tt.query, len(got), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("Filter(%q)[%d] = %q, want %q", tt.query, i, got[i].ID, id)
			}
		}
	}
	if len(Filter("")) != len(Palette()) {
		t.Error("empty query did not return the full palette")
	}
}

func TestExecuteFocusesAndApplies(t *testing.T) {
	e := editor.NewWithContent(editor.Doc(editor.Paragraph(editor.Text("hello"))))

	if !Execute(e, "heading2", "") {
		t.Fatal("heading2 not found")
	}
	if !e.Focused() {
		t.Error("command did not focus the engine")
	}
	if !e.IsActive(editor.TypeHeading, map[string]interface{}{"level": 2}) {
		t.Error("block was not converted to a level-2 heading")
	}

	Execute(e, "paragraph", "")
	if !e.IsActive(editor.TypeParagraph) {
		t.Error("block was not converted back to a paragraph")
	}
}

func TestExecuteUnknownID(t *testing.T) {
	e := editor.New()
	if Execute(e, "teleport", "") {
		t.Error("Execute reported success for an unknown command")
	}
}

func TestPromptingCommandsIgnoreEmptyInput(t *testing.T) {
	for _, id := range []string{"image", "link", "highlight", "textColor"} {
		e := editor.NewWithContent(editor.Doc(editor.Paragraph(editor.Text("body"))))
		before, err := e.JSON()
		if err != nil {
			t.Fatal(err)
		}
		Execute(e, id, "")
		after, err := e.JSON()
		if err != nil {
			t.Fatal(err)
		}
		if string(before) != string(after) {
			t.Errorf("%s with empty input modified the document", id)
		}
	}
}

func TestImageInsertsFromURL(t *testing.T) {
	e := editor.NewWithContent(editor.Doc(editor.Paragraph(editor.Text("caption"))))
	Execute(e, "image", "https://example.com/pic.png")

	found := false
	e.Doc().Walk(func(n *editor.Node) {
		if n.Type == editor.TypeImage {
			found = true
		}
	})
	if !found {
		t.Error("no image node after the image command")
	}
}

func TestOneUpdatePerInvocation(t *testing.T) {
	e := editor.NewWithContent(editor.Doc(editor.Paragraph(editor.Text("abc"))))
	updates := 0
	defer e.OnUpdate(func() { updates++ })()

	e.SetSelection(0, 3)
	Execute(e, "bold", "")
	if updates != 1 {
		t.Errorf("bold produced %d updates, want 1", updates)
	}
}
