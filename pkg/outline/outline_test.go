package outline

import (
	"testing"

	"github.com/opensphere/editorial/pkg/editor"
)

func TestExtractOrdering(t *testing.T) {
	doc := editor.Doc(
		editor.Heading(1, editor.Text("A")),
		editor.Paragraph(editor.Text("some body text")),
		editor.Heading(2, editor.Text("B")),
		editor.Paragraph(editor.Text("more body text")),
		editor.Heading(1, editor.Text("C")),
	)

	headings := Extract(doc)
	want := []struct {
		text  string
		level int
	}{
		{"A", 1},
		{"B", 2},
		{"C", 1},
	}

	if len(headings) != len(want) {
		t.Fatalf("Extract returned %d entries, want %d", len(headings), len(want))
	}
	for i, w := range want {
		if headings[i].Text != w.text || headings[i].Level != w.level {
			t.Errorf("entry %d = {%q, %d}, want {%q, %d}",
				i, headings[i].Text, headings[i].Level, w.text, w.level)
		}
		if headings[i].ID == "" {
			t.Errorf("entry %d has empty ID", i)
		}
	}
}

func TestExtractStripsFormatting(t *testing.T) {
	doc := editor.Doc(
		editor.Heading(1,
			editor.Text("Bold ", editor.Mark{Type: editor.MarkBold}),
			editor.Text("and plain"),
		),
	)

	headings := Extract(doc)
	if len(headings) != 1 {
		t.Fatalf("Extract returned %d entries, want 1", len(headings))
	}
	if headings[0].Text != "Bold and plain" {
		t.Errorf("Text = %q, want %q", headings[0].Text, "Bold and plain")
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	headings := Extract(editor.Doc(editor.Paragraph()))
	if headings == nil {
		t.Fatal("Extract returned nil, want empty slice")
	}
	if len(headings) != 0 {
		t.Errorf("Extract returned %d entries, want 0", len(headings))
	}

	if got := Extract(nil); got == nil || len(got) != 0 {
		t.Errorf("Extract(nil) = %v, want empty slice", got)
	}
}

func TestExtractClampsLevel(t *testing.T) {
	// Hand-edited save records can carry levels outside 1..3.
	doc := editor.Doc(
		editor.Heading(0, editor.Text("H")),
		editor.Heading(-2, editor.Text("H")),
		editor.Heading(9, editor.Text("H")),
	)

	headings := Extract(doc)
	if len(headings) != 3 {
		t.Fatalf("Extract returned %d entries, want 3", len(headings))
	}
	want := []int{1, 1, 3}
	for i, h := range headings {
		if h.Level != want[i] {
			t.Errorf("entry %d level = %d, want %d", i, h.Level, want[i])
		}
	}
}

func TestExtractFreshSliceEachCall(t *testing.T) {
	doc := editor.Doc(editor.Heading(1, editor.Text("A")))

	first := Extract(doc)
	second := Extract(doc)
	if &first[0] == &second[0] {
		t.Error("Extract reused backing storage between calls")
	}

	first[0].Text = "mutated"
	if second[0].Text != "A" {
		t.Error("mutating one result affected another")
	}
}

func TestExtractIDsChangeWithPosition(t *testing.T) {
	one := Extract(editor.Doc(
		editor.Heading(1, editor.Text("A")),
	))
	two := Extract(editor.Doc(
		editor.Paragraph(editor.Text("inserted above")),
		editor.Heading(1, editor.Text("A")),
	))

	if one[0].ID == two[0].ID {
		t.Error("heading ID did not change when its position moved")
	}
}
