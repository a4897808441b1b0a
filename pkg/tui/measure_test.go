package tui

import (
	"strings"
	"testing"

	"github.com/opensphere/editorial/pkg/editor"
)

func TestWrappedLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  int
	}{
		{"empty text still occupies a line", "", 40, 1},
		{"short line", "hello", 40, 1},
		{"pair of words fits exactly", "aaa bbb ccc ddd", 7, 2},
		{"each word forced onto its own line", "aaa bbb ccc ddd", 5, 4},
		{"single long word hard-breaks", strings.Repeat("x", 25), 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrappedLines(tt.text, tt.width); got != tt.want {
				t.Errorf("wrappedLines(%q, %d) = %d, want %d", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestMeasureLines(t *testing.T) {
	doc := editor.Doc(
		editor.Heading(1, editor.Text("Title")),
		editor.Paragraph(editor.Text("one two three four five six")),
	)

	// Wide enough for single lines: heading + gap + paragraph.
	if got := measureLines(doc, 80); got != 3 {
		t.Errorf("measureLines wide = %d, want 3", got)
	}

	// Narrow width wraps the paragraph; the count must grow.
	narrow := measureLines(doc, 10)
	if narrow <= 3 {
		t.Errorf("measureLines narrow = %d, want > 3", narrow)
	}
}

func TestMeasureCodeBlockCountsSourceLines(t *testing.T) {
	doc := editor.Doc(&editor.Node{
		Type:    editor.TypeCodeBlock,
		Content: []*editor.Node{editor.Text("line one\nline two\nline three")},
	})
	if got := measureLines(doc, 80); got != 3 {
		t.Errorf("measureLines = %d, want 3", got)
	}
}

func TestMeasureHeightPx(t *testing.T) {
	doc := editor.Doc(editor.Paragraph(editor.Text("hello")))
	if got := measureHeightPx(doc, 80, 24); got != 24 {
		t.Errorf("measureHeightPx = %d, want 24", got)
	}
	if got := measureHeightPx(nil, 80, 24); got != 0 {
		t.Errorf("measureHeightPx(nil) = %d, want 0", got)
	}
}

func TestMeasureGrowsWithContent(t *testing.T) {
	small := editor.Doc(editor.Paragraph(editor.Text("one")))
	var blocks []*editor.Node
	for i := 0; i < 50; i++ {
		blocks = append(blocks, editor.Paragraph(editor.Text("filler paragraph")))
	}
	large := editor.Doc(blocks...)

	if measureHeightPx(large, 80, 24) <= measureHeightPx(small, 80, 24) {
		t.Error("larger document did not measure taller")
	}
}
