package search

import (
	"strings"
	"testing"

	"github.com/opensphere/editorial/pkg/editor"
)

func engineWithText(text string) *editor.Engine {
	return editor.NewWithContent(editor.Doc(editor.Paragraph(editor.Text(text))))
}

func TestSearchOffsets(t *testing.T) {
	s := NewSession(engineWithText("cat sat cat"))

	count := s.Search("cat", false)
	if count != 2 {
		t.Fatalf("Search returned %d matches, want 2", count)
	}
	want := []int{0, 8}
	for i, off := range s.Matches() {
		if off != want[i] {
			t.Errorf("match %d at offset %d, want %d", i, off, want[i])
		}
	}
	if s.CurrentMatch() != 1 {
		t.Errorf("CurrentMatch = %d, want 1", s.CurrentMatch())
	}
}

func TestSearchCyclicNavigation(t *testing.T) {
	s := NewSession(engineWithText("cat sat cat"))
	s.Search("cat", false)

	s.Next()
	if s.CurrentMatch() != 2 {
		t.Errorf("after Next: CurrentMatch = %d, want 2", s.CurrentMatch())
	}
	s.Next()
	if s.CurrentMatch() != 1 {
		t.Errorf("Next past last: CurrentMatch = %d, want wrap to 1", s.CurrentMatch())
	}
	s.Prev()
	if s.CurrentMatch() != 2 {
		t.Errorf("Prev from first: CurrentMatch = %d, want wrap to 2", s.CurrentMatch())
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	s := NewSession(engineWithText("cat Cat cat"))

	count := s.Search("Cat", true)
	if count != 1 {
		t.Fatalf("case-sensitive Search returned %d matches, want 1", count)
	}
	if off := s.Matches()[0]; off != 4 {
		t.Errorf("match offset = %d, want 4", off)
	}
}

func TestSearchOverlappingStarts(t *testing.T) {
	// Scanning resumes from previous start + 1.
	s := NewSession(engineWithText("aaaa"))
	if count := s.Search("aa", false); count != 3 {
		t.Errorf("Search(\"aa\") over \"aaaa\" = %d matches, want 3", count)
	}
}

func TestSearchEmptyTermClears(t *testing.T) {
	s := NewSession(engineWithText("cat"))
	s.Search("cat", false)
	if s.MatchCount() != 1 {
		t.Fatal("setup failed")
	}

	if count := s.Search("", false); count != 0 {
		t.Errorf("empty term returned %d matches, want 0", count)
	}
	if s.CurrentMatch() != 0 {
		t.Errorf("CurrentMatch = %d, want 0", s.CurrentMatch())
	}
}

func TestNavigationNoopWithoutMatches(t *testing.T) {
	s := NewSession(engineWithText("dog"))
	s.Search("cat", false)

	s.Next()
	s.Prev()
	if s.CurrentMatch() != 0 {
		t.Errorf("CurrentMatch = %d after Next/Prev on empty matches, want 0", s.CurrentMatch())
	}
	if s.CurrentOffset() != -1 {
		t.Errorf("CurrentOffset = %d, want -1", s.CurrentOffset())
	}
}

func TestReplaceOneRequiresMatchingSelection(t *testing.T) {
	e := engineWithText("cat sat cat")
	s := NewSession(e)
	s.Search("cat", false)

	// Selection does not equal the term: nothing happens.
	e.SetSelection(4, 7) // "sat"
	if s.ReplaceOne("dog") {
		t.Error("ReplaceOne replaced a non-matching selection")
	}
	if got := e.Text(); got != "cat sat cat" {
		t.Errorf("text changed: %q", got)
	}

	// Selection equals the term case-insensitively: replaced.
	e.SetSelection(0, 3) // "cat"
	if !s.ReplaceOne("dog") {
		t.Error("ReplaceOne did not replace a matching selection")
	}
	if got := e.Text(); got != "dog sat cat" {
		t.Errorf("text = %q, want %q", got, "dog sat cat")
	}

	// Matches were recomputed against the new text.
	if s.MatchCount() != 1 {
		t.Errorf("MatchCount after replace = %d, want 1", s.MatchCount())
	}
}

func TestReplaceAllIsLossy(t *testing.T) {
	e := editor.NewWithContent(editor.Doc(
		editor.Heading(1, editor.Text("cat chapter")),
		editor.Paragraph(editor.Text("the cat sat")),
	))
	s := NewSession(e)
	s.Search("cat", false)

	s.ReplaceAll("dog")

	doc := e.Doc()
	if len(doc.Content) != 1 || doc.Content[0].Type != editor.TypeParagraph {
		t.Fatalf("document not collapsed to a single paragraph: %+v", doc.Content)
	}
	if html := e.HTML(); strings.Contains(html, "<h1>") {
		t.Errorf("heading markup survived ReplaceAll: %q", html)
	}
	if got := e.Text(); !strings.Contains(got, "dog chapter") || !strings.Contains(got, "the dog sat") {
		t.Errorf("substitution incomplete: %q", got)
	}
	if s.MatchCount() != 0 || s.CurrentMatch() != 0 {
		t.Error("session not reset after ReplaceAll")
	}
}

func TestReplaceAllCaseSensitivity(t *testing.T) {
	tests := []struct {
		name          string
		caseSensitive bool
		want          string
	}{
		{"insensitive replaces all", false, "dog dog dog"},
		{"sensitive replaces exact only", true, "dog Cat cat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engineWithText("CAT Cat cat")
			s := NewSession(e)
			s.Search("CAT", tt.caseSensitive)
			s.ReplaceAll("dog")
			if got := e.Text(); got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchOffsetsAfterMultibyteRune(t *testing.T) {
	// U+0130 lowercases to a two-rune sequence, so offsets must index
	// the original text rather than a case-folded copy.
	s := NewSession(engineWithText("İstanbul cat"))
	if count := s.Search("cat", false); count != 1 {
		t.Fatalf("Search returned %d matches, want 1", count)
	}
	if off := s.Matches()[0]; off != 10 {
		t.Errorf("match offset = %d, want 10", off)
	}
}

func TestSearchSimpleFoldMatch(t *testing.T) {
	// U+017F folds to both s and S.
	s := NewSession(engineWithText("ſoft Soft"))
	if count := s.Search("soft", false); count != 2 {
		t.Fatalf("Search returned %d matches, want 2", count)
	}
	want := []int{0, 6}
	for i, off := range s.Matches() {
		if off != want[i] {
			t.Errorf("match %d at offset %d, want %d", i, off, want[i])
		}
	}
}

func TestReplaceAllConsumesMatchedBytes(t *testing.T) {
	// The first match spans five bytes while the term is four.
	e := engineWithText("ſoft soft")
	s := NewSession(e)
	s.Search("soft", false)
	s.ReplaceAll("firm")
	if got := e.Text(); got != "firm firm" {
		t.Errorf("Text = %q, want %q", got, "firm firm")
	}
}

func TestClear(t *testing.T) {
	s := NewSession(engineWithText("cat"))
	s.Search("cat", true)
	s.Clear()

	if s.Term() != "" || s.CaseSensitive() || s.MatchCount() != 0 || s.CurrentMatch() != 0 {
		t.Error("Clear left transient state behind")
	}
}
