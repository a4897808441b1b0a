// Package search implements plain-text find and replace over the
// document's flattened text. Matching is literal substring matching, not
// regex; offsets index the flattened text at search time and go stale on
// the next document change.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/opensphere/editorial/pkg/editor"
)

// Session is one search interaction: a term, its matches, and the cursor
// over them.
type Session struct {
	engine        *editor.Engine
	term          string
	caseSensitive bool
	matches       []int
	current       int // 1-based; 0 means no matches
}

// NewSession creates a search session over the engine's document.
func NewSession(engine *editor.Engine) *Session {
	return &Session{engine: engine}
}

// Search finds all occurrences of term and returns the match count. An
// empty term clears the session. The first match becomes current.
func (s *Session) Search(term string, caseSensitive bool) int {
	s.term = term
	s.caseSensitive = caseSensitive
	s.matches = s.matches[:0]
	s.current = 0

	if s.engine == nil || term == "" {
		return 0
	}

	s.matches = findAll(s.engine.Text(), term, caseSensitive)
	if len(s.matches) > 0 {
		s.current = 1
	}
	return len(s.matches)
}

// findAll scans for occurrences, resuming just past the previous match's
// start so overlapping occurrences are all reported. Offsets index the
// original text; case folding happens per rune during the scan, never by
// rewriting the haystack, so multi-byte case pairs cannot skew them.
func findAll(text, term string, caseSensitive bool) []int {
	if caseSensitive {
		var matches []int
		at := 0
		for {
			i := strings.Index(text[at:], term)
			if i < 0 {
				return matches
			}
			matches = append(matches, at+i)
			at = at + i + 1
		}
	}

	var matches []int
	for at := 0; at < len(text); {
		if _, ok := matchFold(text[at:], term); ok {
			matches = append(matches, at)
		}
		_, size := utf8.DecodeRuneInString(text[at:])
		at += size
	}
	return matches
}

// matchFold reports whether text starts with a case-insensitive occurrence
// of term, and the occurrence's byte length in text.
func matchFold(text, term string) (int, bool) {
	n := 0
	for _, tr := range term {
		r, size := utf8.DecodeRuneInString(text[n:])
		if size == 0 || !foldEq(r, tr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// foldEq reports whether two runes are equal under simple Unicode case
// folding, matching the strings.EqualFold check ReplaceOne applies.
func foldEq(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// Term returns the current search term.
func (s *Session) Term() string {
	return s.term
}

// CaseSensitive reports the current case-sensitivity flag.
func (s *Session) CaseSensitive() bool {
	return s.caseSensitive
}

// Matches returns the match offsets in ascending order.
func (s *Session) Matches() []int {
	return s.matches
}

// MatchCount returns the number of matches.
func (s *Session) MatchCount() int {
	return len(s.matches)
}

// CurrentMatch returns the 1-based index of the current match, or 0 when
// there are no matches.
func (s *Session) CurrentMatch() int {
	return s.current
}

// Next advances to the next match, wrapping past the last back to the
// first. No-op without matches.
func (s *Session) Next() {
	if len(s.matches) == 0 {
		return
	}
	s.current++
	if s.current > len(s.matches) {
		s.current = 1
	}
}

// Prev moves to the previous match, wrapping before the first to the
// last. No-op without matches.
func (s *Session) Prev() {
	if len(s.matches) == 0 {
		return
	}
	s.current--
	if s.current < 1 {
		s.current = len(s.matches)
	}
}

// CurrentOffset returns the flattened-text offset of the current match,
// or -1 when there is none.
func (s *Session) CurrentOffset() int {
	if s.current == 0 {
		return -1
	}
	return s.matches[s.current-1]
}

// ReplaceOne replaces the editor's live selection with replacement, but
// only when the selected text case-insensitively equals the search term.
// It does not move the selection to a match itself: whatever the user has
// selected is what is checked. Returns whether a replacement happened;
// matches are recomputed either way.
func (s *Session) ReplaceOne(replacement string) bool {
	if s.engine == nil || s.term == "" || len(s.matches) == 0 {
		return false
	}

	replaced := false
	if strings.EqualFold(s.engine.SelectedText(), s.term) {
		s.engine.Chain().Focus().InsertContent(replacement).Run()
		replaced = true
	}

	s.Search(s.term, s.caseSensitive)
	return replaced
}

// ReplaceAll substitutes every occurrence and rebuilds the document as a
// single plain paragraph of the substituted flattened text. All rich
// formatting, tables, lists, and headings are discarded; this mirrors the
// observed behavior of the reference editor and is documented as lossy.
func (s *Session) ReplaceAll(replacement string) {
	if s.engine == nil || s.term == "" {
		return
	}

	text := replaceAll(s.engine.Text(), s.term, replacement, s.caseSensitive)
	s.engine.SetContent(editor.Doc(editor.Paragraph(editor.Text(text))))

	s.matches = nil
	s.current = 0
}

// replaceAll substitutes every literal occurrence of term, honoring the
// case flag. The insensitive path folds per rune so the matched span's
// byte length is taken from the text, not from the term.
func replaceAll(text, term, replacement string, caseSensitive bool) string {
	if caseSensitive {
		return strings.ReplaceAll(text, term, replacement)
	}

	var b strings.Builder
	for at := 0; at < len(text); {
		if n, ok := matchFold(text[at:], term); ok {
			b.WriteString(replacement)
			at += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[at:])
		b.WriteString(text[at : at+size])
		at += size
	}
	return b.String()
}

// Clear resets the session's transient state (term, matches, cursor).
func (s *Session) Clear() {
	s.term = ""
	s.caseSensitive = false
	s.matches = nil
	s.current = 0
}
