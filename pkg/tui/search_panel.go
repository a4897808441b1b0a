package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/search"
)

// searchPanelHeight is the rows the docked panel occupies: four content
// lines plus the overlay border and padding.
const searchPanelHeight = 8

// searchField identifies which input owns focus inside the panel.
type searchField int

const (
	fieldTerm searchField = iota
	fieldReplace
)

// SearchPanel drives a search session: term and replacement inputs, a
// case toggle, match navigation, and replace one/all.
type SearchPanel struct {
	styles  *Styles
	session *search.Session

	termInput    textinput.Model
	replaceInput textinput.Model
	focus        searchField
	caseSense    bool
	active       bool
}

func NewSearchPanel(session *search.Session, styles *Styles) *SearchPanel {
	term := textinput.New()
	term.Placeholder = "Find..."
	term.CharLimit = 100
	term.Width = 30

	repl := textinput.New()
	repl.Placeholder = "Replace with..."
	repl.CharLimit = 100
	repl.Width = 30

	return &SearchPanel{
		styles:       styles,
		session:      session,
		termInput:    term,
		replaceInput: repl,
	}
}

func (s *SearchPanel) Open() {
	s.active = true
	s.focus = fieldTerm
	s.termInput.Focus()
	s.replaceInput.Blur()
}

// Close hides the panel and clears the session's transient state.
func (s *SearchPanel) Close() {
	s.active = false
	s.termInput.SetValue("")
	s.replaceInput.SetValue("")
	s.termInput.Blur()
	s.replaceInput.Blur()
	s.caseSense = false
	s.session.Clear()
}

func (s *SearchPanel) Active() bool {
	return s.active
}

// Update handles the panel's keys. It reports whether the document may
// have changed (a replacement ran).
func (s *SearchPanel) Update(msg tea.KeyMsg) (changed bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.Close()
		return false, nil

	case "tab":
		if s.focus == fieldTerm {
			s.focus = fieldReplace
			s.termInput.Blur()
			s.replaceInput.Focus()
		} else {
			s.focus = fieldTerm
			s.replaceInput.Blur()
			s.termInput.Focus()
		}
		return false, nil

	case "enter", "down":
		s.session.Next()
		return false, nil

	case "shift+tab", "up":
		s.session.Prev()
		return false, nil

	case "ctrl+t":
		s.caseSense = !s.caseSense
		s.session.Search(s.termInput.Value(), s.caseSense)
		return false, nil

	case "ctrl+r":
		return s.session.ReplaceOne(s.replaceInput.Value()), nil

	case "ctrl+shift+r", "ctrl+a":
		if s.session.MatchCount() > 0 {
			s.session.ReplaceAll(s.replaceInput.Value())
			return true, nil
		}
		return false, nil
	}

	switch s.focus {
	case fieldTerm:
		s.termInput, cmd = s.termInput.Update(msg)
		s.session.Search(s.termInput.Value(), s.caseSense)
	case fieldReplace:
		s.replaceInput, cmd = s.replaceInput.Update(msg)
	}
	return false, cmd
}

func (s *SearchPanel) View() string {
	if !s.active {
		return ""
	}

	indicator := "0 of 0"
	if n := s.session.MatchCount(); n > 0 {
		indicator = fmt.Sprintf("%d of %d", s.session.CurrentMatch(), n)
	}
	caseLabel := "Aa off"
	if s.caseSense {
		caseLabel = "Aa on"
	}

	var b strings.Builder
	b.WriteString(s.styles.OverlayTitle.Render("Find & Replace"))
	b.WriteString("  ")
	b.WriteString(s.styles.ListDim.Render(indicator + " · " + caseLabel))
	b.WriteString("\n")
	b.WriteString(s.termInput.View())
	b.WriteString("\n")
	b.WriteString(s.replaceInput.View())
	b.WriteString("\n")
	b.WriteString(s.styles.ListDim.Render("enter/↓ next · ↑ prev · ctrl+t case · ctrl+r replace · ctrl+a all · esc close"))
	return s.styles.Overlay.Render(b.String())
}
