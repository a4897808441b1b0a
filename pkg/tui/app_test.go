package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/theme"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewApp(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	t.Cleanup(a.Close)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTypingEditsDocument(t *testing.T) {
	a := newTestApp(t)

	before := a.engine.Text()
	a.Update(keyMsg("x"))
	after := a.engine.Text()

	if after == before {
		t.Error("typing did not change the document")
	}
	if !strings.Contains(after, "x") {
		t.Errorf("typed rune missing from %q", after)
	}
}

func TestSearchPanelLifecycle(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("ctrl+f"))
	if !a.searchBar.Active() {
		t.Fatal("ctrl+f did not open the search panel")
	}

	// Typing in the panel builds a live session.
	a.Update(keyMsg("W"))
	if a.searchBar.termInput.Value() != "W" {
		t.Errorf("term input = %q", a.searchBar.termInput.Value())
	}
	if a.session.Term() != "W" {
		t.Errorf("session term = %q", a.session.Term())
	}

	// Closing clears the session's transient state.
	a.Update(keyMsg("esc"))
	if a.searchBar.Active() {
		t.Error("esc did not close the search panel")
	}
	if a.session.Term() != "" || a.session.MatchCount() != 0 {
		t.Error("closing the panel left session state behind")
	}
}

func TestOverlaysCaptureKeys(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("ctrl+e"))
	if !a.exporter.Active() {
		t.Fatal("ctrl+e did not open the export modal")
	}
	before := a.engine.Text()
	a.Update(keyMsg("j"))
	if a.engine.Text() != before {
		t.Error("modal key leaked into the document")
	}
	a.Update(keyMsg("esc"))
	if a.exporter.Active() {
		t.Error("esc did not close the export modal")
	}
}

func TestThemeToggle(t *testing.T) {
	a := newTestApp(t)

	start := a.themes.Current()
	a.Update(keyMsg("ctrl+d"))
	if a.themes.Current() == start {
		t.Error("ctrl+d did not toggle the theme")
	}
	a.Update(keyMsg("ctrl+d"))
	if a.themes.Current() != start {
		t.Error("second toggle did not restore the theme")
	}
}

func TestThemeDefaultsDark(t *testing.T) {
	a := newTestApp(t)
	if a.themes.Current() != theme.Dark {
		t.Errorf("default theme = %v, want dark", a.themes.Current())
	}
}

func TestPaginationTracksDocument(t *testing.T) {
	a := newTestApp(t)

	if a.pages.PageCount() != 1 {
		t.Fatalf("fresh document spans %d pages", a.pages.PageCount())
	}

	var blocks []*editor.Node
	for i := 0; i < 200; i++ {
		blocks = append(blocks, editor.Paragraph(editor.Text("a paragraph of filler content")))
	}
	a.engine.SetContent(editor.Doc(blocks...))
	a.refresh()

	if a.pages.PageCount() < 2 {
		t.Errorf("long document spans %d pages, want several", a.pages.PageCount())
	}
	if a.nav.CurrentPage() < 1 || a.nav.CurrentPage() > a.pages.PageCount() {
		t.Error("current page out of range after refresh")
	}
}

func TestPageClampOnShrink(t *testing.T) {
	a := newTestApp(t)

	var blocks []*editor.Node
	for i := 0; i < 200; i++ {
		blocks = append(blocks, editor.Paragraph(editor.Text("filler")))
	}
	a.engine.SetContent(editor.Doc(blocks...))
	a.refresh()

	last := a.pages.PageCount()
	a.nav.GoTo(last, last)

	a.engine.SetContent(editor.Doc(editor.Paragraph(editor.Text("tiny"))))
	a.refresh()

	if a.nav.CurrentPage() != 1 {
		t.Errorf("current page = %d after shrink to one page", a.nav.CurrentPage())
	}
}

func TestOutlineEmptyState(t *testing.T) {
	a := newTestApp(t)

	a.engine.SetContent(editor.Doc(editor.Paragraph(editor.Text("no headings here"))))
	a.refresh()
	a.sidebar.ToggleOutline()
	a.layout()

	if !strings.Contains(a.sidebar.View(), "No headings found") {
		t.Error("outline empty state missing")
	}
}

func TestSlashOpensPaletteOnlyAtBlockStart(t *testing.T) {
	a := newTestApp(t)
	a.engine.SetContent(editor.Doc(editor.Paragraph(editor.Text("body"))))
	a.refresh()

	// Mid-block: the slash is literal text.
	a.engine.SetSelection(2, 2)
	a.Update(keyMsg("/"))
	if a.palette.Active() {
		t.Error("palette opened mid-block")
	}
	if !strings.Contains(a.engine.Text(), "/") {
		t.Error("slash was not inserted as text")
	}

	// Block start: the slash opens the palette.
	a.engine.SetSelection(0, 0)
	a.Update(keyMsg("/"))
	if !a.palette.Active() {
		t.Error("palette did not open at block start")
	}
}
