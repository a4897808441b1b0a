package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opensphere/editorial/pkg/editor"
)

// toolbarEntry pairs a command with the active-state query that lights
// its button up.
type toolbarEntry struct {
	commandID string
	label     string
	isActive  func(e *editor.Engine) bool
}

var toolbarEntries = []toolbarEntry{
	{"bold", "B", func(e *editor.Engine) bool { return e.IsActive(editor.MarkBold) }},
	{"italic", "I", func(e *editor.Engine) bool { return e.IsActive(editor.MarkItalic) }},
	{"underline", "U", func(e *editor.Engine) bool { return e.IsActive(editor.MarkUnderline) }},
	{"strike", "S", func(e *editor.Engine) bool { return e.IsActive(editor.MarkStrike) }},
	{"code", "<>", func(e *editor.Engine) bool { return e.IsActive(editor.MarkCode) }},
	{"heading1", "H1", func(e *editor.Engine) bool {
		return e.IsActive(editor.TypeHeading, map[string]interface{}{"level": 1})
	}},
	{"heading2", "H2", func(e *editor.Engine) bool {
		return e.IsActive(editor.TypeHeading, map[string]interface{}{"level": 2})
	}},
	{"heading3", "H3", func(e *editor.Engine) bool {
		return e.IsActive(editor.TypeHeading, map[string]interface{}{"level": 3})
	}},
	{"bulletList", "•≡", func(e *editor.Engine) bool { return e.IsActive(editor.TypeBulletList) }},
	{"orderedList", "1≡", func(e *editor.Engine) bool { return e.IsActive(editor.TypeOrderedList) }},
	{"blockquote", "❝", func(e *editor.Engine) bool { return e.IsActive(editor.TypeBlockquote) }},
	{"link", "⛓", nil},
	{"undo", "↶", nil},
	{"redo", "↷", nil},
}

// Toolbar is the formatting strip at the top of the editor.
type Toolbar struct {
	engine *editor.Engine
	styles *Styles
	width  int
}

func NewToolbar(engine *editor.Engine, styles *Styles) *Toolbar {
	return &Toolbar{engine: engine, styles: styles}
}

func (t *Toolbar) SetSize(width int) {
	t.width = width
}

func (t *Toolbar) View() string {
	var buttons []string
	for _, entry := range toolbarEntries {
		style := t.styles.ToolbarButton
		if entry.isActive != nil && entry.isActive(t.engine) {
			style = t.styles.ToolbarActive
		}
		buttons = append(buttons, style.Render(entry.label))
	}
	row := strings.Join(buttons, "")
	return t.styles.Toolbar.Width(t.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, row))
}
