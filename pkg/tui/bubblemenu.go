package tui

import (
	"strings"

	"github.com/opensphere/editorial/pkg/editor"
)

// BubbleMenu mirrors the floating inline-formatting menu: it renders only
// while the selection is non-empty.
type BubbleMenu struct {
	engine *editor.Engine
	styles *Styles
}

func NewBubbleMenu(engine *editor.Engine, styles *Styles) *BubbleMenu {
	return &BubbleMenu{engine: engine, styles: styles}
}

// Visible reports whether the menu should render.
func (m *BubbleMenu) Visible() bool {
	return m.engine.HasSelection()
}

func (m *BubbleMenu) View() string {
	if !m.Visible() {
		return ""
	}
	entries := []struct {
		label string
		mark  string
	}{
		{"B", editor.MarkBold},
		{"I", editor.MarkItalic},
		{"U", editor.MarkUnderline},
		{"S", editor.MarkStrike},
		{"<>", editor.MarkCode},
		{"▦", editor.MarkHighlight},
		{"⛓", editor.MarkLink},
	}
	var buttons []string
	for _, entry := range entries {
		style := m.styles.ToolbarButton
		if m.engine.IsActive(entry.mark) {
			style = m.styles.ToolbarActive
		}
		buttons = append(buttons, style.Render(entry.label))
	}
	hint := m.styles.ListDim.Render(" ctrl+b/i/u · ctrl+k link")
	return m.styles.Overlay.Render(strings.Join(buttons, "") + hint)
}
