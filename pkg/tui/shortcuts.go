package tui

import (
	"strings"
)

// shortcutGroup is one section of the keyboard reference.
type shortcutGroup struct {
	title string
	keys  [][2]string
}

var shortcutGroups = []shortcutGroup{
	{
		title: "Formatting",
		keys: [][2]string{
			{"ctrl+b", "Bold"},
			{"ctrl+i", "Italic"},
			{"ctrl+u", "Underline"},
			{"ctrl+alt+1..3", "Heading 1-3"},
			{"ctrl+alt+0", "Paragraph"},
		},
	},
	{
		title: "Editing",
		keys: [][2]string{
			{"ctrl+z", "Undo"},
			{"ctrl+y", "Redo"},
			{"/", "Insert block"},
			{"ctrl+s", "Save now"},
		},
	},
	{
		title: "Panels",
		keys: [][2]string{
			{"ctrl+f", "Find & replace"},
			{"ctrl+e", "Export"},
			{"ctrl+t", "Templates"},
			{"ctrl+o", "Outline"},
			{"ctrl+/", "This reference"},
		},
	},
	{
		title: "Pages & view",
		keys: [][2]string{
			{"pgdown / pgup", "Next / previous page"},
			{"ctrl++ / ctrl+-", "Zoom in / out"},
			{"ctrl+0", "Fit width"},
			{"ctrl+d", "Toggle theme"},
			{"ctrl+n", "Toggle sidebar"},
		},
	},
}

// ShortcutsModal is the static keyboard reference.
type ShortcutsModal struct {
	styles *Styles
	active bool
}

func NewShortcutsModal(styles *Styles) *ShortcutsModal {
	return &ShortcutsModal{styles: styles}
}

func (m *ShortcutsModal) Open()        { m.active = true }
func (m *ShortcutsModal) Close()       { m.active = false }
func (m *ShortcutsModal) Active() bool { return m.active }

func (m *ShortcutsModal) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, group := range shortcutGroups {
		b.WriteString("\n")
		b.WriteString(m.styles.ListDim.Render(group.title))
		b.WriteString("\n")
		for _, pair := range group.keys {
			key := pair[0]
			if pad := 16 - len(key); pad > 0 {
				key += strings.Repeat(" ", pad)
			}
			b.WriteString(m.styles.ListItem.Render("  " + key + pair[1]))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.ListDim.Render("esc close"))
	return m.styles.Overlay.Render(b.String())
}
