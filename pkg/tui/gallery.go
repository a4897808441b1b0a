package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/templates"
)

// TemplateGallery lists the starter templates. Applying one replaces the
// document, so a confirmation guards it.
type TemplateGallery struct {
	styles       *Styles
	engine       *editor.Engine
	confirmation *ConfirmationModel
	cursor       int
	active       bool
}

func NewTemplateGallery(engine *editor.Engine, styles *Styles) *TemplateGallery {
	return &TemplateGallery{
		styles:       styles,
		engine:       engine,
		confirmation: NewConfirmation(),
	}
}

func (g *TemplateGallery) Open() {
	g.active = true
	g.cursor = 0
}

func (g *TemplateGallery) Close() {
	g.active = false
	g.confirmation.Hide()
}

func (g *TemplateGallery) Active() bool {
	return g.active
}

// Update handles the gallery's keys.
func (g *TemplateGallery) Update(msg tea.KeyMsg) tea.Cmd {
	if g.confirmation.Active() {
		return g.confirmation.Update(msg)
	}

	list := templates.List()
	switch msg.String() {
	case "esc":
		g.Close()
	case "up", "k":
		if g.cursor > 0 {
			g.cursor--
		}
	case "down", "j":
		if g.cursor < len(list)-1 {
			g.cursor++
		}
	case "enter":
		tpl := list[g.cursor]
		g.confirmation.Show(ConfirmationConfig{
			Message:     "Replace the current document with \"" + tpl.Name + "\"?",
			Warning:     "Unsaved edits to the current document are lost.",
			Destructive: true,
		}, func() tea.Cmd {
			return g.apply(tpl.ID)
		}, nil)
	}
	return nil
}

func (g *TemplateGallery) apply(id string) tea.Cmd {
	g.Close()
	return func() tea.Msg {
		if err := templates.Apply(g.engine, id); err != nil {
			return StatusMsg("Template failed: " + err.Error())
		}
		return StatusMsg("Template applied")
	}
}

func (g *TemplateGallery) View() string {
	if !g.active {
		return ""
	}
	if g.confirmation.Active() {
		return g.styles.Overlay.Render(g.confirmation.View())
	}

	var b strings.Builder
	b.WriteString(g.styles.OverlayTitle.Render("Templates"))
	b.WriteString("\n\n")
	for i, tpl := range templates.List() {
		style := g.styles.ListItem
		prefix := "  "
		if i == g.cursor {
			style = g.styles.ListSelected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + tpl.Icon + " " + tpl.Name))
		b.WriteString(g.styles.ListDim.Render("  " + tpl.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(g.styles.ListDim.Render("enter apply · esc close"))
	return g.styles.Overlay.Render(b.String())
}
