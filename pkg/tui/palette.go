package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/commands"
)

// Palette is the slash command palette: a filter input over the block
// commands, grouped by category.
type Palette struct {
	styles   *Styles
	input    textinput.Model
	active   bool
	filtered []commands.Command
	cursor   int
}

func NewPalette(styles *Styles) *Palette {
	ti := textinput.New()
	ti.Placeholder = "Filter commands..."
	ti.CharLimit = 50
	ti.Width = 40
	return &Palette{
		styles:   styles,
		input:    ti,
		filtered: commands.Palette(),
	}
}

// Open resets and shows the palette.
func (p *Palette) Open() {
	p.active = true
	p.cursor = 0
	p.input.SetValue("")
	p.input.Focus()
	p.filtered = commands.Palette()
}

// Close hides the palette and drops its transient state.
func (p *Palette) Close() {
	p.active = false
	p.input.Blur()
	p.input.SetValue("")
	p.filtered = commands.Palette()
	p.cursor = 0
}

func (p *Palette) Active() bool {
	return p.active
}

// Selected returns the command under the cursor.
func (p *Palette) Selected() (commands.Command, bool) {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return commands.Command{}, false
	}
	return p.filtered[p.cursor], true
}

// Update handles the palette's keys. It returns the chosen command when
// the user confirms one.
func (p *Palette) Update(msg tea.KeyMsg) (chosen *commands.Command, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.Close()
		return nil, nil
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return nil, nil
	case "down":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
		return nil, nil
	case "enter":
		if sel, ok := p.Selected(); ok {
			p.Close()
			return &sel, nil
		}
		return nil, nil
	}

	p.input, cmd = p.input.Update(msg)
	p.filtered = commands.Filter(p.input.Value())
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
	return nil, cmd
}

func (p *Palette) View() string {
	if !p.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(p.styles.OverlayTitle.Render("Insert block"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.filtered) == 0 {
		b.WriteString(p.styles.EmptyState.Render("No matching commands"))
		return p.styles.Overlay.Render(b.String())
	}

	var lastCategory commands.Category
	for i, cmd := range p.filtered {
		if cmd.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(p.styles.ListDim.Render(string(cmd.Category)))
			b.WriteString("\n")
			lastCategory = cmd.Category
		}
		style := p.styles.ListItem
		prefix := "  "
		if i == p.cursor {
			style = p.styles.ListSelected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + cmd.Icon + " " + cmd.Label))
		b.WriteString(p.styles.ListDim.Render("  " + cmd.Description))
		b.WriteString("\n")
	}
	return p.styles.Overlay.Render(strings.TrimRight(b.String(), "\n"))
}
