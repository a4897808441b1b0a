package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputPrompt collects a single line of input for commands that need one,
// like the link and image URLs.
type InputPrompt struct {
	styles *Styles
	input  textinput.Model
	title  string
	active bool
	submit func(value string) tea.Cmd
}

func NewInputPrompt(styles *Styles) *InputPrompt {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 50
	return &InputPrompt{styles: styles, input: ti}
}

// Open shows the prompt. submit runs with the entered value; an empty
// value closes without running it.
func (p *InputPrompt) Open(title, placeholder string, submit func(value string) tea.Cmd) {
	p.active = true
	p.title = title
	p.submit = submit
	p.input.Placeholder = placeholder
	p.input.SetValue("")
	p.input.Focus()
}

func (p *InputPrompt) Close() {
	p.active = false
	p.input.Blur()
	p.input.SetValue("")
}

func (p *InputPrompt) Active() bool {
	return p.active
}

func (p *InputPrompt) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.Close()
		return nil
	case "enter":
		value := p.input.Value()
		submit := p.submit
		p.Close()
		if value == "" || submit == nil {
			return nil
		}
		return submit(value)
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *InputPrompt) View() string {
	if !p.active {
		return ""
	}
	return p.styles.Overlay.Render(
		p.styles.OverlayTitle.Render(p.title) + "\n" +
			p.input.View() + "\n" +
			p.styles.ListDim.Render("enter confirm · esc cancel"))
}
