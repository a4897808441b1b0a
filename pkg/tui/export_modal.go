package tui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/export"
	"github.com/opensphere/editorial/pkg/store"
)

// ExportModal lists the export formats and writes the chosen one to the
// configured export directory.
type ExportModal struct {
	styles   *Styles
	engine   *editor.Engine
	settings *store.Settings
	cursor   int
	active   bool
}

func NewExportModal(engine *editor.Engine, settings *store.Settings, styles *Styles) *ExportModal {
	return &ExportModal{styles: styles, engine: engine, settings: settings}
}

func (m *ExportModal) Open() {
	m.active = true
	m.cursor = 0
}

func (m *ExportModal) Close() {
	m.active = false
}

func (m *ExportModal) Active() bool {
	return m.active
}

// Update handles the modal's keys. On confirmation it returns a status
// command describing the outcome.
func (m *ExportModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Close()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(export.Formats)-1 {
			m.cursor++
		}
	case "enter":
		format := export.Formats[m.cursor]
		m.Close()
		return m.export(format)
	case "c":
		format := export.Formats[m.cursor]
		m.Close()
		return func() tea.Msg {
			if err := export.Copy(m.engine, format.ID); err != nil {
				return StatusMsg("Export failed: " + err.Error())
			}
			return StatusMsg("Copied " + format.Name + " to clipboard")
		}
	}
	return nil
}

func (m *ExportModal) export(format export.Format) tea.Cmd {
	return func() tea.Msg {
		name := m.settings.Export.DefaultFilename
		path := filepath.Join(m.settings.Export.ExportPath, name+format.Extension)
		written, err := export.WriteFile(m.engine, format.ID, path)
		if err != nil {
			return StatusMsg("Export failed: " + err.Error())
		}
		return StatusMsg("Exported " + written)
	}
}

func (m *ExportModal) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("Export Document"))
	b.WriteString("\n")
	b.WriteString(m.styles.ListDim.Render("Choose your format"))
	b.WriteString("\n\n")

	for i, format := range export.Formats {
		style := m.styles.ListItem
		prefix := "  "
		if i == m.cursor {
			style = m.styles.ListSelected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + format.Name))
		b.WriteString(m.styles.ListDim.Render("  " + format.Extension + "  " + format.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.ListDim.Render("enter export · c copy · esc close"))
	return m.styles.Overlay.Render(b.String())
}
