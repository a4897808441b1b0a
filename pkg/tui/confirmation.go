package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Message     string // Main confirmation message
	Warning     string // Optional warning text (shown in orange)
	Destructive bool   // If true, Yes renders red
	YesLabel    string // Custom label for Yes (default: "Yes")
	NoLabel     string // Custom label for No (default: "No")
}

// ConfirmationModel handles yes/no prompts inside overlays
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.config.Message)
	if m.config.Warning != "" {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.config.Warning))
	}

	yesColor := ColorSuccess
	if m.config.Destructive {
		yesColor = ColorDanger
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).
		Render("[y] " + m.config.YesLabel)
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInactive)).
		Render("[n] " + m.config.NoLabel)
	b.WriteString("\n\n" + yes + "  " + no)

	return b.String()
}
