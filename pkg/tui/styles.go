package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opensphere/editorial/pkg/theme"
)

// Color constants shared by both palettes.
const (
	ColorActive   = "170" // Purple for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorWarning  = "214" // Orange for warnings
	ColorDanger   = "196" // Red for destructive actions
	ColorSuccess  = "28"  // Green for success
)

// Styles is the themed style set the sub-models render with.
type Styles struct {
	Page        lipgloss.Style
	PageBreak   lipgloss.Style
	HeadingText lipgloss.Style
	CodeText    lipgloss.Style
	QuoteText   lipgloss.Style
	Selection   lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarButton lipgloss.Style
	ToolbarActive lipgloss.Style

	StatusBar   lipgloss.Style
	StatusBadge lipgloss.Style
	StatusError lipgloss.Style

	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListDim      lipgloss.Style

	Sidebar         lipgloss.Style
	ThumbCurrent    lipgloss.Style
	Thumb           lipgloss.Style
	OutlineHeading  lipgloss.Style
	OutlineSelected lipgloss.Style
	EmptyState      lipgloss.Style
}

// NewStyles builds the style set for the active theme.
func NewStyles(t theme.Theme) Styles {
	var (
		fg     = "252"
		dim    = "245"
		pageBg = "235"
		barBg  = "236"
	)
	if t == theme.Light {
		fg = "235"
		dim = "243"
		pageBg = "255"
		barBg = "252"
	}

	overlay := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)

	return Styles{
		Page: lipgloss.NewStyle().
			Background(lipgloss.Color(pageBg)).
			Foreground(lipgloss.Color(fg)).
			Padding(0, 2),
		PageBreak: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)),
		HeadingText: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fg)),
		CodeText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)),
		QuoteText: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(dim)),
		Selection: lipgloss.NewStyle().
			Reverse(true),

		Toolbar: lipgloss.NewStyle().
			Background(lipgloss.Color(barBg)).
			Foreground(lipgloss.Color(fg)).
			Padding(0, 1),
		ToolbarButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)).
			Padding(0, 1),
		ToolbarActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(barBg)).
			Foreground(lipgloss.Color(dim)).
			Padding(0, 1),
		StatusBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)),

		Overlay: overlay,
		OverlayTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive)),
		ListItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)),
		ListSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true),
		ListDim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(ColorInactive)).
			Padding(0, 1),
		ThumbCurrent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)),
		Thumb: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)),
		OutlineHeading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)),
		OutlineSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true),
		EmptyState: lipgloss.NewStyle().
			Foreground(lipgloss.Color(dim)).
			Italic(true),
	}
}
