package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opensphere/editorial/pkg/autosave"
	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/pagination"
	"github.com/opensphere/editorial/pkg/theme"
)

// StatusBar is the bottom strip: save status, page position, zoom, word
// count, and the active theme.
type StatusBar struct {
	styles    *Styles
	engine    *editor.Engine
	navigator *pagination.Navigator
	themes    *theme.Manager

	width      int
	saveStatus autosave.Status
	pageCount  int
	message    string
}

func NewStatusBar(engine *editor.Engine, navigator *pagination.Navigator, themes *theme.Manager, styles *Styles) *StatusBar {
	return &StatusBar{
		styles:    styles,
		engine:    engine,
		navigator: navigator,
		themes:    themes,
		pageCount: 1,
	}
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) SetSaveStatus(status autosave.Status) {
	s.saveStatus = status
}

func (s *StatusBar) SetPageCount(count int) {
	s.pageCount = count
}

func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

func (s *StatusBar) View() string {
	badge := s.saveBadge()
	left := badge
	if s.message != "" {
		left += "  " + s.message
	}

	right := fmt.Sprintf("Page %d / %d · %d%% · %d words · %s",
		s.navigator.CurrentPage(), s.pageCount,
		s.navigator.ZoomPercent(),
		s.engine.WordCount(),
		s.themes.Current())

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *StatusBar) saveBadge() string {
	switch s.saveStatus {
	case autosave.StatusSaving:
		return s.styles.ListDim.Render("● Saving...")
	case autosave.StatusSaved:
		return s.styles.StatusBadge.Render("✓ Saved")
	case autosave.StatusError:
		return s.styles.StatusError.Render("✗ Save failed")
	default:
		return s.styles.ListDim.Render("○ Idle")
	}
}
