package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/outline"
	"github.com/opensphere/editorial/pkg/pagination"
)

// sidebarMode selects between page thumbnails and the heading outline.
type sidebarMode int

const (
	sidebarThumbnails sidebarMode = iota
	sidebarOutline
)

// Sidebar shows page thumbnails with a current-page marker, or the
// heading outline.
type Sidebar struct {
	styles    *Styles
	engine    *editor.Engine
	navigator *pagination.Navigator

	mode      sidebarMode
	visible   bool
	width     int
	height    int
	pageCount int
	headings  []outline.Heading
	cursor    int
}

func NewSidebar(engine *editor.Engine, navigator *pagination.Navigator, styles *Styles, visible bool) *Sidebar {
	return &Sidebar{
		styles:    styles,
		engine:    engine,
		navigator: navigator,
		visible:   visible,
	}
}

func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Sidebar) Toggle() {
	s.visible = !s.visible
}

func (s *Sidebar) Visible() bool {
	return s.visible
}

// ToggleOutline flips between thumbnails and the outline.
func (s *Sidebar) ToggleOutline() {
	if s.mode == sidebarOutline {
		s.mode = sidebarThumbnails
	} else {
		s.mode = sidebarOutline
		s.cursor = 0
	}
	s.visible = true
}

func (s *Sidebar) OutlineMode() bool {
	return s.visible && s.mode == sidebarOutline
}

// Refresh re-derives the sidebar's content from the document.
func (s *Sidebar) Refresh(pageCount int) {
	s.pageCount = pageCount
	s.headings = outline.Extract(s.engine.Doc())
	if s.cursor >= len(s.headings) {
		s.cursor = 0
	}
}

// Update handles outline navigation keys. It returns the page to jump to,
// or 0.
func (s *Sidebar) Update(msg tea.KeyMsg) int {
	if !s.OutlineMode() {
		return 0
	}
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.headings)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.headings) > 0 {
			return s.headingPage(s.cursor)
		}
	}
	return 0
}

// headingPage estimates which page the heading falls on from its position
// in the heading sequence. A heading's share of the document tracks its
// share of the pages.
func (s *Sidebar) headingPage(i int) int {
	if s.pageCount <= 1 || len(s.headings) == 0 {
		return 1
	}
	page := 1 + i*s.pageCount/len(s.headings)
	if page > s.pageCount {
		page = s.pageCount
	}
	return page
}

func (s *Sidebar) View() string {
	if !s.visible {
		return ""
	}
	if s.mode == sidebarOutline {
		return s.viewOutline()
	}
	return s.viewThumbnails()
}

func (s *Sidebar) viewThumbnails() string {
	var b strings.Builder
	b.WriteString(s.styles.ListDim.Render("Pages"))
	b.WriteString("\n")
	for page := 1; page <= s.pageCount; page++ {
		style := s.styles.Thumb
		if page == s.navigator.CurrentPage() {
			style = s.styles.ThumbCurrent
		}
		b.WriteString(style.Render(fmt.Sprintf(" %2d ", page)))
		b.WriteString("\n")
	}
	return s.styles.Sidebar.Height(s.height).Render(b.String())
}

func (s *Sidebar) viewOutline() string {
	var b strings.Builder
	b.WriteString(s.styles.ListDim.Render("Outline"))
	b.WriteString("\n")

	if len(s.headings) == 0 {
		b.WriteString(s.styles.EmptyState.Render("No headings found"))
		return s.styles.Sidebar.Height(s.height).Render(b.String())
	}

	for i, h := range s.headings {
		style := s.styles.OutlineHeading
		if i == s.cursor {
			style = s.styles.OutlineSelected
		}
		indent := strings.Repeat("  ", h.Level-1)
		text := h.Text
		if max := s.width - len(indent) - 4; max > 3 && len(text) > max {
			text = text[:max-3] + "..."
		}
		b.WriteString(style.Render(indent + text))
		b.WriteString("\n")
	}
	return s.styles.Sidebar.Height(s.height).Render(b.String())
}
