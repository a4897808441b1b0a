package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opensphere/editorial/internal/logger"
	"github.com/opensphere/editorial/pkg/autosave"
	"github.com/opensphere/editorial/pkg/commands"
	"github.com/opensphere/editorial/pkg/editor"
	"github.com/opensphere/editorial/pkg/pagination"
	"github.com/opensphere/editorial/pkg/search"
	"github.com/opensphere/editorial/pkg/store"
	"github.com/opensphere/editorial/pkg/theme"
)

// App is the root model. It owns the engine and its collaborators and
// routes keys to whichever surface is active.
type App struct {
	store    *store.Store
	settings *store.Settings
	engine   *editor.Engine
	saver    *autosave.Controller
	themes   *theme.Manager
	pages    *pagination.Engine
	nav      *pagination.Navigator
	session  *search.Session

	styles Styles

	canvas    *Canvas
	toolbar   *Toolbar
	bubble    *BubbleMenu
	sidebar   *Sidebar
	status    *StatusBar
	palette   *Palette
	searchBar *SearchPanel
	exporter  *ExportModal
	gallery   *TemplateGallery
	shortcuts *ShortcutsModal
	prompt    *InputPrompt

	saveCh chan autosave.Status
	width  int
	height int
}

// NewApp wires the application together over the data directory. An empty
// dir means the per-user default.
func NewApp(dir string) (*App, error) {
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	st, err := store.New(dir)
	if err != nil {
		return nil, err
	}
	settings, err := st.ReadSettings()
	if err != nil {
		logger.Warn("falling back to default settings", map[string]interface{}{"error": err.Error()})
		settings = store.DefaultSettings()
	}

	engine := editor.New()
	themes := theme.NewManager(st, theme.Theme(settings.UI.DefaultTheme))
	saver := autosave.NewFromSettings(st, engine, settings)
	saver.LoadOnMount()

	a := &App{
		store:    st,
		settings: settings,
		engine:   engine,
		saver:    saver,
		themes:   themes,
		pages:    pagination.NewEngine(pagination.DefaultGeometry),
		nav:      pagination.NewNavigator(),
		session:  search.NewSession(engine),
		styles:   NewStyles(themes.Current()),
		saveCh:   make(chan autosave.Status, 8),
	}

	a.canvas = NewCanvas(engine, &a.styles, settings.UI.LineHeightPx)
	a.toolbar = NewToolbar(engine, &a.styles)
	a.bubble = NewBubbleMenu(engine, &a.styles)
	a.sidebar = NewSidebar(engine, a.nav, &a.styles, settings.UI.ShowSidebar)
	a.status = NewStatusBar(engine, a.nav, themes, &a.styles)
	a.palette = NewPalette(&a.styles)
	a.searchBar = NewSearchPanel(a.session, &a.styles)
	a.exporter = NewExportModal(engine, settings, &a.styles)
	a.gallery = NewTemplateGallery(engine, &a.styles)
	a.shortcuts = NewShortcutsModal(&a.styles)
	a.prompt = NewInputPrompt(&a.styles)

	saver.Subscribe(func(s autosave.Status) {
		select {
		case a.saveCh <- s:
		default:
		}
	})

	a.refresh()
	return a, nil
}

// Close flushes pending edits and releases the controller's timers.
func (a *App) Close() {
	a.saver.SaveNow()
	a.saver.Close()
}

func (a *App) Init() tea.Cmd {
	return a.waitForSaveStatus()
}

func (a *App) waitForSaveStatus() tea.Cmd {
	return func() tea.Msg {
		return saveStatusMsg{status: <-a.saveCh}
	}
}

// refresh re-measures the document and re-derives everything that hangs
// off it: page count, clamped navigation, sidebar content, canvas text.
func (a *App) refresh() {
	count := a.pages.Recompute(a.canvas.MeasuredHeightPx())
	a.nav.Clamp(count)
	a.sidebar.Refresh(count)
	a.status.SetPageCount(count)
	a.canvas.Refresh()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		// Width changes reflow the text, so the measurement is stale.
		a.refresh()
		return a, nil

	case saveStatusMsg:
		a.status.SetSaveStatus(msg.status)
		return a, a.waitForSaveStatus()

	case StatusMsg:
		a.status.SetMessage(string(msg))
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.canvas, cmd = a.canvas.Update(msg)
	return a, cmd
}

func (a *App) layout() {
	sidebarWidth := 0
	if a.sidebar.Visible() {
		sidebarWidth = 22
	}
	bodyHeight := a.height - 2
	if a.searchBar.Active() {
		bodyHeight -= searchPanelHeight
	}
	a.sidebar.SetSize(sidebarWidth, bodyHeight)
	a.canvas.SetSize(a.width-sidebarWidth, bodyHeight)
	a.toolbar.SetSize(a.width)
	a.status.SetSize(a.width)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	// Overlays take the keys while open.
	switch {
	case a.shortcuts.Active():
		switch msg.String() {
		case "esc", "ctrl+/", "ctrl+_":
			a.shortcuts.Close()
		}
		return a, nil

	case a.prompt.Active():
		cmd := a.prompt.Update(msg)
		a.refresh()
		return a, cmd

	case a.exporter.Active():
		return a, a.exporter.Update(msg)

	case a.gallery.Active():
		cmd := a.gallery.Update(msg)
		a.refresh()
		return a, cmd

	case a.palette.Active():
		chosen, cmd := a.palette.Update(msg)
		if chosen != nil {
			return a, a.runCommand(*chosen)
		}
		return a, cmd

	case a.searchBar.Active():
		_, cmd := a.searchBar.Update(msg)
		if !a.searchBar.Active() {
			a.layout()
		}
		a.refresh()
		return a, cmd

	case a.sidebar.OutlineMode():
		if page := a.sidebar.Update(msg); page > 0 {
			a.goToPage(page)
			return a, nil
		}
		if msg.String() == "esc" || msg.String() == "ctrl+o" {
			a.sidebar.ToggleOutline()
			a.layout()
			return a, nil
		}
		return a, nil
	}

	// Global keys.
	switch msg.String() {
	case "ctrl+f":
		a.searchBar.Open()
		a.layout()
		return a, nil
	case "ctrl+e":
		a.exporter.Open()
		return a, nil
	case "ctrl+t":
		a.gallery.Open()
		return a, nil
	case "ctrl+o":
		a.sidebar.ToggleOutline()
		a.layout()
		return a, nil
	// Terminals report ctrl+/ as ctrl+_.
	case "ctrl+/", "ctrl+_":
		a.shortcuts.Open()
		return a, nil
	case "ctrl+n":
		a.sidebar.Toggle()
		a.layout()
		a.refresh()
		return a, nil
	case "ctrl+d":
		a.styles = NewStyles(a.themes.Toggle())
		a.refresh()
		return a, nil
	case "ctrl+s":
		a.saver.SaveNow()
		return a, nil
	case "ctrl+k":
		return a, a.promptCommand("link")
	case "/":
		// The palette opens only at the start of an empty block.
		if a.atBlockStart() {
			a.palette.Open()
			return a, nil
		}
	case "pgdown":
		a.nav.Next(a.pages.PageCount())
		a.canvas.GoToPage(a.nav.CurrentPage())
		return a, nil
	case "pgup":
		a.nav.Prev(a.pages.PageCount())
		a.canvas.GoToPage(a.nav.CurrentPage())
		return a, nil
	case "ctrl++", "alt++", "alt+=":
		a.nav.ZoomIn()
		return a, nil
	case "ctrl+-", "alt+-":
		a.nav.ZoomOut()
		return a, nil
	case "ctrl+0", "alt+0":
		a.nav.FitWidth()
		return a, nil
	}

	if a.canvas.HandleKey(msg) {
		a.refresh()
		return a, nil
	}

	var cmd tea.Cmd
	a.canvas, cmd = a.canvas.Update(msg)
	return a, cmd
}

// runCommand dispatches a palette or toolbar command, collecting input
// first when the command asks for it.
func (a *App) runCommand(cmd commands.Command) tea.Cmd {
	if cmd.NeedsInput {
		id := cmd.ID
		a.prompt.Open(cmd.InputPrompt, "", func(value string) tea.Cmd {
			commands.Execute(a.engine, id, value)
			a.refresh()
			return nil
		})
		return nil
	}
	cmd.Run(a.engine, "")
	a.refresh()
	return nil
}

func (a *App) promptCommand(id string) tea.Cmd {
	if cmd, ok := commands.Find(id); ok {
		return a.runCommand(cmd)
	}
	return nil
}

// atBlockStart reports whether the cursor sits at the start of the
// document or right after a block boundary.
func (a *App) atBlockStart() bool {
	from, to := a.engine.Selection()
	if from != to {
		return false
	}
	if from == 0 {
		return true
	}
	text := a.engine.Text()
	return from >= 2 && text[from-1] == '\n'
}

func (a *App) goToPage(page int) {
	a.nav.GoTo(page, a.pages.PageCount())
	a.canvas.GoToPage(a.nav.CurrentPage())
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	main := a.canvas.View()
	if a.sidebar.Visible() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), main)
	}
	rows := []string{a.toolbar.View(), main}
	// The search panel docks above the status bar so matches stay visible.
	if a.searchBar.Active() {
		rows = append(rows, a.searchBar.View())
	}
	rows = append(rows, a.status.View())
	screen := lipgloss.JoinVertical(lipgloss.Left, rows...)

	overlay := a.activeOverlay()
	if overlay == "" && a.bubble.Visible() {
		overlay = a.bubble.View()
	}
	if overlay != "" {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay,
			lipgloss.WithWhitespaceChars(" "))
	}
	return screen
}

func (a *App) activeOverlay() string {
	switch {
	case a.shortcuts.Active():
		return a.shortcuts.View()
	case a.prompt.Active():
		return a.prompt.View()
	case a.exporter.Active():
		return a.exporter.View()
	case a.gallery.Active():
		return a.gallery.View()
	case a.palette.Active():
		return a.palette.View()
	}
	return ""
}
