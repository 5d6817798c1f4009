package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paleite/sidebar"
	"github.com/paleite/sidebar/internal/config"
)

const (
	panelWidthExpanded = 24
	panelWidthIcon     = 4
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	overlayStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236")).Padding(0, 1)
)

// MenuItem is one entry in the panel.
type MenuItem struct {
	Title string
	Icon  string
}

func defaultItems() []MenuItem {
	return []MenuItem{
		{Title: "Home", Icon: "⌂"},
		{Title: "Search", Icon: "/"},
		{Title: "Inbox", Icon: "✉"},
		{Title: "Calendar", Icon: "▦"},
		{Title: "Settings", Icon: "⚙"},
	}
}

// App hosts the panel coordinator inside a Bubble Tea program. All
// open/closed semantics live in the sidebar package; the app only
// forwards events and renders snapshots.
type App struct {
	cfg  config.Config
	ctrl *sidebar.Controller
	prop *sidebar.Propagator

	items  []MenuItem
	cursor int

	width    int
	height   int
	status   string
	quitting bool
}

func New(cfg config.Config, store sidebar.Store) (*App, error) {
	ctrl, err := sidebar.New(sidebar.Options{
		DefaultOpen: &cfg.Panel.DefaultOpen,
		Side:        sidebar.Side(cfg.Panel.Side),
		Collapsible: sidebar.Collapse(cfg.Panel.Collapsible),
		Breakpoint:  cfg.Panel.Breakpoint,
		Store:       store,
	})
	if err != nil {
		return nil, err
	}
	prop := sidebar.NewPropagator()
	prop.Attach(ctrl)
	return &App{
		cfg:    cfg,
		ctrl:   ctrl,
		prop:   prop,
		items:  defaultItems(),
		status: "Ready",
	}, nil
}

// Controller exposes the coordinator, mainly for wiring and tests.
func (a *App) Controller() *sidebar.Controller { return a.ctrl }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.ctrl.Detector().Observe(m.Width)
	case tea.KeyMsg:
		if a.ctrl.HandleKey(m) {
			return a, nil
		}
		switch m.String() {
		case "q", "ctrl+c":
			a.quitting = true
			a.ctrl.Close()
			return a, tea.Quit
		case "up", "k":
			if a.cursor > 0 {
				a.cursor--
			}
		case "down", "j":
			if a.cursor < len(a.items)-1 {
				a.cursor++
			}
		case "enter":
			a.status = "opened " + a.items[a.cursor].Title
		case "esc":
			snap, err := a.prop.Snapshot()
			if err == nil && snap.Compact && snap.OpenMobile {
				snap.SetOpen(false)
			}
		}
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	snap, err := a.prop.Snapshot()
	if err != nil {
		return err.Error()
	}

	width := a.width
	if width <= 0 {
		width = 100
	}
	height := a.height
	if height <= 0 {
		height = 30
	}
	bodyHeight := height - 1 // status bar

	var body string
	if snap.Compact {
		body = a.renderContent(snap, width, bodyHeight)
		if snap.OpenMobile {
			body = a.renderOverlay(snap, width, bodyHeight)
		}
	} else {
		pw := a.panelWidth(snap)
		if pw > 0 {
			panel := a.renderPanel(snap, pw, bodyHeight)
			content := a.renderContent(snap, width-pw, bodyHeight)
			if a.ctrl.Side() == sidebar.SideEnd {
				body = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
			} else {
				body = lipgloss.JoinHorizontal(lipgloss.Top, panel, content)
			}
		} else {
			body = a.renderContent(snap, width, bodyHeight)
		}
	}

	return body + "\n" + a.renderStatus(snap, width)
}

// panelWidth maps the snapshot onto a column count for the fixed
// desktop surface.
func (a *App) panelWidth(snap sidebar.Snapshot) int {
	if snap.Open {
		return panelWidthExpanded
	}
	switch a.ctrl.Collapsible() {
	case sidebar.CollapseNone:
		return panelWidthExpanded
	case sidebar.CollapseIcon:
		return panelWidthIcon
	default:
		return 0
	}
}

func (a *App) renderPanel(snap sidebar.Snapshot, width, height int) string {
	iconOnly := !snap.Open
	lines := make([]string, 0, len(a.items)+2)
	if !iconOnly {
		lines = append(lines, titleStyle.Render("Menu"), "")
	}
	for i, item := range a.items {
		label := item.Icon
		if !iconOnly {
			label = fmt.Sprintf("%s  %s", item.Icon, item.Title)
		}
		if i == a.cursor {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		lines = append(lines, label)
	}
	body := strings.Join(lines, "\n")
	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false)
	if a.ctrl.Side() == sidebar.SideEnd {
		border = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true)
	}
	return border.Width(width - 1).Height(height).Padding(0, 1).Render(body)
}

func (a *App) renderContent(snap sidebar.Snapshot, width, height int) string {
	lines := []string{titleStyle.Render("Content"), ""}
	// Collapsed rail hides item labels, so surface the hovered one.
	if sidebar.ShouldShowHint(snap.Compact, snap.Mode, snap.Compact) {
		lines = append(lines, hintStyle.Render(a.items[a.cursor].Title))
	} else {
		lines = append(lines, dimStyle.Render("ctrl+b toggles the panel"))
	}
	lines = append(lines, "", a.status)
	return lipgloss.NewStyle().Width(width).Height(height).Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (a *App) renderOverlay(snap sidebar.Snapshot, width, height int) string {
	lines := make([]string, 0, len(a.items)+2)
	lines = append(lines, titleStyle.Render("Menu"), "")
	for i, item := range a.items {
		label := fmt.Sprintf("%s  %s", item.Icon, item.Title)
		if i == a.cursor {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		lines = append(lines, label)
	}
	lines = append(lines, "", dimStyle.Render("esc closes"))
	box := overlayStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (a *App) renderStatus(snap sidebar.Snapshot, width int) string {
	surface := "desktop"
	if snap.Compact {
		surface = "compact"
	}
	left := fmt.Sprintf("%s · %s · %s · ctrl+b toggle · q quit",
		shortID(a.ctrl.ID()), snap.Mode, surface)
	return statusBarStyle.Width(width).Render(left)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
