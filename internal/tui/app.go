// Package tui is the interactive terminal front end: a tab bar over the home,
// opportunities and about screens, with details and the volunteer form pushed
// on top of the home and opportunities stacks.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/browse"
	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/navigation"
	"github.com/rsilvagit/ajudaja/internal/preview"
	"github.com/rsilvagit/ajudaja/internal/submit"
	"github.com/rsilvagit/ajudaja/internal/theme"
)

const loadTimeout = 30 * time.Second

// Deps are the services the screens call. Previews may be nil.
type Deps struct {
	Catalog   *catalog.Service
	Loader    *browse.Loader
	Submitter *submit.Submitter
	Previews  *preview.Fetcher
	Theme     theme.Theme
	Logger    *zap.Logger
}

type alertKind int

const (
	alertError alertKind = iota
	alertSubmitted
)

type alert struct {
	kind  alertKind
	title string
	body  string
}

// Model is the root bubbletea model.
type Model struct {
	deps    Deps
	nav     *navigation.Navigator
	theme   theme.Theme
	styles  theme.Styles
	spinner spinner.Model
	width   int
	height  int
	alert   *alert

	home    homeState
	list    listState
	details detailsState
	form    formState
}

// New builds the root model.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	m := Model{
		deps:    deps,
		nav:     navigation.New(),
		theme:   deps.Theme,
		spinner: sp,
		list:    newListState(),
		details: newDetailsState(),
	}
	m.styles = theme.NewStyles(m.theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.theme.Colors.Primary)
	return m
}

// Run starts the program and blocks until the user quits.
func Run(deps Deps) error {
	_, err := tea.NewProgram(New(deps), tea.WithAltScreen()).Run()
	return err
}

type loadedMsg struct {
	token browse.Token
	snap  browse.Snapshot
	err   error
}

func (m Model) startLoad() tea.Cmd {
	tok := m.list.browser.Begin()
	loader := m.deps.Loader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		snap, err := loader.Load(ctx)
		return loadedMsg{token: tok, snap: snap, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startLoad())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if !m.list.browser.Apply(msg.token, msg.snap, msg.err) {
			m.deps.Logger.Debug("discarding stale load", zap.Uint64("token", uint64(msg.token)))
			return m, nil
		}
		if msg.err != nil {
			m.deps.Logger.Error("Erro ao carregar dados", zap.Error(msg.err))
			m.alert = &alert{kind: alertError, title: "Erro", body: browse.LoadErrorMessage}
		}
		m.list.clamp()
		return m, nil

	case submittedMsg:
		return m.handleSubmitted(msg)

	case previewMsg:
		m.details = m.details.withPreview(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.form.abandon()
		m.list.browser.Close()
		return m, tea.Quit
	case "ctrl+t":
		m.toggleTheme()
		return m, nil
	}

	if m.alert != nil {
		switch msg.String() {
		case "enter", "esc", " ":
			return m.dismissAlert(), nil
		}
		return m, nil
	}

	if !m.typing() {
		switch msg.String() {
		case "q":
			m.form.abandon()
			m.list.browser.Close()
			return m, tea.Quit
		case "t":
			m.toggleTheme()
			return m, nil
		case "1", "2", "3":
			m.nav.SwitchTab(navigation.Tabs[msg.String()[0]-'1'])
			return m, nil
		}
	}

	switch m.nav.Current().Screen {
	case navigation.HomeScreen:
		return m.updateHome(msg)
	case navigation.OpportunitiesScreen:
		return m.updateList(msg)
	case navigation.OpportunityDetails:
		return m.updateDetails(msg)
	case navigation.VolunteerForm:
		return m.updateForm(msg)
	case navigation.AboutScreen:
		return m, nil
	}
	return m, nil
}

// typing reports whether keys should go to a text input rather than be read
// as shortcuts.
func (m Model) typing() bool {
	switch m.nav.Current().Screen {
	case navigation.OpportunitiesScreen:
		return m.list.search.Focused()
	case navigation.VolunteerForm:
		return m.form.found
	}
	return false
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = theme.NewStyles(m.theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.theme.Colors.Primary)
}

func (m Model) dismissAlert() Model {
	a := m.alert
	m.alert = nil
	if a.kind == alertSubmitted {
		m.form = formState{token: m.form.token}
		m.nav.ResetToStart()
	}
	return m
}

// open pushes route on the active stack, mounting the screen's state.
func (m Model) open(r navigation.Route) (Model, tea.Cmd) {
	if err := m.nav.Push(r); err != nil {
		m.deps.Logger.Warn("navigation rejected", zap.Error(err))
		return m, nil
	}
	if r.Screen == navigation.VolunteerForm {
		return m.mountForm(r.OpportunityID)
	}
	return m, nil
}

func (m Model) back() Model {
	if m.nav.Current().Screen == navigation.VolunteerForm {
		m.form.abandon()
	}
	m.nav.Pop()
	return m
}

func (m Model) View() string {
	var b strings.Builder

	route := m.nav.Current()
	b.WriteString(m.styles.Header.Render(route.Screen.Title()))
	b.WriteString(m.styles.Muted.Render("  " + m.theme.Icon() + " (t)"))
	b.WriteString("\n\n")

	if m.alert != nil {
		b.WriteString(m.viewAlert())
	} else {
		switch route.Screen {
		case navigation.HomeScreen:
			b.WriteString(m.viewHome())
		case navigation.OpportunitiesScreen:
			b.WriteString(m.viewList())
		case navigation.OpportunityDetails:
			b.WriteString(m.viewDetails(route.OpportunityID))
		case navigation.VolunteerForm:
			b.WriteString(m.viewForm())
		case navigation.AboutScreen:
			b.WriteString(m.viewAbout())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewTabs())
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(navigation.Tabs))
	for i, t := range navigation.Tabs {
		label := string(rune('1'+i)) + " " + t.String()
		if t == m.nav.ActiveTab() {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAlert() string {
	body := m.styles.Title.Render(m.alert.title) + "\n\n" +
		m.styles.Body.Render(m.alert.body) + "\n\n" +
		m.styles.Button.Render("OK")
	return m.styles.Card.Render(body)
}
