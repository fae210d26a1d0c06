package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsilvagit/ajudaja/internal/browse"
	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/navigation"
)

type listState struct {
	browser  *browse.Browser
	search   textinput.Model
	category int
	state    int // 0 means every state, otherwise browser.States()[state-1]
	cursor   int
}

func newListState() listState {
	ti := textinput.New()
	ti.Placeholder = "Buscar oportunidades..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 80
	return listState{
		browser: browse.New(),
		search:  ti,
	}
}

func (l *listState) clamp() {
	if n := len(l.browser.Visible()); l.cursor >= n {
		l.cursor = max(n-1, 0)
	}
	if l.state > len(l.browser.States()) {
		l.state = 0
		l.browser.SetState("")
	}
}

func (l *listState) selectState(i int) {
	n := len(l.browser.States()) + 1
	l.state = (i%n + n) % n
	if l.state == 0 {
		l.browser.SetState("")
	} else {
		l.browser.SetState(l.browser.States()[l.state-1].Sigla)
	}
	l.cursor = 0
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := &m.list

	if l.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			l.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(msg)
		l.browser.SetQuery(l.search.Value())
		l.clamp()
		return m, cmd
	}

	n := len(catalog.CategoryTitles())
	switch msg.String() {
	case "/":
		return m, l.search.Focus()
	case "left", "h":
		l.category = (l.category + n - 1) % n
		l.browser.SetCategory(catalog.CategoryTitles()[l.category])
		l.cursor = 0
	case "right", "l":
		l.category = (l.category + 1) % n
		l.browser.SetCategory(catalog.CategoryTitles()[l.category])
		l.cursor = 0
	case "s":
		l.selectState(l.state + 1)
	case "S":
		l.selectState(l.state - 1)
	case "c":
		l.search.SetValue("")
		l.browser.SetQuery("")
		l.category = 0
		l.browser.SetCategory(catalog.AllCategories)
		l.selectState(0)
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.browser.Visible())-1 {
			l.cursor++
		}
	case "r":
		return m, m.startLoad()
	case "enter":
		visible := l.browser.Visible()
		if len(visible) == 0 {
			return m, nil
		}
		return m.open(navigation.Details(visible[l.cursor].ID))
	}
	return m, nil
}

func (m Model) viewList() string {
	l := m.list
	var b strings.Builder

	b.WriteString(m.styles.Input.Render(l.search.View()))
	b.WriteString("\n")
	b.WriteString(m.viewCategoryChips(l.category))
	b.WriteString("\n")

	stateLabel := "Todos"
	if l.state > 0 {
		s := l.browser.States()[l.state-1]
		stateLabel = fmt.Sprintf("%s (%s)", s.Nome, s.Sigla)
	}
	b.WriteString(m.styles.Muted.Render("Filtrar por Estado: "))
	b.WriteString(m.styles.Selected.Render(stateLabel))
	b.WriteString("\n\n")

	if l.browser.Loading() {
		b.WriteString(m.spinner.View() + " Carregando...")
		return b.String()
	}

	visible := l.browser.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("Nenhuma oportunidade encontrada."))
	}
	for i, o := range visible {
		b.WriteString(m.viewCard(o, i == l.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("/ buscar · ←/→ categoria · s/S estado · c limpar · r recarregar"))
	return b.String()
}
