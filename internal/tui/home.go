package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/filter"
	"github.com/rsilvagit/ajudaja/internal/model"
	"github.com/rsilvagit/ajudaja/internal/navigation"
)

type homeState struct {
	category int
	cursor   int
}

func (m Model) homeVisible() []model.Opportunity {
	featured := m.deps.Catalog.FetchFeatured(context.Background())
	return filter.ByCategory(featured, catalog.CategoryTitles()[m.home.category])
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(catalog.CategoryTitles())
	switch msg.String() {
	case "left", "h":
		m.home.category = (m.home.category + n - 1) % n
		m.home.cursor = 0
	case "right", "l":
		m.home.category = (m.home.category + 1) % n
		m.home.cursor = 0
	case "up", "k":
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case "down", "j":
		if m.home.cursor < len(m.homeVisible())-1 {
			m.home.cursor++
		}
	case "a":
		m.nav.SwitchTab(navigation.OpportunitiesTab)
	case "enter":
		visible := m.homeVisible()
		if len(visible) == 0 {
			return m, nil
		}
		return m.open(navigation.Details(visible[m.home.cursor].ID))
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Bem vindo! 👋"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Descubra ONGs perto de você e faça a diferença como voluntário. Sua ajuda transforma vidas!"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Categorias"))
	b.WriteString("\n")
	b.WriteString(m.viewCategoryChips(m.home.category))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Oportunidades em Destaque"))
	b.WriteString(m.styles.Muted.Render("  (a) Ver Todas"))
	b.WriteString("\n")
	visible := m.homeVisible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("Nenhuma oportunidade encontrada nesta categoria."))
	}
	for i, o := range visible {
		b.WriteString(m.viewCard(o, i == m.home.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	stats := catalog.Impact()
	b.WriteString(m.styles.Subtitle.Render("Nosso Impacto"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewStat(stats.Volunteers, "Voluntários"),
		m.viewStat(stats.Organizations, "ONGs"),
		m.viewStat(stats.PeopleHelped, "Pessoas Ajudadas"),
	))
	return b.String()
}

func (m Model) viewStat(number, label string) string {
	return lipgloss.NewStyle().Padding(0, 2).Render(
		m.styles.Title.Render(number) + "\n" + m.styles.Muted.Render(label),
	)
}

func (m Model) viewCategoryChips(selected int) string {
	chips := make([]string, 0, len(catalog.CategoryTitles()))
	for i, c := range catalog.CategoryTitles() {
		if i == selected {
			chips = append(chips, m.styles.Selected.Render(c))
		} else {
			chips = append(chips, m.styles.Badge.Render(c))
		}
	}
	return strings.Join(chips, " ")
}

func (m Model) viewCard(o model.Opportunity, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	title := m.styles.Body.Render(o.Title)
	if selected {
		title = m.styles.Title.Render(o.Title)
	}
	star := ""
	if o.IsFeatured {
		star = " ★"
	}
	return fmt.Sprintf("%s%s%s\n    %s · %s · %s",
		marker, title, star,
		m.styles.Muted.Render(o.Organization),
		m.styles.Muted.Render(o.Location),
		m.styles.Muted.Render(o.Date),
	)
}
