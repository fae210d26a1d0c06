package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/navigation"
	"github.com/rsilvagit/ajudaja/internal/preview"
)

const previewTimeout = 10 * time.Second

type previewMsg struct {
	opportunityID string
	preview       preview.Preview
	err           error
}

type detailsState struct {
	previews map[string]previewMsg
	pending  map[string]bool
}

func newDetailsState() detailsState {
	return detailsState{
		previews: make(map[string]previewMsg),
		pending:  make(map[string]bool),
	}
}

func (d detailsState) withPreview(msg previewMsg) detailsState {
	delete(d.pending, msg.opportunityID)
	d.previews[msg.opportunityID] = msg
	return d
}

func (m Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.nav.Current().OpportunityID
	opp, found := m.deps.Catalog.FetchByID(context.Background(), id)

	switch msg.String() {
	case "esc", "backspace":
		return m.back(), nil
	case "enter", "v":
		if !found {
			return m.back(), nil
		}
		return m.open(navigation.Form(id))
	case "p":
		if !found || m.deps.Previews == nil || m.details.pending[id] {
			return m, nil
		}
		if _, done := m.details.previews[id]; done {
			return m, nil
		}
		m.details.pending[id] = true
		fetcher, logger, website := m.deps.Previews, m.deps.Logger, opp.Website
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
			defer cancel()
			p, err := fetcher.Fetch(ctx, website)
			if err != nil {
				logger.Warn("preview failed", zap.String("url", website), zap.Error(err))
			}
			return previewMsg{opportunityID: id, preview: p, err: err}
		}
	}
	return m, nil
}

func (m Model) viewDetails(id string) string {
	opp, found := m.deps.Catalog.FetchByID(context.Background(), id)
	if !found {
		return m.styles.ErrorText.Render("Oportunidade não encontrada.") + "\n\n" +
			m.styles.Button.Render("Voltar") + m.styles.Muted.Render("  (esc)")
	}

	var b strings.Builder
	b.WriteString(m.styles.Badge.Render(opp.Category))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(opp.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(opp.Organization))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(opp.Location + " · " + opp.Date))
	b.WriteString("\n\n")

	section := func(title, body string) {
		b.WriteString(m.styles.Subtitle.Render(title))
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render(body))
		b.WriteString("\n\n")
	}
	section("Descrição", opp.Description)
	section("Requisitos", opp.Requirements)
	section("Contato", opp.ContactPhone+"  "+opp.PhoneURL()+"\n"+opp.ContactEmail+"  "+opp.MailURL())
	section("Site", opp.Website)

	switch p, ok := m.details.previews[id]; {
	case m.details.pending[id]:
		b.WriteString(m.spinner.View() + " Carregando prévia...\n\n")
	case ok && p.err == nil && !p.preview.Empty():
		b.WriteString(m.styles.Card.Render(m.styles.Title.Render(p.preview.Title) + "\n" + m.styles.Muted.Render(p.preview.Description)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Button.Render("Quero Ajudar"))
	hint := "  (enter) · esc voltar"
	if m.deps.Previews != nil {
		hint += " · p prévia do site"
	}
	b.WriteString(m.styles.Muted.Render(hint))
	return b.String()
}
