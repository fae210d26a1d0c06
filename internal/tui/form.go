package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/form"
	"github.com/rsilvagit/ajudaja/internal/model"
	"github.com/rsilvagit/ajudaja/internal/submit"
)

type formField struct {
	key         string
	label       string
	placeholder string
}

var formFields = []formField{
	{form.FieldName, "Nome Completo *", "Digite seu nome completo"},
	{form.FieldEmail, "Email *", "Digite seu email"},
	{form.FieldPhone, "Telefone *", "(00) 00000-0000"},
	{form.FieldArea, "Área que gostaria de ajudar", "Ex: Organização, Divulgação, Logística"},
	{form.FieldAvailability, "Disponibilidade *", "Ex: Finais de semana, Noites, Horário comercial"},
	{form.FieldMessage, "Mensagem (opcional)", "Conte-nos um pouco sobre você e por que deseja participar"},
}

type submittedMsg struct {
	token   int
	receipt submit.Receipt
	err     error
}

type formState struct {
	opportunityID string
	title         string
	found         bool
	inputs        []textinput.Model
	focus         int
	errors        model.FormErrors
	state         submit.State
	token         int
	cancel        context.CancelFunc
}

func (m Model) mountForm(id string) (Model, tea.Cmd) {
	m.form.abandon()
	opp, found := m.deps.Catalog.FetchByID(context.Background(), id)

	f := formState{
		opportunityID: id,
		title:         opp.Title,
		found:         found,
		errors:        model.FormErrors{},
		token:         m.form.token + 1,
	}
	if found {
		f.inputs = make([]textinput.Model, len(formFields))
		for i, field := range formFields {
			ti := textinput.New()
			ti.Placeholder = field.placeholder
			ti.Prompt = ""
			ti.CharLimit = 200
			f.inputs[i] = ti
		}
	}
	m.form = f
	if !found {
		return m, nil
	}
	return m, m.form.inputs[0].Focus()
}

// abandon stops waiting for an in-flight submission; its result is discarded.
func (f *formState) abandon() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.token++
	if f.state == submit.Submitting {
		f.state = submit.Idle
	}
}

func (f formState) draft() model.VolunteerForm {
	v := func(i int) string { return f.inputs[i].Value() }
	return model.VolunteerForm{
		Name:         v(0),
		Email:        v(1),
		Phone:        v(2),
		Area:         v(3),
		Availability: v(4),
		Message:      v(5),
	}
}

func (f *formState) moveFocus(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	n := len(f.inputs)
	f.focus = ((f.focus+delta)%n + n) % n
	return f.inputs[f.focus].Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.back(), nil
	}
	if !m.form.found {
		if msg.String() == "enter" {
			return m.back(), nil
		}
		return m, nil
	}
	if m.form.state == submit.Submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		return m, m.form.moveFocus(1)
	case "shift+tab", "up":
		return m, m.form.moveFocus(-1)
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.form.focus == len(m.form.inputs)-1 {
			return m.submitForm()
		}
		return m, m.form.moveFocus(1)
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft := m.form.draft()
	m.form.errors = form.Validate(draft)
	if !m.form.errors.OK() {
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.form.cancel = cancel
	m.form.token++
	m.form.state = submit.Submitting

	tok, id, submitter := m.form.token, m.form.opportunityID, m.deps.Submitter
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		receipt, err := submitter.Submit(ctx, id, draft, nil)
		return submittedMsg{token: tok, receipt: receipt, err: err}
	})
}

func (m Model) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.form.token || m.form.state != submit.Submitting {
		return m, nil
	}
	if m.form.cancel != nil {
		m.form.cancel()
		m.form.cancel = nil
	}
	if msg.err != nil {
		m.form.state = submit.Idle
		return m, nil
	}
	m.form.state = submit.Succeeded
	m.deps.Logger.Info("submission confirmed", zap.String("receipt_id", msg.receipt.ID.String()))
	m.alert = &alert{kind: alertSubmitted, title: submit.SuccessTitle, body: submit.SuccessMessage}
	return m, nil
}

func (m Model) viewForm() string {
	f := m.form
	if !f.found {
		return m.styles.ErrorText.Render("Oportunidade não encontrada.") + "\n\n" +
			m.styles.Button.Render("Voltar") + m.styles.Muted.Render("  (esc)")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Cadastro para Voluntariado"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range formFields {
		b.WriteString(m.styles.Body.Render(field.label))
		b.WriteString("\n")
		msg, failed := f.errors[field.key]
		if failed {
			b.WriteString(m.styles.InputError.Render(f.inputs[i].View()))
			b.WriteString("\n")
			b.WriteString(m.styles.ErrorText.Render(msg))
		} else {
			b.WriteString(m.styles.Input.Render(f.inputs[i].View()))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("* Campos obrigatórios"))
	b.WriteString("\n\n")
	if f.state == submit.Submitting {
		b.WriteString(m.spinner.View() + " Enviando...")
	} else {
		b.WriteString(m.styles.Button.Render("Enviar Cadastro"))
		b.WriteString(m.styles.Muted.Render("  (ctrl+s) · esc Cancelar"))
	}
	return b.String()
}
