package tui

import (
	"strings"

	"github.com/rsilvagit/ajudaja/internal/catalog"
)

func (m Model) viewAbout() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Sobre o AjudaJá"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Nossa Missão"))
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Render("Conectar pessoas a oportunidades de voluntariado e doações em suas cidades, facilitando o engajamento em causas sociais e promovendo um impacto positivo na sociedade."))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Como Funciona"))
	b.WriteString("\n")
	steps := [][2]string{
		{"Encontre Oportunidades", "Navegue pelas diversas oportunidades de voluntariado e doações disponíveis em sua região."},
		{"Cadastre-se", "Preencha um formulário simples para se candidatar como voluntário ou fazer uma doação."},
		{"Faça a Diferença", "Participe das ações e ajude a transformar vidas e comunidades."},
	}
	for i, s := range steps {
		b.WriteString(m.styles.Badge.Render(string(rune('1' + i))))
		b.WriteString(" ")
		b.WriteString(m.styles.Body.Render(s[0]))
		b.WriteString("\n   ")
		b.WriteString(m.styles.Muted.Render(s[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Equipe de Desenvolvimento"))
	b.WriteString("\n")
	for _, d := range catalog.Developers() {
		b.WriteString(m.styles.Body.Render(d.Name))
		b.WriteString(m.styles.Muted.Render(" · " + d.Role))
		b.WriteString("\n   ")
		b.WriteString(m.styles.Muted.Render(d.Bio))
		b.WriteString("\n   ")
		b.WriteString(m.styles.Muted.Render(d.GitHub + "  " + d.LinkedIn))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Subtitle.Render("Contato"))
	b.WriteString("\n")
	b.WriteString(m.styles.Body.Render(catalog.ContactEmail + "  " + catalog.ContactPhone))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("© 2023 AjudaJá - Todos os direitos reservados · Versão " + catalog.Version))
	return b.String()
}
