package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Header      lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Badge       lipgloss.Style
	Selected    lipgloss.Style
	Card        lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Input       lipgloss.Style
	InputError  lipgloss.Style
	ErrorText   lipgloss.Style
	Button      lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	c := t.Colors
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Secondary).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(c.Accent),
		Body: lipgloss.NewStyle().
			Foreground(c.Text),
		Muted: lipgloss.NewStyle().
			Foreground(c.TextSecondary),
		Badge: lipgloss.NewStyle().
			Foreground(c.White).
			Background(c.Badge).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.White).
			Background(c.Primary).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary).
			Underline(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(c.TextSecondary).
			Padding(0, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		InputError: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c.Error).
			Padding(0, 1),
		ErrorText: lipgloss.NewStyle().
			Foreground(c.Error),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.White).
			Background(c.Accent).
			Padding(0, 2),
	}
}
