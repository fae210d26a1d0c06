package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rsilvagit/ajudaja/internal/model"
)

// NoResults is printed when a list is empty.
const NoResults = "Nenhuma oportunidade encontrada."

// ResultWriter defines how opportunity lists are presented or shared.
type ResultWriter interface {
	WriteOpportunities(opps []model.Opportunity) error
}

// ConsolePrinter writes opportunities as a table.
type ConsolePrinter struct {
	w io.Writer
}

func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

func (cp *ConsolePrinter) WriteOpportunities(opps []model.Opportunity) error {
	if len(opps) == 0 {
		_, err := fmt.Fprintln(cp.w, NoResults)
		return err
	}

	w := tabwriter.NewWriter(cp.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITULO\tORGANIZACAO\tCATEGORIA\tLOCAL\tDATA")
	fmt.Fprintln(w, "--\t------\t-----------\t---------\t-----\t----")
	for _, o := range opps {
		title := o.Title
		if o.IsFeatured {
			title = "★ " + title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, title, o.Organization, o.Category, o.Location, o.Date)
	}
	return w.Flush()
}

// WriteDetails prints every field of one opportunity.
func (cp *ConsolePrinter) WriteDetails(o model.Opportunity) error {
	w := tabwriter.NewWriter(cp.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\n\n", o.Title)
	rows := [][2]string{
		{"Organização", o.Organization},
		{"Categoria", o.Category},
		{"Local", o.Location},
		{"Data", o.Date},
		{"Sobre", o.Description},
		{"Requisitos", o.Requirements},
		{"Telefone", fmt.Sprintf("%s (%s)", o.ContactPhone, o.PhoneURL())},
		{"Email", fmt.Sprintf("%s (%s)", o.ContactEmail, o.MailURL())},
		{"Site", o.Website},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
	}
	return w.Flush()
}

// WriteStates prints state options as a table.
func (cp *ConsolePrinter) WriteStates(states []model.IBGEState) error {
	if len(states) == 0 {
		_, err := fmt.Fprintln(cp.w, "Nenhum estado disponível.")
		return err
	}
	w := tabwriter.NewWriter(cp.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUF\tNOME\tREGIAO")
	for _, s := range states {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Sigla, s.Nome, s.Regiao.Nome)
	}
	return w.Flush()
}

// WriteCities prints city names with their IBGE ids.
func (cp *ConsolePrinter) WriteCities(cities []model.IBGECity) error {
	if len(cities) == 0 {
		_, err := fmt.Fprintln(cp.w, "Nenhuma cidade disponível.")
		return err
	}
	w := tabwriter.NewWriter(cp.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME")
	for _, c := range cities {
		fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Nome)
	}
	return w.Flush()
}
