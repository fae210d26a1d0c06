package model

import (
	"strings"
)

// Opportunity represents a single volunteer or donation listing.
type Opportunity struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
	Location     string `json:"location"` // "Cidade, UF"
	Date         string `json:"date"`     // texto livre ex: "Todos os finais de semana"
	Image        string `json:"image"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	Website      string `json:"website"`
	IsFeatured   bool   `json:"isFeatured"`
}

// StateCode returns the trimmed second comma-separated segment of Location.
// The second return value is false when Location has no comma.
func (o Opportunity) StateCode() (string, bool) {
	parts := strings.Split(o.Location, ",")
	if len(parts) < 2 {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// SearchText returns the fields free-text search looks at, lowercased.
func (o Opportunity) SearchText() []string {
	return []string{
		strings.ToLower(o.Title),
		strings.ToLower(o.Organization),
		strings.ToLower(o.Location),
	}
}

// PhoneURL returns a tel: link for the contact phone.
func (o Opportunity) PhoneURL() string {
	return "tel:" + o.ContactPhone
}

// MailURL returns a mailto: link for the contact email.
func (o Opportunity) MailURL() string {
	return "mailto:" + o.ContactEmail
}

// Category is one of the filter chips shown above opportunity lists.
type Category struct {
	ID    string
	Title string
	Icon  string
}

// Developer is a member of the team listed on the about screen.
type Developer struct {
	ID       string
	Name     string
	Role     string
	Image    string
	Bio      string
	GitHub   string
	LinkedIn string
}

// ImpactStats holds the headline numbers shown on the home screen.
type ImpactStats struct {
	Volunteers    string
	Organizations string
	PeopleHelped  string
}
