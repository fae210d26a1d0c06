package model

// VolunteerForm is the draft a user fills in to volunteer for an opportunity.
// Area and Message are optional.
type VolunteerForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Area         string `json:"area"`
	Availability string `json:"availability"`
	Message      string `json:"message"`
}

// FormErrors maps a form field name to the message explaining why it failed.
// Only failing fields are present.
type FormErrors map[string]string

// OK reports whether the form passed validation.
func (e FormErrors) OK() bool {
	return len(e) == 0
}
