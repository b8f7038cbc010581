package models

import "time"

// State is a federative unit within a country. The Country is a value copy
// taken at fetch time, so a state renders independently of the country's
// live record. Country is nil only while the state is being composed in an
// inline-create form.
type State struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	Abbreviation   string     `json:"abbreviation"` // exactly 2 chars, upper-cased before persistence
	Country        *Country   `json:"country,omitempty"`
	Active         bool       `json:"active"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

func (s State) Persisted() bool {
	return s.ID != ""
}

// Label is the display form used on lists and read-only fields, e.g. "Paraná (PR)".
func (s State) Label() string {
	if s.Abbreviation == "" {
		return s.Name
	}
	return s.Name + " (" + s.Abbreviation + ")"
}

// CountryID derives the foreign key for submission; empty when no country is set.
func (s State) CountryID() string {
	if s.Country == nil {
		return ""
	}
	return s.Country.ID
}
