package models

import "time"

// City belongs to a state. State is a value copy transitively embedding its
// country; nil only while the city is being composed in an inline-create form.
type City struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	State          *State     `json:"state,omitempty"`
	Active         bool       `json:"active"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

func (c City) Persisted() bool {
	return c.ID != ""
}

// StateID derives the foreign key for submission; empty when no state is set.
func (c City) StateID() string {
	if c.State == nil {
		return ""
	}
	return c.State.ID
}

// StateLabel renders the owning state for read-only display, e.g. "Paraná (PR)".
func (c City) StateLabel() string {
	if c.State == nil {
		return ""
	}
	return c.State.Label()
}

// CountryName renders the transitively owned country for read-only display.
func (c City) CountryName() string {
	if c.State == nil || c.State.Country == nil {
		return ""
	}
	return c.State.Country.Name
}
