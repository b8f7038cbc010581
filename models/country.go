package models

// Country is the leaf of the location hierarchy. It carries no foreign
// references; states embed a copy of it.
type Country struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	CallingCode     string `json:"callingCode"`
	IsoAbbreviation string `json:"isoAbbreviation"`
}

// Persisted reports whether the entity already has a server-assigned id.
func (c Country) Persisted() bool {
	return c.ID != ""
}
