package models

import "time"

// Carrier is a freight company used for supply deliveries.
type Carrier struct {
	ID                string     `json:"id,omitempty"`
	Name              string     `json:"name"` // razão social
	CNPJ              string     `json:"cnpj"`
	StateRegistration string     `json:"stateRegistration"`
	Contact           Contact    `json:"contact"`
	Address           Address    `json:"address"`
	City              *City      `json:"city,omitempty"`
	Active            bool       `json:"active"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	LastModifiedAt    *time.Time `json:"lastModifiedAt,omitempty"`
}

func (c Carrier) Persisted() bool {
	return c.ID != ""
}

func (c Carrier) CityID() string {
	if c.City == nil {
		return ""
	}
	return c.City.ID
}
