package models

import "time"

// Supplier is an ingredient/goods provider. Identified by CNPJ rather than
// CPF; otherwise shaped like the other city-owning records.
type Supplier struct {
	ID                string     `json:"id,omitempty"`
	Name              string     `json:"name"` // razão social
	TradeName         string     `json:"tradeName"`
	CNPJ              string     `json:"cnpj"`
	StateRegistration string     `json:"stateRegistration"`
	Contact           Contact    `json:"contact"`
	Address           Address    `json:"address"`
	City              *City      `json:"city,omitempty"`
	Active            bool       `json:"active"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	LastModifiedAt    *time.Time `json:"lastModifiedAt,omitempty"`
}

func (s Supplier) Persisted() bool {
	return s.ID != ""
}

func (s Supplier) CityID() string {
	if s.City == nil {
		return ""
	}
	return s.City.ID
}
