package models

import "time"

// Client is a pizzeria customer record. City is a value copy carrying the
// full state/country chain.
type Client struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	CPF            string     `json:"cpf"`
	RG             string     `json:"rg"`
	Contact        Contact    `json:"contact"`
	Address        Address    `json:"address"`
	City           *City      `json:"city,omitempty"`
	Active         bool       `json:"active"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty"`
}

func (c Client) Persisted() bool {
	return c.ID != ""
}

// CityID derives the foreign key for submission; empty when no city is set.
func (c Client) CityID() string {
	if c.City == nil {
		return ""
	}
	return c.City.ID
}
