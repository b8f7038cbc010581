package models

// Address is the street-level part of a record; the city itself is held by the
// owning entity as a value copy so the state/country chain is available for
// read-only display.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	ZipCode    string `json:"zipCode"`
}

// Contact groups the phone/email pair shared by clients, suppliers and carriers.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}
