package forms

import (
	"strings"

	"pizzeria_admin_go/models"
	"pizzeria_admin_go/notify"
	"pizzeria_admin_go/picker"
	"pizzeria_admin_go/services"
)

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewCityForm builds the city editor: name plus a state picked through the
// state picker (which nests the country picker).
func NewCityForm(reg *services.Registry, n notify.Notifier) *Form[models.City, models.State] {
	return New(Config[models.City, models.State]{
		Entity:  "city",
		GetByID: reg.Cities.GetByID,
		Create:  reg.Cities.Create,
		Update:  reg.Cities.Update,
		Validate: func(draft models.City) []string {
			var violations []string
			if strings.TrimSpace(draft.Name) == "" {
				violations = append(violations, "Name is required")
			}
			if draft.State == nil {
				violations = append(violations, "State is required")
			}
			return violations
		},
		ID: func(c models.City) string { return c.ID },
		NewRelationPicker: func(onPick func(models.State)) *picker.Picker[models.State] {
			return picker.NewStatePicker(reg, n, onPick)
		},
		ApplyRelation: func(draft models.City, state models.State) models.City {
			s := state
			draft.State = &s
			return draft
		},
		Notifier: n,
	})
}

// cityOwnerValidate covers the rules shared by client, supplier and
// carrier: a name, a city, and a well-formed document number when present.
func cityOwnerValidate(name string, city *models.City, document, documentLabel string, wantDigits int) []string {
	var violations []string
	if strings.TrimSpace(name) == "" {
		violations = append(violations, "Name is required")
	}
	if city == nil {
		violations = append(violations, "City is required")
	}
	if document != "" && len(digits(document)) != wantDigits {
		violations = append(violations, documentLabel+" is invalid")
	}
	return violations
}

func NewClientForm(reg *services.Registry, n notify.Notifier) *Form[models.Client, models.City] {
	return New(Config[models.Client, models.City]{
		Entity:  "client",
		GetByID: reg.Clients.GetByID,
		Create:  reg.Clients.Create,
		Update:  reg.Clients.Update,
		Validate: func(draft models.Client) []string {
			return cityOwnerValidate(draft.Name, draft.City, draft.CPF, "CPF", 11)
		},
		ID: func(c models.Client) string { return c.ID },
		NewRelationPicker: func(onPick func(models.City)) *picker.Picker[models.City] {
			return picker.NewCityPicker(reg, n, onPick)
		},
		ApplyRelation: func(draft models.Client, city models.City) models.Client {
			c := city
			draft.City = &c
			return draft
		},
		Notifier: n,
	})
}

func NewSupplierForm(reg *services.Registry, n notify.Notifier) *Form[models.Supplier, models.City] {
	return New(Config[models.Supplier, models.City]{
		Entity:  "supplier",
		GetByID: reg.Suppliers.GetByID,
		Create:  reg.Suppliers.Create,
		Update:  reg.Suppliers.Update,
		Validate: func(draft models.Supplier) []string {
			return cityOwnerValidate(draft.Name, draft.City, draft.CNPJ, "CNPJ", 14)
		},
		ID: func(s models.Supplier) string { return s.ID },
		NewRelationPicker: func(onPick func(models.City)) *picker.Picker[models.City] {
			return picker.NewCityPicker(reg, n, onPick)
		},
		ApplyRelation: func(draft models.Supplier, city models.City) models.Supplier {
			c := city
			draft.City = &c
			return draft
		},
		Notifier: n,
	})
}

func NewCarrierForm(reg *services.Registry, n notify.Notifier) *Form[models.Carrier, models.City] {
	return New(Config[models.Carrier, models.City]{
		Entity:  "carrier",
		GetByID: reg.Carriers.GetByID,
		Create:  reg.Carriers.Create,
		Update:  reg.Carriers.Update,
		Validate: func(draft models.Carrier) []string {
			return cityOwnerValidate(draft.Name, draft.City, draft.CNPJ, "CNPJ", 14)
		},
		ID: func(c models.Carrier) string { return c.ID },
		NewRelationPicker: func(onPick func(models.City)) *picker.Picker[models.City] {
			return picker.NewCityPicker(reg, n, onPick)
		},
		ApplyRelation: func(draft models.Carrier, city models.City) models.Carrier {
			c := city
			draft.City = &c
			return draft
		},
		Notifier: n,
	})
}
