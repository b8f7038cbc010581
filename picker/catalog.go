package picker

import (
	"strings"
	"unicode/utf8"

	"pizzeria_admin_go/models"
	"pizzeria_admin_go/notify"
	"pizzeria_admin_go/services"
)

// containsFold is the list search primitive: case-insensitive substring.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// NewCountryPicker builds the leaf picker: no parent relation.
func NewCountryPicker(reg *services.Registry, n notify.Notifier, onPick func(models.Country)) *Picker[models.Country] {
	return New(Config[models.Country]{
		Entity:    "country",
		FetchList: reg.Countries.List,
		Create:    reg.Countries.Create,
		Validate: func(draft models.Country) []string {
			var violations []string
			if strings.TrimSpace(draft.Name) == "" {
				violations = append(violations, "Name is required")
			}
			if strings.TrimSpace(draft.IsoAbbreviation) == "" {
				violations = append(violations, "Abbreviation is required")
			}
			return violations
		},
		Match: func(item models.Country, query string) bool {
			return containsFold(item.Name, query) || containsFold(item.IsoAbbreviation, query)
		},
		Label:    func(item models.Country) string { return item.Name },
		ID:       func(item models.Country) string { return item.ID },
		Notifier: n,
	}, onPick)
}

// NewStatePicker builds the state picker. Its create form carries a country
// field served by a nested country picker.
func NewStatePicker(reg *services.Registry, n notify.Notifier, onPick func(models.State)) *Picker[models.State] {
	return New(Config[models.State]{
		Entity:    "state",
		FetchList: reg.States.List,
		Create:    reg.States.Create,
		Validate: func(draft models.State) []string {
			var violations []string
			if strings.TrimSpace(draft.Name) == "" {
				violations = append(violations, "Name is required")
			}
			uf := strings.TrimSpace(draft.Abbreviation)
			if uf == "" {
				violations = append(violations, "Abbreviation is required")
			} else if utf8.RuneCountInString(uf) != 2 {
				violations = append(violations, "Abbreviation must be exactly 2 characters")
			}
			if draft.Country == nil {
				violations = append(violations, "Country is required")
			}
			return violations
		},
		Match: func(item models.State, query string) bool {
			return containsFold(item.Name, query) || containsFold(item.Abbreviation, query)
		},
		Label:    func(item models.State) string { return item.Label() },
		ID:       func(item models.State) string { return item.ID },
		NewDraft: func() models.State { return models.State{Active: true} },
		NewParentPicker: func(onParent func(any)) Overlay {
			return NewCountryPicker(reg, n, func(c models.Country) { onParent(c) })
		},
		ApplyParent: func(draft models.State, parent any) models.State {
			if c, ok := parent.(models.Country); ok {
				country := c
				draft.Country = &country
			}
			return draft
		},
		Notifier: n,
	}, onPick)
}

// NewCityPicker builds the city picker. Its create form carries a state
// field served by a nested state picker (which in turn nests a country
// picker). List search matches the city name, the state name and the UF.
func NewCityPicker(reg *services.Registry, n notify.Notifier, onPick func(models.City)) *Picker[models.City] {
	return New(Config[models.City]{
		Entity:    "city",
		FetchList: reg.Cities.List,
		Create:    reg.Cities.Create,
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
		Match: func(item models.City, query string) bool {
			if containsFold(item.Name, query) {
				return true
			}
			if item.State == nil {
				return false
			}
			return containsFold(item.State.Name, query) || containsFold(item.State.Abbreviation, query)
		},
		Label:    func(item models.City) string { return item.Name },
		ID:       func(item models.City) string { return item.ID },
		NewDraft: func() models.City { return models.City{Active: true} },
		NewParentPicker: func(onParent func(any)) Overlay {
			return NewStatePicker(reg, n, func(s models.State) { onParent(s) })
		},
		ApplyParent: func(draft models.City, parent any) models.City {
			if s, ok := parent.(models.State); ok {
				state := s
				draft.State = &state
			}
			return draft
		},
		Notifier: n,
	}, onPick)
}
