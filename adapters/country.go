package adapters

import "pizzeria_admin_go/models"

// CountryFromPayload builds the canonical country from a wire record.
// Returns nil when the record is nil or identifies nothing.
func CountryFromPayload(raw map[string]any) *models.Country {
	if !complete(raw) {
		return nil
	}
	return &models.Country{
		ID:              stringField(raw, "id"),
		Name:            stringField(raw, "nome", "name"),
		CallingCode:     stringField(raw, "ddi", "codigoTelefone"),
		IsoAbbreviation: stringField(raw, "sigla"),
	}
}

// countryFromScalars assembles a country from the denormalized pais* fields
// of an owning record; nil when none are present.
func countryFromScalars(raw map[string]any) *models.Country {
	if !hasAny(raw, "paisId", "paisNome") {
		return nil
	}
	return &models.Country{
		ID:              stringField(raw, "paisId"),
		Name:            stringField(raw, "paisNome"),
		CallingCode:     stringField(raw, "paisDdi"),
		IsoAbbreviation: stringField(raw, "paisSigla"),
	}
}

// CountriesFromPayload decodes a list body; rows that decode to nothing are
// skipped rather than surfaced as errors.
func CountriesFromPayload(body any) []models.Country {
	rows := asSlice(body)
	countries := make([]models.Country, 0, len(rows))
	for _, row := range rows {
		if c := CountryFromPayload(asMap(row)); c != nil {
			countries = append(countries, *c)
		}
	}
	return countries
}

// CountryToPayload flattens a country into the wire shape accepted for writes.
func CountryToPayload(c models.Country) map[string]any {
	payload := map[string]any{
		"nome":  c.Name,
		"ddi":   c.CallingCode,
		"sigla": c.IsoAbbreviation,
	}
	if c.ID != "" {
		payload["id"] = c.ID
	}
	return payload
}
