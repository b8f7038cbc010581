package adapters

import "pizzeria_admin_go/models"

// CityFromPayload builds the canonical city from a wire record. The state
// relation prefers a nested "estado" object and falls back to the estado*
// scalars of the same record.
func CityFromPayload(raw map[string]any) *models.City {
	if !complete(raw) {
		return nil
	}
	city := &models.City{
		ID:             stringField(raw, "id"),
		Name:           stringField(raw, "nome", "name"),
		Active:         boolField(raw, "ativo", true),
		CreatedAt:      timeField(raw, "dataCadastro", "createdAt"),
		LastModifiedAt: timeField(raw, "dataUltimaModificacao", "updatedAt"),
	}
	if nested := asMap(raw["estado"]); complete(nested) {
		city.State = StateFromPayload(nested)
	} else {
		city.State = stateFromScalars(raw)
	}
	return city
}

// cityFromScalars assembles a city from the denormalized cidade* fields of
// an owning record; nil when none are present.
func cityFromScalars(raw map[string]any) *models.City {
	if !hasAny(raw, "cidadeId", "cidadeNome") {
		return nil
	}
	return &models.City{
		ID:     stringField(raw, "cidadeId"),
		Name:   stringField(raw, "cidadeNome"),
		Active: true,
		State:  stateFromScalars(raw),
	}
}

// cityRelation resolves the city relation of an owning record (client,
// supplier, carrier): nested "cidade" object first, cidade* scalars second,
// nil when the record carries neither.
func cityRelation(raw map[string]any) *models.City {
	if nested := asMap(raw["cidade"]); complete(nested) {
		return CityFromPayload(nested)
	}
	return cityFromScalars(raw)
}

// CitiesFromPayload decodes a list body.
func CitiesFromPayload(body any) []models.City {
	rows := asSlice(body)
	cities := make([]models.City, 0, len(rows))
	for _, row := range rows {
		if c := CityFromPayload(asMap(row)); c != nil {
			cities = append(cities, *c)
		}
	}
	return cities
}

// CityToPayload flattens a city for writes: own scalars plus the estadoId
// foreign key.
func CityToPayload(c models.City) map[string]any {
	payload := map[string]any{
		"nome":     c.Name,
		"estadoId": c.StateID(),
		"ativo":    c.Active,
	}
	if c.ID != "" {
		payload["id"] = c.ID
	}
	return payload
}
