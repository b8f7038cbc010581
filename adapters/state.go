package adapters

import "pizzeria_admin_go/models"

// StateFromPayload builds the canonical state from a wire record. The
// country relation is taken from a nested "pais" object when one is usable,
// otherwise assembled from the pais* scalars, otherwise left nil. A missing
// abbreviation falls back to the UF table keyed by the state's name.
func StateFromPayload(raw map[string]any) *models.State {
	if !complete(raw) {
		return nil
	}
	state := &models.State{
		ID:             stringField(raw, "id"),
		Name:           stringField(raw, "nome", "name"),
		Abbreviation:   upper2(stringField(raw, "uf", "sigla")),
		Active:         boolField(raw, "ativo", true),
		CreatedAt:      timeField(raw, "dataCadastro", "createdAt"),
		LastModifiedAt: timeField(raw, "dataUltimaModificacao", "updatedAt"),
	}
	if nested := asMap(raw["pais"]); complete(nested) {
		state.Country = CountryFromPayload(nested)
	} else {
		state.Country = countryFromScalars(raw)
	}
	if state.Abbreviation == "" {
		state.Abbreviation = LookupUF(state.Name)
	}
	return state
}

// stateFromScalars assembles a state from the denormalized estado* fields of
// an owning record; nil when none are present. The country level is tried
// from the same record's pais* fields.
func stateFromScalars(raw map[string]any) *models.State {
	if !hasAny(raw, "estadoId", "estadoNome") {
		return nil
	}
	state := &models.State{
		ID:           stringField(raw, "estadoId"),
		Name:         stringField(raw, "estadoNome"),
		Abbreviation: upper2(stringField(raw, "estadoUf")),
		Active:       true,
		Country:      countryFromScalars(raw),
	}
	if state.Abbreviation == "" {
		state.Abbreviation = LookupUF(state.Name)
	}
	return state
}

// StatesFromPayload decodes a list body.
func StatesFromPayload(body any) []models.State {
	rows := asSlice(body)
	states := make([]models.State, 0, len(rows))
	for _, row := range rows {
		if s := StateFromPayload(asMap(row)); s != nil {
			states = append(states, *s)
		}
	}
	return states
}

// StateToPayload flattens a state for writes: own scalars plus the paisId
// foreign key, never the nested country object. The abbreviation is
// upper-cased here so nothing below this point sees a lowercase UF.
func StateToPayload(s models.State) map[string]any {
	payload := map[string]any{
		"nome":   s.Name,
		"uf":     upper2(s.Abbreviation),
		"paisId": s.CountryID(),
		"ativo":  s.Active,
	}
	if s.ID != "" {
		payload["id"] = s.ID
	}
	return payload
}
