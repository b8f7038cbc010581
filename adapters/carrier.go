package adapters

import "pizzeria_admin_go/models"

// CarrierFromPayload builds the canonical carrier from a wire record.
func CarrierFromPayload(raw map[string]any) *models.Carrier {
	if !complete(raw) {
		return nil
	}
	return &models.Carrier{
		ID:                stringField(raw, "id"),
		Name:              stringField(raw, "nome", "razaoSocial", "name"),
		CNPJ:              stringField(raw, "cnpj"),
		StateRegistration: stringField(raw, "inscricaoEstadual"),
		Contact:           contactFromPayload(raw),
		Address:           addressFromPayload(raw),
		City:              cityRelation(raw),
		Active:            boolField(raw, "ativo", true),
		CreatedAt:         timeField(raw, "dataCadastro", "createdAt"),
		LastModifiedAt:    timeField(raw, "dataUltimaModificacao", "updatedAt"),
	}
}

// CarriersFromPayload decodes a list body.
func CarriersFromPayload(body any) []models.Carrier {
	rows := asSlice(body)
	carriers := make([]models.Carrier, 0, len(rows))
	for _, row := range rows {
		if c := CarrierFromPayload(asMap(row)); c != nil {
			carriers = append(carriers, *c)
		}
	}
	return carriers
}

// CarrierToPayload flattens a carrier for writes.
func CarrierToPayload(c models.Carrier) map[string]any {
	payload := map[string]any{
		"nome":              c.Name,
		"cnpj":              c.CNPJ,
		"inscricaoEstadual": c.StateRegistration,
		"cidadeId":          c.CityID(),
		"ativo":             c.Active,
	}
	putContact(payload, c.Contact)
	putAddress(payload, c.Address)
	if c.ID != "" {
		payload["id"] = c.ID
	}
	return payload
}
