package adapters

import "pizzeria_admin_go/models"

// ClientFromPayload builds the canonical client from a wire record. The city
// relation is resolved nested-first, then from the cidade*/estado*/pais*
// scalars; absent entirely it stays nil so callers can tell "no city" from
// "city with missing fields".
func ClientFromPayload(raw map[string]any) *models.Client {
	if !complete(raw) {
		return nil
	}
	return &models.Client{
		ID:             stringField(raw, "id"),
		Name:           stringField(raw, "nome", "name"),
		CPF:            stringField(raw, "cpf"),
		RG:             stringField(raw, "rg"),
		Contact:        contactFromPayload(raw),
		Address:        addressFromPayload(raw),
		City:           cityRelation(raw),
		Active:         boolField(raw, "ativo", true),
		CreatedAt:      timeField(raw, "dataCadastro", "createdAt"),
		LastModifiedAt: timeField(raw, "dataUltimaModificacao", "updatedAt"),
	}
}

// ClientsFromPayload decodes a list body.
func ClientsFromPayload(body any) []models.Client {
	rows := asSlice(body)
	clients := make([]models.Client, 0, len(rows))
	for _, row := range rows {
		if c := ClientFromPayload(asMap(row)); c != nil {
			clients = append(clients, *c)
		}
	}
	return clients
}

// ClientToPayload flattens a client for writes: own scalars plus the
// cidadeId foreign key, never the nested city object.
func ClientToPayload(c models.Client) map[string]any {
	payload := map[string]any{
		"nome":     c.Name,
		"cpf":      c.CPF,
		"rg":       c.RG,
		"cidadeId": c.CityID(),
		"ativo":    c.Active,
	}
	putContact(payload, c.Contact)
	putAddress(payload, c.Address)
	if c.ID != "" {
		payload["id"] = c.ID
	}
	return payload
}
