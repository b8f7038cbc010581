package adapters

import "pizzeria_admin_go/models"

// SupplierFromPayload builds the canonical supplier from a wire record.
func SupplierFromPayload(raw map[string]any) *models.Supplier {
	if !complete(raw) {
		return nil
	}
	return &models.Supplier{
		ID:                stringField(raw, "id"),
		Name:              stringField(raw, "nome", "razaoSocial", "name"),
		TradeName:         stringField(raw, "nomeFantasia"),
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

// SuppliersFromPayload decodes a list body.
func SuppliersFromPayload(body any) []models.Supplier {
	rows := asSlice(body)
	suppliers := make([]models.Supplier, 0, len(rows))
	for _, row := range rows {
		if s := SupplierFromPayload(asMap(row)); s != nil {
			suppliers = append(suppliers, *s)
		}
	}
	return suppliers
}

// SupplierToPayload flattens a supplier for writes.
func SupplierToPayload(s models.Supplier) map[string]any {
	payload := map[string]any{
		"nome":              s.Name,
		"nomeFantasia":      s.TradeName,
		"cnpj":              s.CNPJ,
		"inscricaoEstadual": s.StateRegistration,
		"cidadeId":          s.CityID(),
		"ativo":             s.Active,
	}
	putContact(payload, s.Contact)
	putAddress(payload, s.Address)
	if s.ID != "" {
		payload["id"] = s.ID
	}
	return payload
}
