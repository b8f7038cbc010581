package adapters

import "pizzeria_admin_go/models"

// contactFromPayload and addressFromPayload read the scalar blocks shared by
// client, supplier and carrier records.
func contactFromPayload(raw map[string]any) models.Contact {
	return models.Contact{
		Phone: stringField(raw, "telefone"),
		Email: stringField(raw, "email"),
	}
}

func addressFromPayload(raw map[string]any) models.Address {
	return models.Address{
		Street:     stringField(raw, "endereco", "logradouro"),
		Number:     stringField(raw, "numero"),
		Complement: stringField(raw, "complemento"),
		District:   stringField(raw, "bairro"),
		ZipCode:    stringField(raw, "cep"),
	}
}

// putContact and putAddress flatten the shared blocks into a write payload.
func putContact(payload map[string]any, c models.Contact) {
	payload["telefone"] = c.Phone
	payload["email"] = c.Email
}

func putAddress(payload map[string]any, a models.Address) {
	payload["endereco"] = a.Street
	payload["numero"] = a.Number
	payload["complemento"] = a.Complement
	payload["bairro"] = a.District
	payload["cep"] = a.ZipCode
}
