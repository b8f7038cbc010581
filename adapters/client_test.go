package adapters

import (
	"testing"

	"pizzeria_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFromPayload_FlatEqualsNested(t *testing.T) {
	nested := ClientFromPayload(map[string]any{
		"id":       "cl1",
		"nome":     "João da Silva",
		"cpf":      "12345678901",
		"telefone": "41999990000",
		"cidade": map[string]any{
			"id":   "c1",
			"nome": "Curitiba",
			"estado": map[string]any{
				"id":   "e1",
				"nome": "Paraná",
				"uf":   "PR",
				"pais": map[string]any{"id": "p1", "nome": "Brasil"},
			},
		},
	})
	flat := ClientFromPayload(map[string]any{
		"id":         "cl1",
		"nome":       "João da Silva",
		"cpf":        "12345678901",
		"telefone":   "41999990000",
		"cidadeId":   "c1",
		"cidadeNome": "Curitiba",
		"estadoId":   "e1",
		"estadoNome": "Paraná",
		"estadoUf":   "PR",
		"paisId":     "p1",
		"paisNome":   "Brasil",
	})

	require.NotNil(t, nested)
	require.NotNil(t, flat)
	assert.Equal(t, nested, flat)
}

func TestClientFromPayload_Defaults(t *testing.T) {
	c := ClientFromPayload(map[string]any{"id": "cl1", "nome": "Maria"})
	require.NotNil(t, c)
	assert.Equal(t, "", c.CPF)
	assert.Equal(t, "", c.Contact.Email)
	assert.Equal(t, "", c.Address.ZipCode)
	assert.Nil(t, c.City)
	assert.True(t, c.Active)
	assert.Nil(t, c.CreatedAt)
}

func TestClientToPayload(t *testing.T) {
	client := models.Client{
		ID:   "cl1",
		Name: "João da Silva",
		CPF:  "12345678901",
		Contact: models.Contact{
			Phone: "41999990000",
			Email: "joao@example.com",
		},
		Address: models.Address{
			Street:   "Rua XV de Novembro",
			Number:   "100",
			District: "Centro",
			ZipCode:  "80020-310",
		},
		City:   &models.City{ID: "c1", Name: "Curitiba"},
		Active: true,
	}

	payload := ClientToPayload(client)
	assert.Equal(t, "c1", payload["cidadeId"])
	assert.Equal(t, "joao@example.com", payload["email"])
	assert.Equal(t, "Rua XV de Novembro", payload["endereco"])
	assert.Equal(t, "cl1", payload["id"])
	assert.NotContains(t, payload, "cidade")
}

func TestSupplierAndCarrierRoundTrip(t *testing.T) {
	rawSupplier := map[string]any{
		"id":                "f1",
		"razaoSocial":       "Moinho Paranaense Ltda",
		"nomeFantasia":      "Moinho PR",
		"cnpj":              "12345678000199",
		"inscricaoEstadual": "9012345",
		"cidadeId":          "c1",
		"cidadeNome":        "Curitiba",
	}
	s := SupplierFromPayload(rawSupplier)
	require.NotNil(t, s)
	assert.Equal(t, "Moinho Paranaense Ltda", s.Name)
	assert.Equal(t, "Moinho PR", s.TradeName)
	require.NotNil(t, s.City)
	assert.Equal(t, "c1", SupplierToPayload(*s)["cidadeId"])

	rawCarrier := map[string]any{
		"id":     "t1",
		"nome":   "Transportes Rápido Sul",
		"cnpj":   "98765432000188",
		"cidade": map[string]any{"id": "c2", "nome": "Londrina"},
	}
	c := CarrierFromPayload(rawCarrier)
	require.NotNil(t, c)
	require.NotNil(t, c.City)
	assert.Equal(t, "c2", CarrierToPayload(*c)["cidadeId"])
}

func TestListDecoders_BareArrayBody(t *testing.T) {
	body := []any{
		map[string]any{"id": "cl1", "nome": "Maria"},
		map[string]any{"id": "cl2", "nome": "José"},
	}
	clients := ClientsFromPayload(body)
	require.Len(t, clients, 2)
	assert.Equal(t, "José", clients[1].Name)

	assert.Empty(t, ClientsFromPayload("not a list"))
}
