package adapters

import (
	"testing"

	"pizzeria_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityFromPayload_NestedChain(t *testing.T) {
	raw := map[string]any{
		"id":   "c1",
		"nome": "Curitiba",
		"estado": map[string]any{
			"id":   "e1",
			"nome": "Paraná",
			"uf":   "PR",
			"pais": map[string]any{"id": "p1", "nome": "Brasil", "sigla": "BR"},
		},
	}

	c := CityFromPayload(raw)
	require.NotNil(t, c)
	assert.Equal(t, "Curitiba", c.Name)
	require.NotNil(t, c.State)
	assert.Equal(t, "Paraná (PR)", c.StateLabel())
	assert.Equal(t, "Brasil", c.CountryName())
}

func TestCityFromPayload_FlatEqualsNested(t *testing.T) {
	nested := CityFromPayload(map[string]any{
		"id":   "c1",
		"nome": "Curitiba",
		"estado": map[string]any{
			"id":   "e1",
			"nome": "Paraná",
			"uf":   "PR",
			"pais": map[string]any{"id": "p1", "nome": "Brasil"},
		},
	})
	flat := CityFromPayload(map[string]any{
		"id":         "c1",
		"nome":       "Curitiba",
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

func TestCityFromPayload_FlatWithoutUFDerivesIt(t *testing.T) {
	c := CityFromPayload(map[string]any{
		"id":         "c1",
		"nome":       "Curitiba",
		"estadoId":   "e1",
		"estadoNome": "Paraná",
	})
	require.NotNil(t, c)
	require.NotNil(t, c.State)
	assert.Equal(t, "PR", c.State.Abbreviation)
	assert.Nil(t, c.State.Country)
}

func TestCityFromPayload_NoStateIsNil(t *testing.T) {
	c := CityFromPayload(map[string]any{"id": "c1", "nome": "Curitiba"})
	require.NotNil(t, c)
	assert.Nil(t, c.State)
	assert.Equal(t, "", c.StateLabel())
	assert.Equal(t, "", c.CountryName())
}

func TestCityFromPayload_IncompleteNestedFallsBackToScalars(t *testing.T) {
	c := CityFromPayload(map[string]any{
		"id":         "c1",
		"nome":       "Curitiba",
		"estado":     map[string]any{"ativo": true}, // names nothing
		"estadoId":   "e1",
		"estadoNome": "Paraná",
	})
	require.NotNil(t, c)
	require.NotNil(t, c.State)
	assert.Equal(t, "e1", c.State.ID)
}

func TestCityToPayload(t *testing.T) {
	c := models.City{
		Name:   "Curitiba",
		State:  &models.State{ID: "e1", Name: "Paraná", Abbreviation: "PR"},
		Active: true,
	}

	payload := CityToPayload(c)
	assert.Equal(t, "e1", payload["estadoId"])
	assert.NotContains(t, payload, "estado")
	assert.NotContains(t, payload, "id")
}

func TestCityToPayload_NoState(t *testing.T) {
	payload := CityToPayload(models.City{Name: "Curitiba"})
	assert.Equal(t, "", payload["estadoId"])
}
