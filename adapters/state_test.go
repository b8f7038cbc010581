package adapters

import (
	"testing"

	"pizzeria_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFromPayload_NestedCountry(t *testing.T) {
	raw := map[string]any{
		"id":           "e1",
		"nome":         "Paraná",
		"uf":           "pr",
		"ativo":        true,
		"dataCadastro": "2024-03-01T10:00:00Z",
		"pais": map[string]any{
			"id":    "p1",
			"nome":  "Brasil",
			"ddi":   "55",
			"sigla": "BR",
		},
	}

	s := StateFromPayload(raw)
	require.NotNil(t, s)
	assert.Equal(t, "e1", s.ID)
	assert.Equal(t, "Paraná", s.Name)
	assert.Equal(t, "PR", s.Abbreviation, "abbreviation is upper-cased on the way in")
	require.NotNil(t, s.Country)
	assert.Equal(t, "Brasil", s.Country.Name)
	assert.Equal(t, "BR", s.Country.IsoAbbreviation)
	require.NotNil(t, s.CreatedAt)
	assert.Equal(t, 2024, s.CreatedAt.Year())
}

func TestStateFromPayload_FlatEqualsNested(t *testing.T) {
	nested := StateFromPayload(map[string]any{
		"id":   "e1",
		"nome": "Paraná",
		"uf":   "PR",
		"pais": map[string]any{"id": "p1", "nome": "Brasil"},
	})
	flat := StateFromPayload(map[string]any{
		"id":       "e1",
		"nome":     "Paraná",
		"uf":       "PR",
		"paisId":   "p1",
		"paisNome": "Brasil",
	})

	require.NotNil(t, nested)
	require.NotNil(t, flat)
	assert.Equal(t, nested, flat, "flat scalars and nested object must produce the same graph")
}

func TestStateFromPayload_UFFallback(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected string
	}{
		{
			name:     "known name without uf",
			raw:      map[string]any{"id": "e1", "nome": "Santa Catarina"},
			expected: "SC",
		},
		{
			name:     "explicit uf wins over the table",
			raw:      map[string]any{"id": "e1", "nome": "Paraná", "uf": "XX"},
			expected: "XX",
		},
		{
			name:     "unknown name stays empty",
			raw:      map[string]any{"id": "e1", "nome": "Atlantis"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StateFromPayload(tt.raw)
			require.NotNil(t, s)
			assert.Equal(t, tt.expected, s.Abbreviation)
		})
	}
}

func TestStateFromPayload_MissingCountryIsNil(t *testing.T) {
	s := StateFromPayload(map[string]any{"id": "e1", "nome": "Paraná"})
	require.NotNil(t, s)
	assert.Nil(t, s.Country, "absent relation must be nil, not a placeholder object")
	assert.True(t, s.Active, "active defaults true")
	assert.Nil(t, s.CreatedAt)
}

func TestStateFromPayload_Unusable(t *testing.T) {
	assert.Nil(t, StateFromPayload(nil))
	assert.Nil(t, StateFromPayload(map[string]any{"ativo": true}))
}

func TestStateToPayload(t *testing.T) {
	s := models.State{
		Name:         "Paraná",
		Abbreviation: "pr",
		Country:      &models.Country{ID: "p1", Name: "Brasil"},
		Active:       true,
	}

	payload := StateToPayload(s)
	assert.Equal(t, "PR", payload["uf"], "abbreviation is persisted upper-cased")
	assert.Equal(t, "p1", payload["paisId"])
	assert.NotContains(t, payload, "pais", "writes carry the foreign key, never the nested object")
	assert.NotContains(t, payload, "id", "drafts have no id")
}

func TestStatesFromPayload_PagedBody(t *testing.T) {
	body := map[string]any{
		"content": []any{
			map[string]any{"id": "e1", "nome": "Paraná", "uf": "PR"},
			map[string]any{"ativo": true}, // unusable row is skipped
		},
	}

	states := StatesFromPayload(body)
	require.Len(t, states, 1)
	assert.Equal(t, "Paraná", states[0].Name)
}
