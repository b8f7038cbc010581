package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizzeria_admin_go/api"
	"pizzeria_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, handler http.Handler) *Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRegistry(api.NewClient(srv.URL, 5*time.Second))
}

func TestStateServiceList_DecodesWirePayload(t *testing.T) {
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/estados", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"e1","nome":"Paraná","uf":"PR","paisId":"p1","paisNome":"Brasil"},
			{"id":"e2","nome":"Santa Catarina","pais":{"id":"p1","nome":"Brasil"}}
		]`))
	}))

	states, err := reg.States.List(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.NotNil(t, states[0].Country)
	assert.Equal(t, "Brasil", states[0].Country.Name)
	assert.Equal(t, "SC", states[1].Abbreviation, "UF derived from the name table")
}

func TestGetByID_NotFoundIsNilNil(t *testing.T) {
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"cidade não encontrada"}`))
	}))

	city, err := reg.Cities.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, city)
}

func TestCreate_FlattensAndDecodesBack(t *testing.T) {
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "PR", payload["uf"])
		assert.Equal(t, "p1", payload["paisId"])
		assert.NotContains(t, payload, "pais")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"e9","nome":"Paraná","uf":"PR","paisId":"p1","paisNome":"Brasil","dataCadastro":"2024-03-01T10:00:00Z"}`))
	}))

	created, err := reg.States.Create(context.Background(), models.State{
		Name:         "Paraná",
		Abbreviation: "pr",
		Country:      &models.Country{ID: "p1", Name: "Brasil"},
		Active:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "e9", created.ID)
	require.NotNil(t, created.CreatedAt, "timestamps come back server-assigned")
	require.NotNil(t, created.Country)
}

func TestCreate_ServerFailureSurfacesMessage(t *testing.T) {
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"uf já cadastrada"}`))
	}))

	_, err := reg.States.Create(context.Background(), models.State{Name: "Paraná", Abbreviation: "PR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uf já cadastrada")
}

func TestRemove(t *testing.T) {
	var deleted string
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deleted = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, reg.Suppliers.Remove(context.Background(), "f1"))
	assert.Equal(t, "DELETE /fornecedores/f1", deleted)
}
