package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pizzeria_admin_go/api"
	"pizzeria_admin_go/models"
	"pizzeria_admin_go/notify"
	"pizzeria_admin_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBackend records requests and serves canned wire payloads.
type testBackend struct {
	mu        sync.Mutex
	getBodies map[string]string // "GET /clientes/cl1" -> body
	requests  []string
	posted    []map[string]any
	failNext  int // http status to fail the next write with, 0 = succeed
}

func (b *testBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		key := r.Method + " " + r.URL.Path
		b.requests = append(b.requests, key)
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			b.posted = append(b.posted, payload)
			if b.failNext != 0 {
				status := b.failNext
				b.failNext = 0
				w.WriteHeader(status)
				w.Write([]byte(`{"message":"write rejected"}`))
				return
			}
			if payload["id"] == nil {
				payload["id"] = "new1"
			}
			payload["dataCadastro"] = "2024-06-01T12:00:00Z"
			json.NewEncoder(w).Encode(payload)
			return
		}

		if body, ok := b.getBodies[key]; ok {
			w.Write([]byte(body))
			return
		}
		if strings.Count(r.URL.Path, "/") == 1 {
			w.Write([]byte(`[]`)) // empty list
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"não encontrado"}`))
	})
}

func newFormFixture(t *testing.T) (*services.Registry, *testBackend, *notify.Recorder) {
	t.Helper()
	backend := &testBackend{getBodies: map[string]string{}}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return services.NewRegistry(api.NewClient(srv.URL, 5*time.Second)), backend, &notify.Recorder{}
}

func TestLoadPopulatesChainFromSingleFetch(t *testing.T) {
	reg, backend, rec := newFormFixture(t)
	backend.getBodies["GET /clientes/cl1"] = `{
		"id":"cl1","nome":"João da Silva","cpf":"12345678901",
		"cidadeId":"c1","cidadeNome":"Curitiba",
		"estadoId":"e1","estadoNome":"Paraná","estadoUf":"PR",
		"paisId":"p1","paisNome":"Brasil"
	}`

	form := NewClientForm(reg, rec)
	require.NoError(t, form.Load(context.Background(), "cl1"))

	draft := form.Draft()
	assert.Equal(t, "João da Silva", draft.Name)
	require.NotNil(t, draft.City)
	assert.Equal(t, "c1", draft.CityID())
	assert.Equal(t, "Paraná (PR)", draft.City.StateLabel())
	assert.Equal(t, "Brasil", draft.City.CountryName())

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, []string{"GET /clientes/cl1"}, backend.requests,
		"the relation chain comes from the one snapshot, never a second fetch")
}

func TestLoadMissingRecordFails(t *testing.T) {
	reg, _, rec := newFormFixture(t)
	form := NewClientForm(reg, rec)
	err := form.Load(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPickingCityUpdatesDraftAndDerivedID(t *testing.T) {
	reg, backend, rec := newFormFixture(t)
	backend.getBodies["GET /cidades"] = `[
		{"id":"c1","nome":"Curitiba","estadoId":"e1","estadoNome":"Paraná","estadoUf":"PR"}
	]`

	form := NewClientForm(reg, rec)
	draft := form.Draft()
	draft.Name = "Maria"
	form.SetDraft(draft)
	assert.Equal(t, "", form.Draft().CityID())

	form.OpenRelationPicker(context.Background())
	p := form.RelationPicker()
	p.Select("c1")
	p.Confirm()

	got := form.Draft()
	require.NotNil(t, got.City)
	assert.Equal(t, "c1", got.CityID(), "id derives from the object, set in the same update")
	assert.Equal(t, "Maria", got.Name, "picking a city leaves the other fields alone")
}

func TestSubmitCreate(t *testing.T) {
	reg, backend, rec := newFormFixture(t)
	form := NewClientForm(reg, rec)

	form.SetDraft(models.Client{
		Name:   "Maria",
		City:   &models.City{ID: "c1", Name: "Curitiba"},
		Active: true,
	})

	saved, violations, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, saved)
	assert.Equal(t, "new1", saved.ID)
	assert.Equal(t, "new1", form.Draft().ID, "draft replaced by the server snapshot")

	backend.mu.Lock()
	require.Len(t, backend.posted, 1)
	assert.Equal(t, "c1", backend.posted[0]["cidadeId"])
	assert.NotContains(t, backend.posted[0], "cidade")
	backend.mu.Unlock()

	successes, _ := rec.Drain()
	require.Len(t, successes, 1)
	assert.Equal(t, "Client saved", successes[0])
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	reg, backend, rec := newFormFixture(t)
	form := NewSupplierForm(reg, rec)
	form.SetDraft(models.Supplier{CNPJ: "123"})

	saved, violations, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Len(t, violations, 3, "name, city and CNPJ all reported together")

	backend.mu.Lock()
	assert.Empty(t, backend.requests)
	backend.mu.Unlock()
	_, errs := rec.Drain()
	assert.Len(t, errs, 1)
}

func TestSubmitPersistFailureKeepsDraft(t *testing.T) {
	reg, backend, rec := newFormFixture(t)
	backend.failNext = http.StatusConflict

	form := NewCarrierForm(reg, rec)
	draft := models.Carrier{
		Name: "Transportes Rápido Sul",
		City: &models.City{ID: "c1", Name: "Curitiba"},
	}
	form.SetDraft(draft)

	saved, violations, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, saved)
	assert.Empty(t, violations)
	assert.Equal(t, draft, form.Draft(), "entered draft preserved exactly for retry")

	_, errs := rec.Drain()
	assert.Len(t, errs, 1)
}

func TestCityFormUsesStatePicker(t *testing.T) {
	reg, backend, rec := newFormFixture(t)
	backend.getBodies["GET /estados"] = `[
		{"id":"e1","nome":"Paraná","uf":"PR","paisId":"p1","paisNome":"Brasil"}
	]`

	form := NewCityForm(reg, rec)
	form.SetDraft(models.City{Name: "Maringá", Active: true})
	form.OpenRelationPicker(context.Background())
	p := form.RelationPicker()
	p.Select("e1")
	p.Confirm()

	draft := form.Draft()
	require.NotNil(t, draft.State)
	assert.Equal(t, "e1", draft.StateID())
	require.NotNil(t, draft.State.Country, "picked state carries its country copy")
}
