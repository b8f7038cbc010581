package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The full inline-create cascade over the fragment endpoints: starting
// from an empty database, a client editor drills Country → State → City,
// every level created inline, and ends with the whole chain on the
// editor's relation block.
func TestPickerCascadeOverHTTP(t *testing.T) {
	srv := setupApp(t, false, nil, nil)
	fid := openEditor(t, srv.URL, "/clients/new")
	base := srv.URL + "/forms/" + fid + "/picker/"

	resp, body := do(t, http.MethodPost, base+"0/open", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Select a city")
	assert.Contains(t, body, "No records")

	// Drill into create forms all the way down.
	_, body = do(t, http.MethodPost, base+"0/new", nil, true)
	assert.Contains(t, body, `name="name"`)

	_, body = do(t, http.MethodPost, base+"0/parent", url.Values{"name": {"Curitiba"}, "active": {"true"}}, true)
	assert.Contains(t, body, "Select a state")

	_, body = do(t, http.MethodPost, base+"1/new", nil, true)
	_, body = do(t, http.MethodPost, base+"1/parent",
		url.Values{"name": {"Paraná"}, "abbreviation": {"pr"}, "active": {"true"}}, true)
	assert.Contains(t, body, "Select a country")

	_, body = do(t, http.MethodPost, base+"2/new", nil, true)
	_, body = do(t, http.MethodPost, base+"2/save",
		url.Values{"name": {"Brasil"}, "callingCode": {"55"}, "isoAbbreviation": {"BR"}}, true)
	// Country modal closed, state entry form shows the picked country.
	assert.NotContains(t, body, "Select a country")
	assert.Contains(t, body, "Brasil")

	_, body = do(t, http.MethodPost, base+"1/save",
		url.Values{"name": {"Paraná"}, "abbreviation": {"pr"}, "active": {"true"}}, true)
	assert.NotContains(t, body, "Select a state")
	assert.Contains(t, body, "Paraná (PR)", "lowercase uf persisted upper-cased")

	_, body = do(t, http.MethodPost, base+"0/save",
		url.Values{"name": {"Curitiba"}, "active": {"true"}}, true)
	// Whole stack gone; the editor's relation block carries the chain.
	assert.NotContains(t, body, "Select a city")
	assert.Contains(t, body, `id="relation-chain" hx-swap-oob="true"`)
	assert.Contains(t, body, "Curitiba")
	assert.Contains(t, body, "Paraná (PR)")
	assert.Contains(t, body, "Brasil")

	resp, _ = do(t, http.MethodPost, srv.URL+"/forms/"+fid+"/submit",
		url.Values{"name": {"João da Silva"}, "cpf": {"12345678901"}, "active": {"true"}}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/clients", resp.Header.Get("HX-Redirect"))

	_, body = do(t, http.MethodGet, srv.URL+"/clients", nil, true)
	assert.Contains(t, body, "João da Silva")
	assert.Contains(t, body, "Curitiba")
}

func TestPickerSelectExistingRecord(t *testing.T) {
	srv := setupApp(t, true, nil, nil)
	fid := openEditor(t, srv.URL, "/cities/new")
	base := srv.URL + "/forms/" + fid + "/picker/"

	_, body := do(t, http.MethodPost, base+"0/open", nil, true)
	assert.Contains(t, body, "Select a state")
	assert.Contains(t, body, "Paraná (PR)")

	// Filter, select, confirm.
	_, body = do(t, http.MethodGet, base+"0/list?q=santa", nil, true)
	assert.Contains(t, body, "Santa Catarina")
	assert.NotContains(t, body, "São Paulo")

	idPattern := pickRowID(t, body)
	_, body = do(t, http.MethodPost, base+"0/select", url.Values{"id": {idPattern}}, true)
	assert.Contains(t, body, "selected")

	_, body = do(t, http.MethodPost, base+"0/confirm", nil, true)
	assert.NotContains(t, body, "Select a state")
	assert.Contains(t, body, "Santa Catarina (SC)")
}

func TestPickerValidationKeepsEntryFormOpen(t *testing.T) {
	srv := setupApp(t, false, nil, nil)
	fid := openEditor(t, srv.URL, "/cities/new")
	base := srv.URL + "/forms/" + fid + "/picker/"

	do(t, http.MethodPost, base+"0/open", nil, true)
	do(t, http.MethodPost, base+"0/new", nil, true)
	_, body := do(t, http.MethodPost, base+"0/save", url.Values{"name": {""}}, true)

	// Still in the entry form, all violations in one toast.
	assert.Contains(t, body, `name="name"`)
	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "Country is required")
}

// A fresh inline-create form starts with the active flag checked, matching
// the standalone record forms.
func TestPickerNewFormDefaultsActiveChecked(t *testing.T) {
	srv := setupApp(t, false, nil, nil)
	fid := openEditor(t, srv.URL, "/cities/new")
	base := srv.URL + "/forms/" + fid + "/picker/"

	do(t, http.MethodPost, base+"0/open", nil, true)
	_, body := do(t, http.MethodPost, base+"0/new", nil, true)
	assert.Contains(t, body, `name="active" value="true" checked`)
}

func TestPickerCloseDiscardsEverything(t *testing.T) {
	srv := setupApp(t, true, nil, nil)
	fid := openEditor(t, srv.URL, "/cities/new")
	base := srv.URL + "/forms/" + fid + "/picker/"

	do(t, http.MethodPost, base+"0/open", nil, true)
	do(t, http.MethodPost, base+"0/new", nil, true)
	_, body := do(t, http.MethodPost, base+"0/close", nil, true)

	assert.NotContains(t, body, "Select a state")
	// Relation block still renders, unpicked.
	assert.Contains(t, body, `id="relation-chain"`)
}

func TestPickerExpiredSessionRedirects(t *testing.T) {
	srv := setupApp(t, false, nil, nil)
	resp, _ := do(t, http.MethodPost, srv.URL+"/forms/nope/picker/0/open", nil, true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("HX-Redirect"))
}
