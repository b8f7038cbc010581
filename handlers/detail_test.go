package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The detail page is read-only: the record and its whole location chain
// render as readonly fields, with a link out to the editor but no editor
// form of its own.
func TestCityDetailShowsFullChainReadOnly(t *testing.T) {
	srv := setupApp(t, true, nil, nil)

	_, rows := do(t, http.MethodGet, srv.URL+"/cities?q=curitiba", nil, true)
	id := rowEditID(t, rows, "/cities/")

	resp, body := do(t, http.MethodGet, srv.URL+"/cities/"+id, nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `value="Curitiba" readonly`)
	assert.Contains(t, body, "Paraná (PR)")
	assert.Contains(t, body, "Brasil")
	assert.Contains(t, body, `href="/cities/`+id+`/edit"`)
	assert.NotContains(t, body, `<form id="editor"`)
}

func TestStateDetailShowsCountry(t *testing.T) {
	srv := setupApp(t, true, nil, nil)

	_, rows := do(t, http.MethodGet, srv.URL+"/states?q=catarina", nil, true)
	id := rowEditID(t, rows, "/states/")

	resp, body := do(t, http.MethodGet, srv.URL+"/states/"+id, nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `value="Santa Catarina" readonly`)
	assert.Contains(t, body, `value="SC" readonly`)
	assert.Contains(t, body, "Brasil")
}

// A record that no longer exists sends the browser back to the list, same
// as a broken editor load.
func TestClientDetailMissingRecordRedirectsToList(t *testing.T) {
	srv := setupApp(t, true, nil, nil)

	resp, body := do(t, http.MethodGet, srv.URL+"/clients/does-not-exist", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `url=/clients`)
	assert.Contains(t, body, "Returning to the list")
}
