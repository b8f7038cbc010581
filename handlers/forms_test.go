package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditFormLoadsFullChainFromOneFetch(t *testing.T) {
	srv := setupApp(t, true, nil, nil)

	_, rows := do(t, http.MethodGet, srv.URL+"/cities?q=curitiba", nil, true)
	id := rowEditID(t, rows, "/cities/")

	resp, body := do(t, http.MethodGet, srv.URL+"/cities/"+id+"/edit", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `value="Curitiba"`)
	assert.Contains(t, body, "Paraná (PR)")
	assert.Contains(t, body, "Brasil")
}

// A record that cannot be loaded must not leave the user on a broken
// editor: the response sends the browser back to the list.
func TestEditFormMissingRecordRedirectsToList(t *testing.T) {
	srv := setupApp(t, true, nil, nil)

	resp, body := do(t, http.MethodGet, srv.URL+"/clients/does-not-exist/edit", nil, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `url=/clients`)
	assert.Contains(t, body, "Returning to the list")
}

func TestSubmitValidationKeepsEditorOpen(t *testing.T) {
	srv := setupApp(t, true, nil, nil)
	fid := openEditor(t, srv.URL, "/clients/new")

	// No name, no city: the aggregated message comes back as a toast and
	// the session stays alive for the retry.
	resp, body := do(t, http.MethodPost, srv.URL+"/forms/"+fid+"/submit",
		url.Values{"name": {""}, "cpf": {"123"}}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("HX-Redirect"))
	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "City is required")
	assert.Contains(t, body, "CPF is invalid")

	resp, _ = do(t, http.MethodPost, srv.URL+"/forms/"+fid+"/submit",
		url.Values{"name": {""}}, true)
	assert.Empty(t, resp.Header.Get("HX-Redirect"), "session survived the failed submit")
}

func TestSubmitUpdatesExistingRecord(t *testing.T) {
	srv := setupApp(t, true, nil, nil)

	_, rows := do(t, http.MethodGet, srv.URL+"/cities?q=londrina", nil, true)
	id := rowEditID(t, rows, "/cities/")
	fid := openEditor(t, srv.URL, "/cities/"+id+"/edit")

	resp, _ := do(t, http.MethodPost, srv.URL+"/forms/"+fid+"/submit",
		url.Values{"name": {"Londrina Norte"}, "active": {"true"}}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/cities", resp.Header.Get("HX-Redirect"))

	_, body := do(t, http.MethodGet, srv.URL+"/cities?q=norte", nil, true)
	assert.Contains(t, body, "Londrina Norte")
}

func TestSubmitExpiredSessionRedirectsHome(t *testing.T) {
	srv := setupApp(t, true, nil, nil)
	resp, _ := do(t, http.MethodPost, srv.URL+"/forms/gone/submit", url.Values{}, true)
	assert.Equal(t, "/", resp.Header.Get("HX-Redirect"))
}

func TestFormSessionCleanup(t *testing.T) {
	sessions := newFormSessions(-time.Hour) // everything already expired
	sessions.put(nil, nil)
	assert.Equal(t, 1, sessions.CleanupExpired())
	assert.Equal(t, 0, sessions.CleanupExpired())
}
