package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/paises", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","nome":"Brasil"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	body, err := client.Get(context.Background(), "/paises")
	require.NoError(t, err)

	rows, ok := body.([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
}

func TestClientPost_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Brasil", payload["nome"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1","nome":"Brasil"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	body, err := client.Post(context.Background(), "paises", map[string]any{"nome": "Brasil"})
	require.NoError(t, err)

	created, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p1", created["id"])
}

func TestClientErrorCarriesServerMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "message key",
			body:     `{"message":"nome já cadastrado"}`,
			expected: "nome já cadastrado",
		},
		{
			name:     "mensagem key",
			body:     `{"mensagem":"registro inválido"}`,
			expected: "registro inválido",
		},
		{
			name:     "unparseable body",
			body:     `<html>boom</html>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)
			_, err := client.Get(context.Background(), "/paises")
			require.Error(t, err)

			var reqErr *RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, http.StatusBadRequest, reqErr.Status)
			assert.Equal(t, tt.expected, reqErr.Message)
		})
	}
}

func TestClientDelete_EmptyBodyIsFine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/clientes/cl1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	assert.NoError(t, client.Delete(context.Background(), "/clientes", "cl1"))
}

func TestClientContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Get(ctx, "/paises")
	assert.Error(t, err)
}
