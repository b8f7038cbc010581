package handlers

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"
	"time"

	"pizzeria_admin_go/config"
	"pizzeria_admin_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginTestApp(t *testing.T) (string, *http.Client) {
	t.Helper()

	hash, err := services.HashPassword("segredo123")
	require.NoError(t, err)
	cfg := &config.Config{
		AdminEmail:        "admin@pizzeria.local",
		AdminPasswordHash: hash,
	}
	srv := setupApp(t, false, services.NewSessionStore(time.Hour), cfg)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv.URL, &http.Client{Jar: jar}
}

func TestLoginWallBlocksAnonymous(t *testing.T) {
	base, client := loginTestApp(t)

	resp, err := client.Get(base + "/clients")
	require.NoError(t, err)
	defer resp.Body.Close()
	// Followed the redirect to the login page.
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	base, client := loginTestApp(t)

	resp, err := client.PostForm(base+"/login", url.Values{
		"email": {"admin@pizzeria.local"}, "password": {"segredo123"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEqual(t, "/login", resp.Request.URL.Path)

	resp, err = client.Get(base + "/clients")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/clients", resp.Request.URL.Path)

	resp, err = client.PostForm(base+"/logout", url.Values{})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(base + "/clients")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	base, client := loginTestApp(t)

	resp, err := client.PostForm(base+"/login", url.Values{
		"email": {"admin@pizzeria.local"}, "password": {"wrong"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Invalid email or password")
}
