package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pizzeria_admin_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, store *services.SessionStore, prep func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	if prep != nil {
		prep(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth(store)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireAuthWithoutStoreIsOpen(t *testing.T) {
	rec := runAuth(t, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	rec := runAuth(t, store, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthHXRedirect(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	rec := runAuth(t, store, func(req *http.Request) {
		req.Header.Set("HX-Request", "true")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
}

func TestRequireAuthAcceptsLiveSession(t *testing.T) {
	store := services.NewSessionStore(time.Hour)
	token, err := store.Issue()
	require.NoError(t, err)

	rec := runAuth(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsExpiredSession(t *testing.T) {
	store := services.NewSessionStore(-time.Minute) // already expired on issue
	token, err := store.Issue()
	require.NoError(t, err)

	rec := runAuth(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
