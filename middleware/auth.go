package middleware

import (
	"net/http"

	"pizzeria_admin_go/services"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the name of the session cookie
const SessionCookieName = "pizzeria_admin_session"

// RequireAuth guards the back-office routes behind the login wall. When no
// session store is configured (development without ADMIN_PASSWORD_HASH),
// the wall is open.
func RequireAuth(store *services.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store == nil {
				return next(c)
			}

			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || !store.Validate(cookie.Value) {
				clearSessionCookie(c)
				if c.Request().Header.Get("HX-Request") == "true" {
					c.Response().Header().Set("HX-Redirect", "/login")
					return c.NoContent(http.StatusUnauthorized)
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			return next(c)
		}
	}
}

// SetSessionCookie installs the session token on the response.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie (logout).
func ClearSessionCookie(c echo.Context) {
	clearSessionCookie(c)
}
