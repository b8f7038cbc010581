package handlers

import (
	"net/http"
	"strings"

	"pizzeria_admin_go/middleware"
	"pizzeria_admin_go/services"
	"pizzeria_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// globalDummyHash is verified against when the submitted email is not the
// admin account, so both branches cost one bcrypt comparison.
var globalDummyHash string

func init() {
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	globalDummyHash = hash
}

// LoginHandler renders the login page.
// GET /login
func (h *Handlers) LoginHandler(c echo.Context) error {
	if h.sessions == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && h.sessions.Validate(cookie.Value) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.HTML(http.StatusOK, partials.LoginPage(""))
}

// LoginPostHandler checks the single admin credential pair and issues a
// session.
// POST /login
func (h *Handlers) LoginPostHandler(c echo.Context) error {
	if h.sessions == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.HTML(http.StatusOK, partials.LoginPage("Email and password are required"))
	}

	hash := h.cfg.AdminPasswordHash
	if !strings.EqualFold(email, h.cfg.AdminEmail) {
		hash = globalDummyHash
	}
	if !services.CheckPassword(password, hash) || !strings.EqualFold(email, h.cfg.AdminEmail) {
		return c.HTML(http.StatusOK, partials.LoginPage("Invalid email or password"))
	}

	token, err := h.sessions.Issue()
	if err != nil {
		c.Logger().Errorf("login: %v", err)
		return c.HTML(http.StatusOK, partials.LoginPage("Something went wrong, try again"))
	}
	middleware.SetSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// LogoutHandler revokes the session and clears the cookie.
// POST /logout
func (h *Handlers) LogoutHandler(c echo.Context) error {
	if h.sessions != nil {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
			h.sessions.Revoke(cookie.Value)
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
