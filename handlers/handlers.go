// Package handlers is the HTTP surface of the back office. Pages are
// server-rendered; HTMX drives the dynamic parts (list filtering, the
// picker modal stack, toasts) through fragment endpoints that branch on
// the HX-Request header.
package handlers

import (
	"net/http"
	"strings"

	"pizzeria_admin_go/config"
	"pizzeria_admin_go/middleware"
	"pizzeria_admin_go/services"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the dependencies the routes share.
type Handlers struct {
	cfg      *config.Config
	registry *services.Registry
	sessions *services.SessionStore // nil disables the login wall
	forms    *formSessions
}

func New(cfg *config.Config, registry *services.Registry, sessions *services.SessionStore) *Handlers {
	return &Handlers{
		cfg:      cfg,
		registry: registry,
		sessions: sessions,
		forms:    newFormSessions(formSessionTTL),
	}
}

// FormSessions exposes the editor-session registry for periodic cleanup.
func (h *Handlers) FormSessions() *formSessions {
	return h.forms
}

// Register wires every route. The login pages stay outside the auth wall;
// everything else sits behind RequireAuth.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET("/login", h.LoginHandler)
	e.POST("/login", h.LoginPostHandler)
	e.POST("/logout", h.LogoutHandler)

	g := e.Group("", middleware.RequireAuth(h.sessions))
	g.GET("/", h.HomeHandler)

	g.GET("/countries", h.ListCountriesHandler)
	g.GET("/countries/export", h.ExportCountriesHandler)
	g.GET("/countries/:id", h.CountryDetailHandler)
	g.POST("/countries", h.SaveCountryHandler)
	g.POST("/countries/:id", h.SaveCountryHandler)
	g.DELETE("/countries/:id", h.DeleteCountryHandler)

	g.GET("/states", h.ListStatesHandler)
	g.GET("/states/export", h.ExportStatesHandler)
	g.GET("/states/:id", h.StateDetailHandler)
	g.POST("/states", h.SaveStateHandler)
	g.POST("/states/:id", h.SaveStateHandler)
	g.DELETE("/states/:id", h.DeleteStateHandler)
	g.GET("/fragments/country-options", h.CountryOptionsHandler)

	g.GET("/cities", h.ListCitiesHandler)
	g.GET("/cities/export", h.ExportCitiesHandler)
	g.GET("/cities/new", h.NewCityHandler)
	g.GET("/cities/:id", h.CityDetailHandler)
	g.GET("/cities/:id/edit", h.EditCityHandler)
	g.DELETE("/cities/:id", h.DeleteCityHandler)

	g.GET("/clients", h.ListClientsHandler)
	g.GET("/clients/export", h.ExportClientsHandler)
	g.GET("/clients/new", h.NewClientHandler)
	g.GET("/clients/:id", h.ClientDetailHandler)
	g.GET("/clients/:id/edit", h.EditClientHandler)
	g.DELETE("/clients/:id", h.DeleteClientHandler)

	g.GET("/suppliers", h.ListSuppliersHandler)
	g.GET("/suppliers/export", h.ExportSuppliersHandler)
	g.GET("/suppliers/new", h.NewSupplierHandler)
	g.GET("/suppliers/:id", h.SupplierDetailHandler)
	g.GET("/suppliers/:id/edit", h.EditSupplierHandler)
	g.DELETE("/suppliers/:id", h.DeleteSupplierHandler)

	g.GET("/carriers", h.ListCarriersHandler)
	g.GET("/carriers/export", h.ExportCarriersHandler)
	g.GET("/carriers/new", h.NewCarrierHandler)
	g.GET("/carriers/:id", h.CarrierDetailHandler)
	g.GET("/carriers/:id/edit", h.EditCarrierHandler)
	g.DELETE("/carriers/:id", h.DeleteCarrierHandler)

	g.POST("/forms/:fid/submit", h.SubmitFormHandler)
	g.POST("/forms/:fid/picker/:depth/open", h.PickerOpenHandler)
	g.GET("/forms/:fid/picker/:depth/list", h.PickerListHandler)
	g.POST("/forms/:fid/picker/:depth/select", h.PickerSelectHandler)
	g.POST("/forms/:fid/picker/:depth/confirm", h.PickerConfirmHandler)
	g.POST("/forms/:fid/picker/:depth/new", h.PickerNewHandler)
	g.POST("/forms/:fid/picker/:depth/parent", h.PickerParentHandler)
	g.POST("/forms/:fid/picker/:depth/save", h.PickerSaveHandler)
	g.POST("/forms/:fid/picker/:depth/back", h.PickerBackHandler)
	g.POST("/forms/:fid/picker/:depth/close", h.PickerCloseHandler)
}

// HomeHandler lands on the clients list.
func (h *Handlers) HomeHandler(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/clients")
}

func isHX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func formBool(c echo.Context, name string) bool {
	return c.FormValue(name) == "true" || c.FormValue(name) == "on"
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
