package handlers

import (
	"net/http"

	"pizzeria_admin_go/forms"
	"pizzeria_admin_go/notify"
	"pizzeria_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

func (h *Handlers) newSession(kind string) *formSession {
	rec := &notify.Recorder{}
	var handle formHandle
	switch kind {
	case "city":
		handle = cityFormHandle{forms.NewCityForm(h.registry, rec)}
	case "client":
		handle = clientFormHandle{forms.NewClientForm(h.registry, rec)}
	case "supplier":
		handle = supplierFormHandle{forms.NewSupplierForm(h.registry, rec)}
	case "carrier":
		handle = carrierFormHandle{forms.NewCarrierForm(h.registry, rec)}
	}
	return h.forms.put(handle, rec)
}

// sessionGone answers a fragment request whose editor session has expired
// (server restart, cleanup job): send the browser back to the lists.
func sessionGone(c echo.Context) error {
	if isHX(c) {
		c.Response().Header().Set("HX-Redirect", "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) renderNewForm(c echo.Context, kind, title string) error {
	session := h.newSession(kind)
	return c.HTML(http.StatusOK, partials.FormPage(
		title,
		session.base()+"/submit",
		session.handle.ListPath(),
		session.handle.FieldsHTML(session.base()),
	))
}

// renderEditForm loads the record into a fresh editor session. The whole
// relation chain comes out of that one fetch. A record that cannot be
// loaded never leaves the user on a broken editor: the response is a
// notice page that returns to the list after a short delay.
func (h *Handlers) renderEditForm(c echo.Context, kind, title string) error {
	session := h.newSession(kind)
	listPath := session.handle.ListPath()
	if err := session.handle.Load(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("edit %s: %v", kind, err)
		h.forms.drop(session.id)
		return c.HTML(http.StatusOK, partials.RedirectPage("Failed to load "+kind, listPath, 3))
	}
	return c.HTML(http.StatusOK, partials.FormPage(
		title,
		session.base()+"/submit",
		listPath,
		session.handle.FieldsHTML(session.base()),
	))
}

// SubmitFormHandler persists an editor draft.
// POST /forms/:fid/submit
func (h *Handlers) SubmitFormHandler(c echo.Context) error {
	session := h.forms.get(c.Param("fid"))
	if session == nil {
		return sessionGone(c)
	}

	vals, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}
	session.handle.ApplyForm(vals)

	violations, err := session.handle.Submit(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("submit %s: %v", session.handle.Kind(), err)
	}
	successes, errors := session.rec.Drain()

	if err == nil && len(violations) == 0 {
		listPath := session.handle.ListPath()
		h.forms.drop(session.id)
		if isHX(c) {
			c.Response().Header().Set("HX-Redirect", listPath)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, listPath)
	}
	// Validation or persistence failed; the draft is intact, surface the
	// aggregated message and leave the editor where it is.
	return c.HTML(http.StatusOK, partials.Toasts(successes, errors))
}

func (h *Handlers) NewCityHandler(c echo.Context) error {
	return h.renderNewForm(c, "city", "New city")
}

func (h *Handlers) EditCityHandler(c echo.Context) error {
	return h.renderEditForm(c, "city", "Edit city")
}

func (h *Handlers) NewClientHandler(c echo.Context) error {
	return h.renderNewForm(c, "client", "New client")
}

func (h *Handlers) EditClientHandler(c echo.Context) error {
	return h.renderEditForm(c, "client", "Edit client")
}

func (h *Handlers) NewSupplierHandler(c echo.Context) error {
	return h.renderNewForm(c, "supplier", "New supplier")
}

func (h *Handlers) EditSupplierHandler(c echo.Context) error {
	return h.renderEditForm(c, "supplier", "Edit supplier")
}

func (h *Handlers) NewCarrierHandler(c echo.Context) error {
	return h.renderNewForm(c, "carrier", "New carrier")
}

func (h *Handlers) EditCarrierHandler(c echo.Context) error {
	return h.renderEditForm(c, "carrier", "Edit carrier")
}
