package handlers

import (
	"net/http"
	"strings"
	"time"

	"pizzeria_admin_go/models"
	"pizzeria_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// Detail pages are read-only: every field renders through ReadonlyField,
// the location chain included, with links out to the editor and the list.
// A record that cannot be loaded gets the same notice-then-redirect page
// the editors use.

func detailPage(title, listPath, editPath, fieldsHTML string) string {
	var b strings.Builder
	b.WriteString(`<h1>` + partials.Text(title) + `</h1>`)
	b.WriteString(`<div class="detail">` + fieldsHTML + `</div>`)
	b.WriteString(`<div class="actions">`)
	if editPath != "" {
		b.WriteString(`<a href="` + editPath + `">Edit</a> `)
	}
	b.WriteString(`<a href="` + listPath + `">Back to list</a></div>`)
	return partials.Layout(title, b.String())
}

func detailLoadFailed(c echo.Context, kind, listPath string, err error) error {
	c.Logger().Errorf("%s detail: %v", kind, err)
	return c.HTML(http.StatusOK, partials.RedirectPage("Failed to load "+kind, listPath, 3))
}

func detailNotFound(c echo.Context, kind, listPath string) error {
	return c.HTML(http.StatusOK, partials.RedirectPage("The "+kind+" no longer exists", listPath, 3))
}

func statusDetail(active bool, created, modified *time.Time) string {
	status := "Inactive"
	if active {
		status = "Active"
	}
	return partials.ReadonlyField("Status", status) +
		partials.ReadonlyField("Created", partials.FormatDate(created)) +
		partials.ReadonlyField("Last modified", partials.FormatDate(modified))
}

func contactDetail(contact models.Contact) string {
	return partials.ReadonlyField("Phone", contact.Phone) +
		partials.ReadonlyField("Email", contact.Email)
}

func addressDetail(address models.Address) string {
	return partials.ReadonlyField("Street", address.Street) +
		partials.ReadonlyField("Number", address.Number) +
		partials.ReadonlyField("Complement", address.Complement) +
		partials.ReadonlyField("District", address.District) +
		partials.ReadonlyField("ZIP code", address.ZipCode)
}

func cityChainDetail(city *models.City) string {
	name, state, country := "", "", ""
	if city != nil {
		name = city.Name
		state = city.StateLabel()
		country = city.CountryName()
	}
	return partials.ReadonlyField("City", name) +
		partials.ReadonlyField("State", state) +
		partials.ReadonlyField("Country", country)
}

// GET /countries/:id
func (h *Handlers) CountryDetailHandler(c echo.Context) error {
	item, err := h.registry.Countries.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return detailLoadFailed(c, "country", "/countries", err)
	}
	if item == nil {
		return detailNotFound(c, "country", "/countries")
	}
	fields := partials.ReadonlyField("Name", item.Name) +
		partials.ReadonlyField("Calling code", item.CallingCode) +
		partials.ReadonlyField("Abbreviation", item.IsoAbbreviation)
	return c.HTML(http.StatusOK, detailPage(item.Name, "/countries", "", fields))
}

// GET /states/:id
func (h *Handlers) StateDetailHandler(c echo.Context) error {
	item, err := h.registry.States.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return detailLoadFailed(c, "state", "/states", err)
	}
	if item == nil {
		return detailNotFound(c, "state", "/states")
	}
	country := ""
	if item.Country != nil {
		country = item.Country.Name
	}
	fields := partials.ReadonlyField("Name", item.Name) +
		partials.ReadonlyField("UF", item.Abbreviation) +
		partials.ReadonlyField("Country", country) +
		statusDetail(item.Active, item.CreatedAt, item.LastModifiedAt)
	return c.HTML(http.StatusOK, detailPage(item.Label(), "/states", "", fields))
}

// GET /cities/:id
func (h *Handlers) CityDetailHandler(c echo.Context) error {
	item, err := h.registry.Cities.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return detailLoadFailed(c, "city", "/cities", err)
	}
	if item == nil {
		return detailNotFound(c, "city", "/cities")
	}
	fields := partials.ReadonlyField("Name", item.Name) +
		partials.ReadonlyField("State", item.StateLabel()) +
		partials.ReadonlyField("Country", item.CountryName()) +
		statusDetail(item.Active, item.CreatedAt, item.LastModifiedAt)
	return c.HTML(http.StatusOK, detailPage(item.Name, "/cities", "/cities/"+item.ID+"/edit", fields))
}

// GET /clients/:id
func (h *Handlers) ClientDetailHandler(c echo.Context) error {
	item, err := h.registry.Clients.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return detailLoadFailed(c, "client", "/clients", err)
	}
	if item == nil {
		return detailNotFound(c, "client", "/clients")
	}
	fields := partials.ReadonlyField("Name", item.Name) +
		partials.ReadonlyField("CPF", item.CPF) +
		partials.ReadonlyField("RG", item.RG) +
		contactDetail(item.Contact) +
		addressDetail(item.Address) +
		cityChainDetail(item.City) +
		statusDetail(item.Active, item.CreatedAt, item.LastModifiedAt)
	return c.HTML(http.StatusOK, detailPage(item.Name, "/clients", "/clients/"+item.ID+"/edit", fields))
}

// GET /suppliers/:id
func (h *Handlers) SupplierDetailHandler(c echo.Context) error {
	item, err := h.registry.Suppliers.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return detailLoadFailed(c, "supplier", "/suppliers", err)
	}
	if item == nil {
		return detailNotFound(c, "supplier", "/suppliers")
	}
	fields := partials.ReadonlyField("Company name", item.Name) +
		partials.ReadonlyField("Trade name", item.TradeName) +
		partials.ReadonlyField("CNPJ", item.CNPJ) +
		partials.ReadonlyField("State registration", item.StateRegistration) +
		contactDetail(item.Contact) +
		addressDetail(item.Address) +
		cityChainDetail(item.City) +
		statusDetail(item.Active, item.CreatedAt, item.LastModifiedAt)
	return c.HTML(http.StatusOK, detailPage(item.Name, "/suppliers", "/suppliers/"+item.ID+"/edit", fields))
}

// GET /carriers/:id
func (h *Handlers) CarrierDetailHandler(c echo.Context) error {
	item, err := h.registry.Carriers.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return detailLoadFailed(c, "carrier", "/carriers", err)
	}
	if item == nil {
		return detailNotFound(c, "carrier", "/carriers")
	}
	fields := partials.ReadonlyField("Company name", item.Name) +
		partials.ReadonlyField("CNPJ", item.CNPJ) +
		partials.ReadonlyField("State registration", item.StateRegistration) +
		contactDetail(item.Contact) +
		addressDetail(item.Address) +
		cityChainDetail(item.City) +
		statusDetail(item.Active, item.CreatedAt, item.LastModifiedAt)
	return c.HTML(http.StatusOK, detailPage(item.Name, "/carriers", "/carriers/"+item.ID+"/edit", fields))
}
