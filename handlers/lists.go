package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pizzeria_admin_go/models"
	"pizzeria_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// listPage assembles a list screen: search box, export link, optional New
// button, and the rows table. The rows tbody is what HX filter requests
// swap in place.
func listPage(title, basePath, query string, headers []string, rowsHTML string, canCreate bool) string {
	var b strings.Builder
	b.WriteString(`<h1>` + title + `</h1>`)
	b.WriteString(`<div class="list-bar">`)
	b.WriteString(partials.SearchBox(basePath, query))
	if canCreate {
		b.WriteString(`<a class="button" href="` + basePath + `/new">New</a>`)
	}
	b.WriteString(`<a class="button" href="` + basePath + `/export?q=` + partials.Text(query) + `">Export</a>`)
	b.WriteString(`</div>`)
	b.WriteString(partials.Table(headers, rowsHTML))
	return b.String()
}

func errorRows(span int) string {
	return `<tbody id="rows"><tr><td colspan="` + strconv.Itoa(span) + `">Failed to load records</td></tr></tbody>`
}

func (h *Handlers) filteredClients(c echo.Context, query string) ([]models.Client, error) {
	items, err := h.registry.Clients.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	matched := make([]models.Client, 0, len(items))
	for _, item := range items {
		cityName := ""
		if item.City != nil {
			cityName = item.City.Name + " " + item.City.StateLabel()
		}
		if containsFold(item.Name, query) || containsFold(item.CPF, query) || containsFold(cityName, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func clientRows(items []models.Client) string {
	var b strings.Builder
	b.WriteString(`<tbody id="rows">`)
	for _, item := range items {
		city, state := "", ""
		if item.City != nil {
			city = item.City.Name
			state = item.City.StateLabel()
		}
		b.WriteString(partials.Cells(
			partials.Text(item.Name),
			partials.Text(item.CPF),
			partials.Text(city),
			partials.Text(state),
			partials.ActiveBadge(item.Active),
			partials.FormatDate(item.CreatedAt),
			partials.RowActions("/clients", item.ID),
		))
	}
	b.WriteString(`</tbody>`)
	return b.String()
}

var clientHeaders = []string{"Name", "CPF", "City", "State", "Status", "Created", ""}

// ListClientsHandler renders the clients list; HX requests get just the
// filtered rows. GET /clients?q=...
func (h *Handlers) ListClientsHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.filteredClients(c, query)
	if err != nil {
		c.Logger().Errorf("list clients: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, errorRows(len(clientHeaders)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch clients")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, clientRows(items))
	}
	body := listPage("Clients", "/clients", query, clientHeaders, clientRows(items), true)
	return c.HTML(http.StatusOK, partials.Layout("Clients", body))
}

// DeleteClientHandler removes a client. HX requests get an empty body so
// the row disappears in place. DELETE /clients/:id
func (h *Handlers) DeleteClientHandler(c echo.Context) error {
	if err := h.registry.Clients.Remove(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("delete client: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to delete client"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete client")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/clients")
}

func (h *Handlers) filteredSuppliers(c echo.Context, query string) ([]models.Supplier, error) {
	items, err := h.registry.Suppliers.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	matched := make([]models.Supplier, 0, len(items))
	for _, item := range items {
		cityName := ""
		if item.City != nil {
			cityName = item.City.Name + " " + item.City.StateLabel()
		}
		if containsFold(item.Name, query) || containsFold(item.TradeName, query) ||
			containsFold(item.CNPJ, query) || containsFold(cityName, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func supplierRows(items []models.Supplier) string {
	var b strings.Builder
	b.WriteString(`<tbody id="rows">`)
	for _, item := range items {
		city := ""
		if item.City != nil {
			city = item.City.Name
		}
		b.WriteString(partials.Cells(
			partials.Text(item.Name),
			partials.Text(item.TradeName),
			partials.Text(item.CNPJ),
			partials.Text(city),
			partials.ActiveBadge(item.Active),
			partials.FormatDate(item.CreatedAt),
			partials.RowActions("/suppliers", item.ID),
		))
	}
	b.WriteString(`</tbody>`)
	return b.String()
}

var supplierHeaders = []string{"Company", "Trade name", "CNPJ", "City", "Status", "Created", ""}

// GET /suppliers?q=...
func (h *Handlers) ListSuppliersHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.filteredSuppliers(c, query)
	if err != nil {
		c.Logger().Errorf("list suppliers: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, errorRows(len(supplierHeaders)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch suppliers")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, supplierRows(items))
	}
	body := listPage("Suppliers", "/suppliers", query, supplierHeaders, supplierRows(items), true)
	return c.HTML(http.StatusOK, partials.Layout("Suppliers", body))
}

// DELETE /suppliers/:id
func (h *Handlers) DeleteSupplierHandler(c echo.Context) error {
	if err := h.registry.Suppliers.Remove(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("delete supplier: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to delete supplier"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete supplier")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/suppliers")
}

func (h *Handlers) filteredCarriers(c echo.Context, query string) ([]models.Carrier, error) {
	items, err := h.registry.Carriers.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	matched := make([]models.Carrier, 0, len(items))
	for _, item := range items {
		cityName := ""
		if item.City != nil {
			cityName = item.City.Name + " " + item.City.StateLabel()
		}
		if containsFold(item.Name, query) || containsFold(item.CNPJ, query) || containsFold(cityName, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func carrierRows(items []models.Carrier) string {
	var b strings.Builder
	b.WriteString(`<tbody id="rows">`)
	for _, item := range items {
		city := ""
		if item.City != nil {
			city = item.City.Name
		}
		b.WriteString(partials.Cells(
			partials.Text(item.Name),
			partials.Text(item.CNPJ),
			partials.Text(city),
			partials.ActiveBadge(item.Active),
			partials.FormatDate(item.CreatedAt),
			partials.RowActions("/carriers", item.ID),
		))
	}
	b.WriteString(`</tbody>`)
	return b.String()
}

var carrierHeaders = []string{"Company", "CNPJ", "City", "Status", "Created", ""}

// GET /carriers?q=...
func (h *Handlers) ListCarriersHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.filteredCarriers(c, query)
	if err != nil {
		c.Logger().Errorf("list carriers: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, errorRows(len(carrierHeaders)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch carriers")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, carrierRows(items))
	}
	body := listPage("Carriers", "/carriers", query, carrierHeaders, carrierRows(items), true)
	return c.HTML(http.StatusOK, partials.Layout("Carriers", body))
}

// DELETE /carriers/:id
func (h *Handlers) DeleteCarrierHandler(c echo.Context) error {
	if err := h.registry.Carriers.Remove(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("delete carrier: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to delete carrier"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete carrier")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/carriers")
}

func (h *Handlers) filteredCities(c echo.Context, query string) ([]models.City, error) {
	items, err := h.registry.Cities.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	matched := make([]models.City, 0, len(items))
	for _, item := range items {
		state := ""
		if item.State != nil {
			state = item.State.Name + " " + item.State.Abbreviation
		}
		if containsFold(item.Name, query) || containsFold(state, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func cityRows(items []models.City) string {
	var b strings.Builder
	b.WriteString(`<tbody id="rows">`)
	for _, item := range items {
		b.WriteString(partials.Cells(
			partials.Text(item.Name),
			partials.Text(item.StateLabel()),
			partials.Text(item.CountryName()),
			partials.ActiveBadge(item.Active),
			partials.FormatDate(item.CreatedAt),
			partials.RowActions("/cities", item.ID),
		))
	}
	b.WriteString(`</tbody>`)
	return b.String()
}

var cityHeaders = []string{"Name", "State", "Country", "Status", "Created", ""}

// GET /cities?q=...
func (h *Handlers) ListCitiesHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.filteredCities(c, query)
	if err != nil {
		c.Logger().Errorf("list cities: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, errorRows(len(cityHeaders)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cities")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, cityRows(items))
	}
	body := listPage("Cities", "/cities", query, cityHeaders, cityRows(items), true)
	return c.HTML(http.StatusOK, partials.Layout("Cities", body))
}

// DELETE /cities/:id
func (h *Handlers) DeleteCityHandler(c echo.Context) error {
	if err := h.registry.Cities.Remove(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("delete city: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to delete city"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete city")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/cities")
}
