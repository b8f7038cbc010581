package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"pizzeria_admin_go/models"
	"pizzeria_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// Countries and states are flat records without a picker workflow of their
// own: the list page carries an inline create/edit form, and the state
// form's country dropdown is fed by an option fragment.

func countryRows(items []models.Country) string {
	var b strings.Builder
	b.WriteString(`<tbody id="rows">`)
	for _, item := range items {
		b.WriteString(partials.Cells(
			partials.Text(item.Name),
			partials.Text(item.CallingCode),
			partials.Text(item.IsoAbbreviation),
			partials.RowActions("/countries", item.ID),
		))
	}
	b.WriteString(`</tbody>`)
	return b.String()
}

var countryHeaders = []string{"Name", "Calling code", "Abbreviation", ""}

func countryForm() string {
	return `<form class="inline-form" hx-post="/countries" hx-target="#editor-result" hx-swap="innerHTML">` +
		partials.TextInput("name", "Name", "") +
		partials.TextInput("callingCode", "Calling code", "") +
		partials.TextInput("isoAbbreviation", "Abbreviation", "") +
		`<button type="submit">Add country</button></form><div id="editor-result"></div>`
}

// GET /countries?q=...
func (h *Handlers) ListCountriesHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.filteredCountries(c, query)
	if err != nil {
		c.Logger().Errorf("list countries: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, errorRows(len(countryHeaders)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch countries")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, countryRows(items))
	}
	body := listPage("Countries", "/countries", query, countryHeaders, countryRows(items), false) + countryForm()
	return c.HTML(http.StatusOK, partials.Layout("Countries", body))
}

func (h *Handlers) filteredCountries(c echo.Context, query string) ([]models.Country, error) {
	items, err := h.registry.Countries.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	matched := make([]models.Country, 0, len(items))
	for _, item := range items {
		if containsFold(item.Name, query) || containsFold(item.IsoAbbreviation, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// SaveCountryHandler creates or updates a country.
// POST /countries and POST /countries/:id
func (h *Handlers) SaveCountryHandler(c echo.Context) error {
	draft := models.Country{
		ID:              c.Param("id"),
		Name:            strings.TrimSpace(c.FormValue("name")),
		CallingCode:     strings.TrimSpace(c.FormValue("callingCode")),
		IsoAbbreviation: strings.TrimSpace(c.FormValue("isoAbbreviation")),
	}
	var violations []string
	if draft.Name == "" {
		violations = append(violations, "Name is required")
	}
	if draft.IsoAbbreviation == "" {
		violations = append(violations, "Abbreviation is required")
	}
	if len(violations) > 0 {
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{strings.Join(violations, "; ")}))
		}
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(violations, "; "))
	}

	var err error
	if draft.ID == "" {
		_, err = h.registry.Countries.Create(c.Request().Context(), draft)
	} else {
		_, err = h.registry.Countries.Update(c.Request().Context(), draft.ID, draft)
	}
	if err != nil {
		c.Logger().Errorf("save country: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to save country"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save country")
	}
	if isHX(c) {
		c.Response().Header().Set("HX-Redirect", "/countries")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/countries")
}

// DELETE /countries/:id
func (h *Handlers) DeleteCountryHandler(c echo.Context) error {
	if err := h.registry.Countries.Remove(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("delete country: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to delete country"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete country")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/countries")
}

// CountryOptionsHandler feeds the state form's country dropdown: HTML
// option elements for HTMX, JSON otherwise.
// GET /fragments/country-options?selected=xxx
func (h *Handlers) CountryOptionsHandler(c echo.Context) error {
	items, err := h.registry.Countries.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("country options: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, `<option value="">Error loading countries</option>`)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch countries")
	}

	if isHX(c) {
		selected := c.QueryParam("selected")
		html := `<option value="">Select a country</option>`
		for _, item := range items {
			attr := ""
			if item.ID == selected {
				attr = " selected"
			}
			html += `<option value="` + partials.Text(item.ID) + `"` + attr + `>` + partials.Text(item.Name) + `</option>`
		}
		return c.HTML(http.StatusOK, html)
	}

	var result []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	for _, item := range items {
		result = append(result, struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}{item.ID, item.Name})
	}
	return c.JSON(http.StatusOK, result)
}

func stateRows(items []models.State) string {
	var b strings.Builder
	b.WriteString(`<tbody id="rows">`)
	for _, item := range items {
		country := ""
		if item.Country != nil {
			country = item.Country.Name
		}
		b.WriteString(partials.Cells(
			partials.Text(item.Name),
			partials.Text(item.Abbreviation),
			partials.Text(country),
			partials.ActiveBadge(item.Active),
			partials.FormatDate(item.CreatedAt),
			partials.RowActions("/states", item.ID),
		))
	}
	b.WriteString(`</tbody>`)
	return b.String()
}

var stateHeaders = []string{"Name", "UF", "Country", "Status", "Created", ""}

func stateForm() string {
	return `<form class="inline-form" hx-post="/states" hx-target="#editor-result" hx-swap="innerHTML">` +
		partials.TextInput("name", "Name", "") +
		partials.TextInput("abbreviation", "UF", "") +
		`<label>Country<select name="countryId" hx-get="/fragments/country-options" hx-trigger="load" hx-target="this" hx-swap="innerHTML">` +
		`<option value="">Loading...</option></select></label>` +
		partials.CheckboxInput("active", "Active", true) +
		`<button type="submit">Add state</button></form><div id="editor-result"></div>`
}

// GET /states?q=...
func (h *Handlers) ListStatesHandler(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	items, err := h.filteredStates(c, query)
	if err != nil {
		c.Logger().Errorf("list states: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, errorRows(len(stateHeaders)))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch states")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, stateRows(items))
	}
	body := listPage("States", "/states", query, stateHeaders, stateRows(items), false) + stateForm()
	return c.HTML(http.StatusOK, partials.Layout("States", body))
}

func (h *Handlers) filteredStates(c echo.Context, query string) ([]models.State, error) {
	items, err := h.registry.States.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}
	matched := make([]models.State, 0, len(items))
	for _, item := range items {
		country := ""
		if item.Country != nil {
			country = item.Country.Name
		}
		if containsFold(item.Name, query) || containsFold(item.Abbreviation, query) || containsFold(country, query) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// SaveStateHandler creates or updates a state. The posted countryId is
// resolved to the full country record so the draft carries the relation,
// not just a foreign key.
// POST /states and POST /states/:id
func (h *Handlers) SaveStateHandler(c echo.Context) error {
	draft := models.State{
		ID:           c.Param("id"),
		Name:         strings.TrimSpace(c.FormValue("name")),
		Abbreviation: strings.TrimSpace(c.FormValue("abbreviation")),
		Active:       formBool(c, "active"),
	}

	var violations []string
	if draft.Name == "" {
		violations = append(violations, "Name is required")
	}
	if draft.Abbreviation == "" {
		violations = append(violations, "Abbreviation is required")
	} else if utf8.RuneCountInString(draft.Abbreviation) != 2 {
		violations = append(violations, "Abbreviation must be exactly 2 characters")
	}

	countryID := strings.TrimSpace(c.FormValue("countryId"))
	if countryID == "" {
		violations = append(violations, "Country is required")
	} else {
		country, err := h.registry.Countries.GetByID(c.Request().Context(), countryID)
		if err != nil {
			c.Logger().Errorf("save state: %v", err)
			if isHX(c) {
				return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to save state"}))
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save state")
		}
		if country == nil {
			violations = append(violations, "Country is required")
		}
		draft.Country = country
	}

	if len(violations) > 0 {
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{strings.Join(violations, "; ")}))
		}
		return echo.NewHTTPError(http.StatusBadRequest, strings.Join(violations, "; "))
	}

	var err error
	if draft.ID == "" {
		_, err = h.registry.States.Create(c.Request().Context(), draft)
	} else {
		_, err = h.registry.States.Update(c.Request().Context(), draft.ID, draft)
	}
	if err != nil {
		c.Logger().Errorf("save state: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to save state"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save state")
	}
	if isHX(c) {
		c.Response().Header().Set("HX-Redirect", "/states")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/states")
}

// DELETE /states/:id
func (h *Handlers) DeleteStateHandler(c echo.Context) error {
	if err := h.registry.States.Remove(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Errorf("delete state: %v", err)
		if isHX(c) {
			return c.HTML(http.StatusOK, partials.Toasts(nil, []string{"Failed to delete state"}))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete state")
	}
	if isHX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/states")
}
