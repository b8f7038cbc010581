package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// Exports hand the currently filtered list rows over as a spreadsheet,
// same q parameter as the list screen.

func buildWorkbook(sheet string, headers []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for i, value := range row {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func writeWorkbook(c echo.Context, filename string, f *excelize.File) error {
	defer f.Close()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}

func (h *Handlers) export(c echo.Context, entity, sheet string, headers []string, rows [][]any) error {
	f, err := buildWorkbook(sheet, headers, rows)
	if err != nil {
		c.Logger().Errorf("export %s: %v", entity, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build export")
	}
	return writeWorkbook(c, entity+".xlsx", f)
}

// GET /clients/export?q=...
func (h *Handlers) ExportClientsHandler(c echo.Context) error {
	items, err := h.filteredClients(c, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		c.Logger().Errorf("export clients: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch clients")
	}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		city, state, country := "", "", ""
		if item.City != nil {
			city = item.City.Name
			state = item.City.StateLabel()
			country = item.City.CountryName()
		}
		rows = append(rows, []any{item.Name, item.CPF, item.RG, item.Contact.Phone,
			item.Contact.Email, city, state, country, item.Active})
	}
	return h.export(c, "clients", "Clients",
		[]string{"Name", "CPF", "RG", "Phone", "Email", "City", "State", "Country", "Active"}, rows)
}

// GET /suppliers/export?q=...
func (h *Handlers) ExportSuppliersHandler(c echo.Context) error {
	items, err := h.filteredSuppliers(c, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		c.Logger().Errorf("export suppliers: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch suppliers")
	}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		city, state := "", ""
		if item.City != nil {
			city = item.City.Name
			state = item.City.StateLabel()
		}
		rows = append(rows, []any{item.Name, item.TradeName, item.CNPJ, item.StateRegistration,
			item.Contact.Phone, item.Contact.Email, city, state, item.Active})
	}
	return h.export(c, "suppliers", "Suppliers",
		[]string{"Company", "Trade name", "CNPJ", "State registration", "Phone", "Email", "City", "State", "Active"}, rows)
}

// GET /carriers/export?q=...
func (h *Handlers) ExportCarriersHandler(c echo.Context) error {
	items, err := h.filteredCarriers(c, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		c.Logger().Errorf("export carriers: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch carriers")
	}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		city, state := "", ""
		if item.City != nil {
			city = item.City.Name
			state = item.City.StateLabel()
		}
		rows = append(rows, []any{item.Name, item.CNPJ, item.StateRegistration,
			item.Contact.Phone, item.Contact.Email, city, state, item.Active})
	}
	return h.export(c, "carriers", "Carriers",
		[]string{"Company", "CNPJ", "State registration", "Phone", "Email", "City", "State", "Active"}, rows)
}

// GET /cities/export?q=...
func (h *Handlers) ExportCitiesHandler(c echo.Context) error {
	items, err := h.filteredCities(c, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		c.Logger().Errorf("export cities: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cities")
	}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{item.Name, item.StateLabel(), item.CountryName(), item.Active})
	}
	return h.export(c, "cities", "Cities", []string{"Name", "State", "Country", "Active"}, rows)
}

// GET /states/export?q=...
func (h *Handlers) ExportStatesHandler(c echo.Context) error {
	items, err := h.filteredStates(c, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		c.Logger().Errorf("export states: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch states")
	}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		country := ""
		if item.Country != nil {
			country = item.Country.Name
		}
		rows = append(rows, []any{item.Name, item.Abbreviation, country, item.Active})
	}
	return h.export(c, "states", "States", []string{"Name", "UF", "Country", "Active"}, rows)
}

// GET /countries/export?q=...
func (h *Handlers) ExportCountriesHandler(c echo.Context) error {
	items, err := h.filteredCountries(c, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		c.Logger().Errorf("export countries: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch countries")
	}
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{item.Name, item.CallingCode, item.IsoAbbreviation})
	}
	return h.export(c, "countries", "Countries", []string{"Name", "Calling code", "Abbreviation"}, rows)
}
