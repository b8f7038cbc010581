package handlers

import (
	"context"
	"net/url"
	"strings"

	"pizzeria_admin_go/forms"
	"pizzeria_admin_go/models"
	"pizzeria_admin_go/templates/partials"
)

func applyContact(vals url.Values, contact *models.Contact) {
	contact.Phone = strings.TrimSpace(vals.Get("phone"))
	contact.Email = strings.TrimSpace(vals.Get("email"))
}

func applyAddress(vals url.Values, address *models.Address) {
	address.Street = strings.TrimSpace(vals.Get("street"))
	address.Number = strings.TrimSpace(vals.Get("number"))
	address.Complement = strings.TrimSpace(vals.Get("complement"))
	address.District = strings.TrimSpace(vals.Get("district"))
	address.ZipCode = strings.TrimSpace(vals.Get("zipCode"))
}

func contactFields(contact models.Contact) string {
	return partials.TextInput("phone", "Phone", contact.Phone) +
		partials.TextInput("email", "Email", contact.Email)
}

func addressFields(address models.Address) string {
	return partials.TextInput("street", "Street", address.Street) +
		partials.TextInput("number", "Number", address.Number) +
		partials.TextInput("complement", "Complement", address.Complement) +
		partials.TextInput("district", "District", address.District) +
		partials.TextInput("zipCode", "ZIP code", address.ZipCode)
}

// cityChainHTML renders the picked-city block shared by client, supplier
// and carrier editors: the city field opens the picker, the state and
// country render read-only off the picked chain.
func cityChainHTML(base string, city *models.City) string {
	name, state, country := "", "", ""
	if city != nil {
		name = city.Name
		state = city.StateLabel()
		country = city.CountryName()
	}
	return `<div id="relation-chain">` +
		partials.RelationField("City", name, base+"/picker/0/open") +
		partials.ReadonlyField("State", state) +
		partials.ReadonlyField("Country", country) +
		`</div>`
}

type clientFormHandle struct {
	f *forms.Form[models.Client, models.City]
}

func (h clientFormHandle) Kind() string     { return "client" }
func (h clientFormHandle) ListPath() string { return "/clients" }

func (h clientFormHandle) Load(ctx context.Context, id string) error {
	return h.f.Load(ctx, id)
}

func (h clientFormHandle) ApplyForm(vals url.Values) {
	draft := h.f.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.CPF = strings.TrimSpace(vals.Get("cpf"))
	draft.RG = strings.TrimSpace(vals.Get("rg"))
	applyContact(vals, &draft.Contact)
	applyAddress(vals, &draft.Address)
	draft.Active = vals.Get("active") == "true" || vals.Get("active") == "on"
	h.f.SetDraft(draft)
}

func (h clientFormHandle) Submit(ctx context.Context) ([]string, error) {
	_, violations, err := h.f.Submit(ctx)
	return violations, err
}

func (h clientFormHandle) FieldsHTML(base string) string {
	draft := h.f.Draft()
	return partials.TextInput("name", "Name", draft.Name) +
		partials.TextInput("cpf", "CPF", draft.CPF) +
		partials.TextInput("rg", "RG", draft.RG) +
		contactFields(draft.Contact) +
		addressFields(draft.Address) +
		h.RelationChainHTML(base) +
		partials.CheckboxInput("active", "Active", draft.Active)
}

func (h clientFormHandle) RelationChainHTML(base string) string {
	return cityChainHTML(base, h.f.Draft().City)
}

func (h clientFormHandle) Picker() pickerHandle {
	return cityPickerHandle{h.f.RelationPicker()}
}

func (h clientFormHandle) OpenPicker(ctx context.Context) {
	h.f.OpenRelationPicker(ctx)
}

type supplierFormHandle struct {
	f *forms.Form[models.Supplier, models.City]
}

func (h supplierFormHandle) Kind() string     { return "supplier" }
func (h supplierFormHandle) ListPath() string { return "/suppliers" }

func (h supplierFormHandle) Load(ctx context.Context, id string) error {
	return h.f.Load(ctx, id)
}

func (h supplierFormHandle) ApplyForm(vals url.Values) {
	draft := h.f.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.TradeName = strings.TrimSpace(vals.Get("tradeName"))
	draft.CNPJ = strings.TrimSpace(vals.Get("cnpj"))
	draft.StateRegistration = strings.TrimSpace(vals.Get("stateRegistration"))
	applyContact(vals, &draft.Contact)
	applyAddress(vals, &draft.Address)
	draft.Active = vals.Get("active") == "true" || vals.Get("active") == "on"
	h.f.SetDraft(draft)
}

func (h supplierFormHandle) Submit(ctx context.Context) ([]string, error) {
	_, violations, err := h.f.Submit(ctx)
	return violations, err
}

func (h supplierFormHandle) FieldsHTML(base string) string {
	draft := h.f.Draft()
	return partials.TextInput("name", "Company name", draft.Name) +
		partials.TextInput("tradeName", "Trade name", draft.TradeName) +
		partials.TextInput("cnpj", "CNPJ", draft.CNPJ) +
		partials.TextInput("stateRegistration", "State registration", draft.StateRegistration) +
		contactFields(draft.Contact) +
		addressFields(draft.Address) +
		h.RelationChainHTML(base) +
		partials.CheckboxInput("active", "Active", draft.Active)
}

func (h supplierFormHandle) RelationChainHTML(base string) string {
	return cityChainHTML(base, h.f.Draft().City)
}

func (h supplierFormHandle) Picker() pickerHandle {
	return cityPickerHandle{h.f.RelationPicker()}
}

func (h supplierFormHandle) OpenPicker(ctx context.Context) {
	h.f.OpenRelationPicker(ctx)
}

type carrierFormHandle struct {
	f *forms.Form[models.Carrier, models.City]
}

func (h carrierFormHandle) Kind() string     { return "carrier" }
func (h carrierFormHandle) ListPath() string { return "/carriers" }

func (h carrierFormHandle) Load(ctx context.Context, id string) error {
	return h.f.Load(ctx, id)
}

func (h carrierFormHandle) ApplyForm(vals url.Values) {
	draft := h.f.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.CNPJ = strings.TrimSpace(vals.Get("cnpj"))
	draft.StateRegistration = strings.TrimSpace(vals.Get("stateRegistration"))
	applyContact(vals, &draft.Contact)
	applyAddress(vals, &draft.Address)
	draft.Active = vals.Get("active") == "true" || vals.Get("active") == "on"
	h.f.SetDraft(draft)
}

func (h carrierFormHandle) Submit(ctx context.Context) ([]string, error) {
	_, violations, err := h.f.Submit(ctx)
	return violations, err
}

func (h carrierFormHandle) FieldsHTML(base string) string {
	draft := h.f.Draft()
	return partials.TextInput("name", "Company name", draft.Name) +
		partials.TextInput("cnpj", "CNPJ", draft.CNPJ) +
		partials.TextInput("stateRegistration", "State registration", draft.StateRegistration) +
		contactFields(draft.Contact) +
		addressFields(draft.Address) +
		h.RelationChainHTML(base) +
		partials.CheckboxInput("active", "Active", draft.Active)
}

func (h carrierFormHandle) RelationChainHTML(base string) string {
	return cityChainHTML(base, h.f.Draft().City)
}

func (h carrierFormHandle) Picker() pickerHandle {
	return cityPickerHandle{h.f.RelationPicker()}
}

func (h carrierFormHandle) OpenPicker(ctx context.Context) {
	h.f.OpenRelationPicker(ctx)
}

type cityFormHandle struct {
	f *forms.Form[models.City, models.State]
}

func (h cityFormHandle) Kind() string     { return "city" }
func (h cityFormHandle) ListPath() string { return "/cities" }

func (h cityFormHandle) Load(ctx context.Context, id string) error {
	return h.f.Load(ctx, id)
}

func (h cityFormHandle) ApplyForm(vals url.Values) {
	draft := h.f.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.Active = vals.Get("active") == "true" || vals.Get("active") == "on"
	h.f.SetDraft(draft)
}

func (h cityFormHandle) Submit(ctx context.Context) ([]string, error) {
	_, violations, err := h.f.Submit(ctx)
	return violations, err
}

func (h cityFormHandle) FieldsHTML(base string) string {
	draft := h.f.Draft()
	return partials.TextInput("name", "Name", draft.Name) +
		h.RelationChainHTML(base) +
		partials.CheckboxInput("active", "Active", draft.Active)
}

func (h cityFormHandle) RelationChainHTML(base string) string {
	draft := h.f.Draft()
	state, country := "", ""
	if draft.State != nil {
		state = draft.State.Label()
		if draft.State.Country != nil {
			country = draft.State.Country.Name
		}
	}
	return `<div id="relation-chain">` +
		partials.RelationField("State", state, base+"/picker/0/open") +
		partials.ReadonlyField("Country", country) +
		`</div>`
}

func (h cityFormHandle) Picker() pickerHandle {
	return statePickerHandle{h.f.RelationPicker()}
}

func (h cityFormHandle) OpenPicker(ctx context.Context) {
	h.f.OpenRelationPicker(ctx)
}
