package handlers

import (
	"context"
	"net/url"
	"strings"

	"pizzeria_admin_go/models"
	"pizzeria_admin_go/picker"
	"pizzeria_admin_go/templates/partials"
)

// pickerHandle is the non-generic face of one picker level, so the HTTP
// layer can walk and render the modal stack without knowing the entity
// type at each depth.
type pickerHandle interface {
	IsOpen() bool
	Phase() picker.Phase
	Loading() bool
	SearchText() string
	Search(query string)
	Rows() []partials.Row
	SelectedID() string
	Select(id string)
	Confirm()
	StartCreate()
	// ApplyEntry merges posted create-form values into the draft; the
	// parent relation set through the nested picker is preserved.
	ApplyEntry(vals url.Values)
	Save(ctx context.Context) []string
	Back()
	OpenParent(ctx context.Context)
	// Child returns the stacked nested picker, nil when none is open.
	Child() pickerHandle
	Close()
	// Title is the modal heading ("Select a city").
	Title() string
	// EntryFieldsHTML renders the inline-create inputs off the draft. base
	// is this level's URL prefix.
	EntryFieldsHTML(base string) string
}

type countryPickerHandle struct {
	p *picker.Picker[models.Country]
}

func (h countryPickerHandle) IsOpen() bool               { return h.p.IsOpen() }
func (h countryPickerHandle) Phase() picker.Phase        { return h.p.Phase() }
func (h countryPickerHandle) Loading() bool              { return h.p.Loading() }
func (h countryPickerHandle) SearchText() string         { return h.p.SearchText() }
func (h countryPickerHandle) Search(query string)        { h.p.Search(query) }
func (h countryPickerHandle) Select(id string)           { h.p.Select(id) }
func (h countryPickerHandle) Confirm()                   { h.p.Confirm() }
func (h countryPickerHandle) StartCreate()               { h.p.StartCreate() }
func (h countryPickerHandle) Back()                      { h.p.Back() }
func (h countryPickerHandle) OpenParent(context.Context) {}
func (h countryPickerHandle) Child() pickerHandle        { return nil }
func (h countryPickerHandle) Close()                     { h.p.Close() }
func (h countryPickerHandle) Title() string              { return "Select a country" }

func (h countryPickerHandle) Rows() []partials.Row {
	items := h.p.VisibleItems()
	rows := make([]partials.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, partials.Row{ID: item.ID, Label: item.Name, Detail: item.IsoAbbreviation})
	}
	return rows
}

func (h countryPickerHandle) SelectedID() string {
	if selected := h.p.Selected(); selected != nil {
		return selected.ID
	}
	return ""
}

func (h countryPickerHandle) ApplyEntry(vals url.Values) {
	draft := h.p.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.CallingCode = strings.TrimSpace(vals.Get("callingCode"))
	draft.IsoAbbreviation = strings.TrimSpace(vals.Get("isoAbbreviation"))
	h.p.SetDraft(draft)
}

func (h countryPickerHandle) Save(ctx context.Context) []string {
	return h.p.Save(ctx)
}

func (h countryPickerHandle) EntryFieldsHTML(string) string {
	draft := h.p.Draft()
	return partials.TextInput("name", "Name", draft.Name) +
		partials.TextInput("callingCode", "Calling code", draft.CallingCode) +
		partials.TextInput("isoAbbreviation", "Abbreviation", draft.IsoAbbreviation)
}

type statePickerHandle struct {
	p *picker.Picker[models.State]
}

func (h statePickerHandle) IsOpen() bool        { return h.p.IsOpen() }
func (h statePickerHandle) Phase() picker.Phase { return h.p.Phase() }
func (h statePickerHandle) Loading() bool       { return h.p.Loading() }
func (h statePickerHandle) SearchText() string  { return h.p.SearchText() }
func (h statePickerHandle) Search(query string) { h.p.Search(query) }
func (h statePickerHandle) Select(id string)    { h.p.Select(id) }
func (h statePickerHandle) Confirm()            { h.p.Confirm() }
func (h statePickerHandle) StartCreate()        { h.p.StartCreate() }
func (h statePickerHandle) Back()               { h.p.Back() }
func (h statePickerHandle) Close()              { h.p.Close() }
func (h statePickerHandle) Title() string       { return "Select a state" }

func (h statePickerHandle) OpenParent(ctx context.Context) {
	h.p.OpenParentPicker(ctx)
}

func (h statePickerHandle) Child() pickerHandle {
	if child, ok := h.p.Child().(*picker.Picker[models.Country]); ok {
		return countryPickerHandle{child}
	}
	return nil
}

func (h statePickerHandle) Rows() []partials.Row {
	items := h.p.VisibleItems()
	rows := make([]partials.Row, 0, len(items))
	for _, item := range items {
		detail := ""
		if item.Country != nil {
			detail = item.Country.Name
		}
		rows = append(rows, partials.Row{ID: item.ID, Label: item.Label(), Detail: detail})
	}
	return rows
}

func (h statePickerHandle) SelectedID() string {
	if selected := h.p.Selected(); selected != nil {
		return selected.ID
	}
	return ""
}

func (h statePickerHandle) ApplyEntry(vals url.Values) {
	draft := h.p.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.Abbreviation = strings.TrimSpace(vals.Get("abbreviation"))
	draft.Active = vals.Get("active") == "true" || vals.Get("active") == "on"
	h.p.SetDraft(draft)
}

func (h statePickerHandle) Save(ctx context.Context) []string {
	return h.p.Save(ctx)
}

func (h statePickerHandle) EntryFieldsHTML(base string) string {
	draft := h.p.Draft()
	country := ""
	if draft.Country != nil {
		country = draft.Country.Name
	}
	return partials.TextInput("name", "Name", draft.Name) +
		partials.TextInput("abbreviation", "UF", draft.Abbreviation) +
		partials.ParentField("Country", country, base+"/parent") +
		partials.CheckboxInput("active", "Active", draft.Active)
}

type cityPickerHandle struct {
	p *picker.Picker[models.City]
}

func (h cityPickerHandle) IsOpen() bool        { return h.p.IsOpen() }
func (h cityPickerHandle) Phase() picker.Phase { return h.p.Phase() }
func (h cityPickerHandle) Loading() bool       { return h.p.Loading() }
func (h cityPickerHandle) SearchText() string  { return h.p.SearchText() }
func (h cityPickerHandle) Search(query string) { h.p.Search(query) }
func (h cityPickerHandle) Select(id string)    { h.p.Select(id) }
func (h cityPickerHandle) Confirm()            { h.p.Confirm() }
func (h cityPickerHandle) StartCreate()        { h.p.StartCreate() }
func (h cityPickerHandle) Back()               { h.p.Back() }
func (h cityPickerHandle) Close()              { h.p.Close() }
func (h cityPickerHandle) Title() string       { return "Select a city" }

func (h cityPickerHandle) OpenParent(ctx context.Context) {
	h.p.OpenParentPicker(ctx)
}

func (h cityPickerHandle) Child() pickerHandle {
	if child, ok := h.p.Child().(*picker.Picker[models.State]); ok {
		return statePickerHandle{child}
	}
	return nil
}

func (h cityPickerHandle) Rows() []partials.Row {
	items := h.p.VisibleItems()
	rows := make([]partials.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, partials.Row{ID: item.ID, Label: item.Name, Detail: item.StateLabel()})
	}
	return rows
}

func (h cityPickerHandle) SelectedID() string {
	if selected := h.p.Selected(); selected != nil {
		return selected.ID
	}
	return ""
}

func (h cityPickerHandle) ApplyEntry(vals url.Values) {
	draft := h.p.Draft()
	draft.Name = strings.TrimSpace(vals.Get("name"))
	draft.Active = vals.Get("active") == "true" || vals.Get("active") == "on"
	h.p.SetDraft(draft)
}

func (h cityPickerHandle) Save(ctx context.Context) []string {
	return h.p.Save(ctx)
}

func (h cityPickerHandle) EntryFieldsHTML(base string) string {
	draft := h.p.Draft()
	country := ""
	if draft.State != nil && draft.State.Country != nil {
		country = draft.State.Country.Name
	}
	return partials.TextInput("name", "Name", draft.Name) +
		partials.ParentField("State", draft.StateLabel(), base+"/parent") +
		partials.ReadonlyField("Country", country) +
		partials.CheckboxInput("active", "Active", draft.Active)
}
