package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pizzeria_admin_go/picker"
	"pizzeria_admin_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// pickerAt resolves one level of a form's modal stack: depth 0 is the
// form's own relation picker, depth n the nested picker stacked by the
// level above it.
func (h *Handlers) pickerAt(c echo.Context) (*formSession, pickerHandle) {
	session := h.forms.get(c.Param("fid"))
	if session == nil {
		return nil, nil
	}
	depth, err := strconv.Atoi(c.Param("depth"))
	if err != nil || depth < 0 {
		return session, nil
	}
	handle := session.handle.Picker()
	for i := 0; i < depth && handle != nil; i++ {
		handle = handle.Child()
	}
	return session, handle
}

// renderPickerFragment re-renders the whole modal stack plus, out of band,
// the editor's relation block and any pending toasts. Every picker action
// funnels through here, so the page always reflects the machine's state.
func (h *Handlers) renderPickerFragment(c echo.Context, session *formSession) error {
	var b strings.Builder
	handle := session.handle.Picker()
	for depth := 0; handle != nil && handle.IsOpen(); depth++ {
		base := session.base() + "/picker/" + strconv.Itoa(depth)
		var inner string
		switch handle.Phase() {
		case picker.Listing:
			inner = partials.PickerListing(base, handle.SearchText(), handle.Loading(),
				handle.Rows(), handle.SelectedID(), handle.SelectedID() != "")
		case picker.FormEntry, picker.Saving:
			inner = partials.PickerEntryForm(base, handle.EntryFieldsHTML(base),
				handle.Phase() == picker.Saving)
		}
		b.WriteString(partials.PickerModal(handle.Title(), base+"/close", inner))
		handle = handle.Child()
	}

	chain := session.handle.RelationChainHTML(session.base())
	b.WriteString(strings.Replace(chain,
		`<div id="relation-chain">`, `<div id="relation-chain" hx-swap-oob="true">`, 1))

	successes, errors := session.rec.Drain()
	b.WriteString(partials.Toasts(successes, errors))
	return c.HTML(http.StatusOK, b.String())
}

// PickerOpenHandler opens the form's relation picker.
// POST /forms/:fid/picker/0/open
func (h *Handlers) PickerOpenHandler(c echo.Context) error {
	session := h.forms.get(c.Param("fid"))
	if session == nil {
		return sessionGone(c)
	}
	if c.Param("depth") == "0" {
		session.handle.OpenPicker(c.Request().Context())
	}
	return h.renderPickerFragment(c, session)
}

// PickerListHandler filters the list of the addressed level.
// GET /forms/:fid/picker/:depth/list?q=...
func (h *Handlers) PickerListHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		handle.Search(c.QueryParam("q"))
	}
	return h.renderPickerFragment(c, session)
}

// PickerSelectHandler marks a row as the tentative selection.
// POST /forms/:fid/picker/:depth/select
func (h *Handlers) PickerSelectHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		handle.Select(c.FormValue("id"))
	}
	return h.renderPickerFragment(c, session)
}

// PickerConfirmHandler emits the tentative selection to whatever stacked
// this level (the editor, or the entry form one level up) and closes it.
// POST /forms/:fid/picker/:depth/confirm
func (h *Handlers) PickerConfirmHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		handle.Confirm()
	}
	return h.renderPickerFragment(c, session)
}

// PickerNewHandler switches the addressed level to its inline create form.
// POST /forms/:fid/picker/:depth/new
func (h *Handlers) PickerNewHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		handle.StartCreate()
	}
	return h.renderPickerFragment(c, session)
}

// PickerParentHandler stacks the nested picker for the entry form's parent
// relation. The typed fields posted along are kept on the draft first.
// POST /forms/:fid/picker/:depth/parent
func (h *Handlers) PickerParentHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		if vals, err := c.FormParams(); err == nil {
			handle.ApplyEntry(vals)
		}
		handle.OpenParent(c.Request().Context())
	}
	return h.renderPickerFragment(c, session)
}

// PickerSaveHandler persists the entry-form draft. On success the created
// record is emitted as if picked and the level closes; violations and
// persist failures keep the form open with the draft intact.
// POST /forms/:fid/picker/:depth/save
func (h *Handlers) PickerSaveHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		if vals, err := c.FormParams(); err == nil {
			handle.ApplyEntry(vals)
		}
		handle.Save(c.Request().Context())
	}
	return h.renderPickerFragment(c, session)
}

// PickerBackHandler discards the entry draft and returns to the list.
// POST /forms/:fid/picker/:depth/back
func (h *Handlers) PickerBackHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		handle.Back()
	}
	return h.renderPickerFragment(c, session)
}

// PickerCloseHandler dismisses the addressed level and everything stacked
// above it.
// POST /forms/:fid/picker/:depth/close
func (h *Handlers) PickerCloseHandler(c echo.Context) error {
	session, handle := h.pickerAt(c)
	if session == nil {
		return sessionGone(c)
	}
	if handle != nil {
		handle.Close()
	}
	return h.renderPickerFragment(c, session)
}
