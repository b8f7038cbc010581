// Package partials builds the HTML fragments the handlers return to HTMX.
// Everything is plain string assembly; user-entered text goes through
// bluemonday before it is echoed back.
package partials

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// Sanitize strips any markup from user-entered free text before it is
// echoed back into a page (search boxes, toasts, table cells).
func Sanitize(s string) string {
	return textPolicy.Sanitize(s)
}

func esc(s string) string {
	return html.EscapeString(s)
}

// Row is one selectable line in a picker list.
type Row struct {
	ID     string
	Label  string
	Detail string
}

// Layout wraps a page body in the shared shell.
func Layout(title, body string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
	b.WriteString(`<title>` + esc(title) + ` | Pizzeria Admin</title>`)
	b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
	b.WriteString(`<link rel="stylesheet" href="/static/admin.css">`)
	b.WriteString(`</head><body>`)
	b.WriteString(`<nav class="topnav">`)
	for _, link := range [][2]string{
		{"/clients", "Clients"}, {"/suppliers", "Suppliers"}, {"/carriers", "Carriers"},
		{"/cities", "Cities"}, {"/states", "States"}, {"/countries", "Countries"},
	} {
		b.WriteString(`<a href="` + link[0] + `">` + link[1] + `</a>`)
	}
	b.WriteString(`<form method="POST" action="/logout" class="logout"><button type="submit">Sign out</button></form>`)
	b.WriteString(`</nav>`)
	b.WriteString(`<main>` + body + `</main>`)
	b.WriteString(`<div id="toast-root"></div>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

// Toast renders one notification. kind is "success" or "error".
func Toast(kind, message string) string {
	return `<div class="toast toast-` + kind + `">` + esc(Sanitize(message)) + `</div>`
}

// Toasts renders drained notifications for the out-of-band toast area.
func Toasts(successes, errors []string) string {
	if len(successes) == 0 && len(errors) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div id="toast-root" hx-swap-oob="true">`)
	for _, msg := range errors {
		b.WriteString(Toast("error", msg))
	}
	for _, msg := range successes {
		b.WriteString(Toast("success", msg))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RedirectPage is a full page shown when an editor could not load: it
// explains what happened and sends the browser back to the list after a
// short delay.
func RedirectPage(message, target string, seconds int) string {
	body := fmt.Sprintf(
		`<meta http-equiv="refresh" content="%d;url=%s"><div class="redirect-notice">%s<br>Returning to the list...</div>`,
		seconds, esc(target), esc(Sanitize(message)))
	return Layout("Back to list", body)
}

// SearchBox renders the list filter input wired to swap the table rows.
func SearchBox(listPath, query string) string {
	return `<input type="search" name="q" value="` + esc(Sanitize(query)) + `" placeholder="Search..."` +
		` hx-get="` + esc(listPath) + `" hx-trigger="input changed delay:300ms" hx-target="#rows" hx-swap="outerHTML">`
}

// Table renders a list table; rowsHTML is the <tbody id="rows"> content
// produced by the per-entity row builders.
func Table(headers []string, rowsHTML string) string {
	var b strings.Builder
	b.WriteString(`<table class="list"><thead><tr>`)
	for _, h := range headers {
		b.WriteString(`<th>` + esc(h) + `</th>`)
	}
	b.WriteString(`</tr></thead>`)
	b.WriteString(rowsHTML)
	b.WriteString(`</table>`)
	return b.String()
}

// Cells renders one table row from already-safe cell HTML.
func Cells(cells ...string) string {
	return `<tr><td>` + strings.Join(cells, `</td><td>`) + `</td></tr>`
}

// Text renders a sanitized, escaped table cell.
func Text(s string) string {
	return esc(Sanitize(s))
}

// RowActions renders the view/edit/delete cell for a list row.
func RowActions(basePath, id string) string {
	return `<a href="` + esc(basePath) + `/` + esc(id) + `">View</a> ` +
		`<a href="` + esc(basePath) + `/` + esc(id) + `/edit">Edit</a> ` +
		`<button hx-delete="` + esc(basePath) + `/` + esc(id) + `" hx-confirm="Delete this record?" hx-target="closest tr" hx-swap="outerHTML">Delete</button>`
}

// ActiveBadge renders the active flag.
func ActiveBadge(active bool) string {
	if active {
		return `<span class="badge badge-active">Active</span>`
	}
	return `<span class="badge badge-inactive">Inactive</span>`
}

// FormatDate renders a nullable timestamp for display.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}

// TextInput renders a labeled text field.
func TextInput(name, label, value string) string {
	return `<label>` + esc(label) +
		`<input type="text" name="` + esc(name) + `" value="` + esc(value) + `"></label>`
}

// CheckboxInput renders a labeled checkbox.
func CheckboxInput(name, label string, checked bool) string {
	attr := ""
	if checked {
		attr = " checked"
	}
	return `<label class="check"><input type="checkbox" name="` + esc(name) + `" value="true"` + attr + `>` + esc(label) + `</label>`
}

// ReadonlyField renders a derived, non-editable value (the deeper levels of
// the location chain on an editor).
func ReadonlyField(label, value string) string {
	display := value
	if display == "" {
		display = "—"
	}
	return `<label>` + esc(label) + `<input type="text" value="` + esc(display) + `" readonly></label>`
}

// RelationField renders the picked-relation row of an editor: the current
// label plus the button that opens the picker modal.
func RelationField(label, value, openPath string) string {
	display := value
	if display == "" {
		display = "—"
	}
	return `<div class="relation-field"><label>` + esc(label) +
		`<input type="text" value="` + esc(display) + `" readonly></label>` +
		`<button type="button" hx-post="` + esc(openPath) + `" hx-target="#picker-root" hx-swap="innerHTML">Choose...</button></div>`
}

// FormPage renders an editor page. fieldsHTML comes from the per-entity
// builders; the empty #picker-root div is where the modal stack lands.
func FormPage(title, submitPath, listPath, fieldsHTML string) string {
	var b strings.Builder
	b.WriteString(`<h1>` + esc(title) + `</h1>`)
	b.WriteString(`<form id="editor" hx-post="` + esc(submitPath) + `" hx-target="#editor-result" hx-swap="innerHTML">`)
	b.WriteString(fieldsHTML)
	b.WriteString(`<div class="actions"><button type="submit">Save</button>`)
	b.WriteString(`<a href="` + esc(listPath) + `">Cancel</a></div>`)
	b.WriteString(`</form>`)
	b.WriteString(`<div id="editor-result"></div>`)
	b.WriteString(`<div id="picker-root"></div>`)
	return Layout(title, b.String())
}

// PickerModal wraps one level of the modal stack. inner is the listing or
// entry-form content for that level; deeper levels stack after it.
func PickerModal(title, closePath, inner string) string {
	var b strings.Builder
	b.WriteString(`<div class="modal"><div class="modal-box">`)
	b.WriteString(`<div class="modal-head"><h2>` + esc(title) + `</h2>`)
	b.WriteString(`<button type="button" hx-post="` + esc(closePath) + `" hx-target="#picker-root" hx-swap="innerHTML">&times;</button></div>`)
	b.WriteString(inner)
	b.WriteString(`</div></div>`)
	return b.String()
}

// PickerListing renders the list phase of a picker level: search box, rows,
// and the select/confirm/new controls.
func PickerListing(base, query string, loading bool, rows []Row, selectedID string, canConfirm bool) string {
	var b strings.Builder
	b.WriteString(`<input type="search" name="q" value="` + esc(Sanitize(query)) + `" placeholder="Search..."` +
		` hx-get="` + esc(base) + `/list" hx-trigger="input changed delay:300ms" hx-target="#picker-root" hx-swap="innerHTML">`)
	b.WriteString(PickerRows(base, loading, rows, selectedID))
	b.WriteString(`<div class="modal-actions">`)
	b.WriteString(`<button type="button" hx-post="` + esc(base) + `/new" hx-target="#picker-root" hx-swap="innerHTML">New</button>`)
	confirmAttr := ""
	if !canConfirm {
		confirmAttr = " disabled"
	}
	b.WriteString(`<button type="button"` + confirmAttr + ` hx-post="` + esc(base) + `/confirm" hx-target="#picker-root" hx-swap="innerHTML">Select</button>`)
	b.WriteString(`</div>`)
	return b.String()
}

// PickerRows renders the selectable rows of a picker level.
func PickerRows(base string, loading bool, rows []Row, selectedID string) string {
	var b strings.Builder
	b.WriteString(`<ul class="picker-rows">`)
	switch {
	case loading:
		b.WriteString(`<li class="empty">Loading...</li>`)
	case len(rows) == 0:
		b.WriteString(`<li class="empty">No records</li>`)
	default:
		for _, row := range rows {
			class := "picker-row"
			if row.ID == selectedID {
				class += " selected"
			}
			b.WriteString(`<li class="` + class + `" hx-post="` + esc(base) + `/select" hx-vals='{"id":"` + esc(row.ID) + `"}' hx-target="#picker-root" hx-swap="innerHTML">`)
			b.WriteString(esc(Sanitize(row.Label)))
			if row.Detail != "" {
				b.WriteString(` <span class="detail">` + esc(Sanitize(row.Detail)) + `</span>`)
			}
			b.WriteString(`</li>`)
		}
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// PickerEntryForm renders the inline-create phase of a picker level. saving
// disables the buttons while a persist call is in flight.
func PickerEntryForm(base, fieldsHTML string, saving bool) string {
	var b strings.Builder
	b.WriteString(`<form hx-post="` + esc(base) + `/save" hx-target="#picker-root" hx-swap="innerHTML">`)
	b.WriteString(fieldsHTML)
	disabled := ""
	if saving {
		disabled = " disabled"
	}
	b.WriteString(`<div class="modal-actions">`)
	b.WriteString(`<button type="button"` + disabled + ` hx-post="` + esc(base) + `/back" hx-target="#picker-root" hx-swap="innerHTML">Back</button>`)
	b.WriteString(`<button type="submit"` + disabled + `>Save</button>`)
	b.WriteString(`</div></form>`)
	return b.String()
}

// ParentField renders the parent-relation row of a picker entry form: the
// current value plus the button that stacks the nested picker.
func ParentField(label, value, parentPath string) string {
	display := value
	if display == "" {
		display = "—"
	}
	return `<div class="relation-field"><label>` + esc(label) +
		`<input type="text" value="` + esc(display) + `" readonly></label>` +
		`<button type="button" hx-post="` + esc(parentPath) + `" hx-target="#picker-root" hx-swap="innerHTML">Choose...</button></div>`
}

// LoginPage renders the login screen. message is an optional error line.
func LoginPage(message string) string {
	var b strings.Builder
	b.WriteString(`<h1>Pizzeria Admin</h1>`)
	if message != "" {
		b.WriteString(`<div class="toast toast-error">` + esc(Sanitize(message)) + `</div>`)
	}
	b.WriteString(`<form method="POST" action="/login" class="login">`)
	b.WriteString(`<label>Email<input type="email" name="email" autocomplete="username"></label>`)
	b.WriteString(`<label>Password<input type="password" name="password" autocomplete="current-password"></label>`)
	b.WriteString(`<button type="submit">Sign in</button>`)
	b.WriteString(`</form>`)
	return `<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8"><title>Login | Pizzeria Admin</title><link rel="stylesheet" href="/static/admin.css"></head><body><main class="login-page">` + b.String() + `</main></body></html>`
}
