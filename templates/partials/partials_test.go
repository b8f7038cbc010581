package partials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsMarkup(t *testing.T) {
	assert.Equal(t, "Curitiba", Sanitize(`<script>alert(1)</script>Curitiba`))
	assert.Equal(t, "João", Sanitize("João"))
}

func TestPickerRowsEscapesLabels(t *testing.T) {
	html := PickerRows("/forms/x/picker/0", false, []Row{
		{ID: "1", Label: `<b>Paraná</b>`, Detail: "Brasil"},
	}, "1")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "Paraná")
	assert.Contains(t, html, "selected")
}

func TestPickerRowsEmptyAndLoading(t *testing.T) {
	assert.Contains(t, PickerRows("/p", true, nil, ""), "Loading")
	assert.Contains(t, PickerRows("/p", false, nil, ""), "No records")
}

func TestToastsOmittedWhenEmpty(t *testing.T) {
	assert.Empty(t, Toasts(nil, nil))
	out := Toasts([]string{"City saved"}, []string{"Failed to save state"})
	assert.Contains(t, out, "toast-success")
	assert.Contains(t, out, "toast-error")
	assert.Contains(t, out, `hx-swap-oob`)
}

func TestRedirectPageCarriesTarget(t *testing.T) {
	page := RedirectPage("Failed to load client", "/clients", 3)
	assert.Contains(t, page, `content="3;url=/clients"`)
	assert.Contains(t, page, "Failed to load client")
}
