// Package picker implements the selection-modal workflow: list existing
// records, filter them, pick one, or switch into an inline create form whose
// parent-relation field opens a nested picker of its own. One generic state
// machine covers country, state and city; the per-entity differences live in
// Config (see catalog.go).
package picker

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pizzeria_admin_go/notify"
)

// Phase is the picker's visible state.
type Phase int

const (
	Closed Phase = iota
	Listing
	FormEntry
	Saving
)

func (p Phase) String() string {
	switch p {
	case Listing:
		return "listing"
	case FormEntry:
		return "form"
	case Saving:
		return "saving"
	default:
		return "closed"
	}
}

// Overlay is the face a picker shows to whatever stacks it: a parent form,
// or the form-entry view of an enclosing picker.
type Overlay interface {
	Open(ctx context.Context)
	Close()
	IsOpen() bool
}

// Config parameterizes the machine for one entity type.
type Config[E any] struct {
	// Entity is the display name used in notifications ("state", "city").
	Entity string

	FetchList func(ctx context.Context) ([]E, error)
	Create    func(ctx context.Context, draft E) (*E, error)

	// Validate returns every violated rule; an empty slice means the draft
	// may be saved.
	Validate func(draft E) []string
	// Match implements the list search (case-insensitive, substring,
	// including denormalized relation labels where the entity has them).
	Match func(item E, query string) bool
	// Label renders an item for display. ID yields the row identity used by
	// Select.
	Label func(item E) string
	ID    func(item E) string

	// NewDraft seeds the inline create form; nil means the zero value. Lets
	// an entity default its Active flag on instead of inheriting false.
	NewDraft func() E

	// Parent relation, when the inline create form has one. NewParentPicker
	// builds a fresh nested picker whose confirmed value is handed to
	// ApplyParent; both are nil for the leaf entity (country).
	NewParentPicker func(onPick func(parent any)) Overlay
	ApplyParent     func(draft E, parent any) E

	Notifier notify.Notifier
}

// Picker is one modal instance. All exported methods are safe for
// concurrent use; completions of list fetches and saves started under an
// earlier open (or before a close) are recognized by generation and
// discarded, so a stale response can never corrupt the current state or
// fire the selection callback after the modal is gone.
type Picker[E any] struct {
	mu     sync.Mutex
	cfg    Config[E]
	onPick func(E)

	phase    Phase
	gen      int
	loading  bool
	items    []E
	search   string
	selected *E
	draft    E
	emitted  bool
	child    Overlay
}

// New builds a picker. onPick is the caller's selection callback; it fires
// exactly once per open, from Confirm or from a completed inline create.
func New[E any](cfg Config[E], onPick func(E)) *Picker[E] {
	return &Picker[E]{cfg: cfg, onPick: onPick}
}

// Open resets the modal (search, tentative selection, draft, child) and
// fetches a fresh list. Every open refetches; records created elsewhere in
// the meantime must show up.
func (p *Picker[E]) Open(ctx context.Context) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.phase = Listing
	p.loading = true
	p.items = nil
	p.search = ""
	p.selected = nil
	var zero E
	p.draft = zero
	p.emitted = false
	child := p.child
	p.child = nil
	p.mu.Unlock()

	if child != nil {
		child.Close()
	}

	items, err := p.cfg.FetchList(ctx)
	p.finishFetch(gen, items, err)
}

func (p *Picker[E]) finishFetch(gen int, items []E, err error) {
	p.mu.Lock()
	if gen != p.gen || p.phase == Closed {
		// A newer open owns the modal now; this response is stale.
		p.mu.Unlock()
		return
	}
	p.loading = false
	if err != nil {
		p.items = nil
		p.mu.Unlock()
		p.cfg.Notifier.Error(fmt.Sprintf("Failed to load %s list", p.cfg.Entity))
		return
	}
	p.items = items
	p.mu.Unlock()
}

// Search sets the filter text. Matching is done on read by VisibleItems.
func (p *Picker[E]) Search(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase == Listing {
		p.search = query
	}
}

// VisibleItems returns the rows matching the current filter.
func (p *Picker[E]) VisibleItems() []E {
	p.mu.Lock()
	defer p.mu.Unlock()
	query := strings.TrimSpace(p.search)
	if query == "" {
		return append([]E(nil), p.items...)
	}
	visible := make([]E, 0, len(p.items))
	for _, item := range p.items {
		if p.cfg.Match(item, query) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Select marks the row with the given id as the tentative selection,
// replacing any previous one. Unknown ids clear nothing and select nothing.
func (p *Picker[E]) Select(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != Listing {
		return
	}
	for i := range p.items {
		if p.cfg.ID(p.items[i]) == id {
			item := p.items[i]
			p.selected = &item
			return
		}
	}
}

// Selected returns a copy of the tentative selection, or nil.
func (p *Picker[E]) Selected() *E {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.selected == nil {
		return nil
	}
	item := *p.selected
	return &item
}

// CanConfirm reports whether Confirm would emit.
func (p *Picker[E]) CanConfirm() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase == Listing && p.selected != nil
}

// Confirm emits the tentative selection to the caller and closes the modal.
// Without a tentative selection it does nothing.
func (p *Picker[E]) Confirm() {
	p.mu.Lock()
	if p.phase != Listing || p.selected == nil || p.emitted {
		p.mu.Unlock()
		return
	}
	p.emitted = true
	picked := *p.selected
	p.closeLocked()
	p.mu.Unlock()

	p.onPick(picked)
}

// StartCreate switches to the inline create form with a fresh draft. The
// parent relation starts genuinely unset, never as a placeholder object.
func (p *Picker[E]) StartCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != Listing {
		return
	}
	if p.cfg.NewDraft != nil {
		p.draft = p.cfg.NewDraft()
	} else {
		var zero E
		p.draft = zero
	}
	p.phase = FormEntry
}

// Draft returns the in-progress create form value.
func (p *Picker[E]) Draft() E {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft
}

// SetDraft replaces the in-progress create form value. No-op outside the
// form phase.
func (p *Picker[E]) SetDraft(draft E) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase == FormEntry {
		p.draft = draft
	}
}

// OpenParentPicker opens the nested picker for the draft's parent relation.
// The child is a fully independent instance stacked above this one; its
// confirmation updates the draft and leaves this form open.
func (p *Picker[E]) OpenParentPicker(ctx context.Context) {
	p.mu.Lock()
	if p.phase != FormEntry || p.cfg.NewParentPicker == nil {
		p.mu.Unlock()
		return
	}
	child := p.cfg.NewParentPicker(p.applyParent)
	p.child = child
	p.mu.Unlock()

	child.Open(ctx)
}

func (p *Picker[E]) applyParent(parent any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != FormEntry {
		return
	}
	p.draft = p.cfg.ApplyParent(p.draft, parent)
}

// Child returns the currently stacked nested picker, if any.
func (p *Picker[E]) Child() Overlay {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.child
}

// Back leaves the create form, discarding the draft, and returns to the
// list fetched at open.
func (p *Picker[E]) Back() {
	p.mu.Lock()
	var child Overlay
	if p.phase == FormEntry {
		var zero E
		p.draft = zero
		p.phase = Listing
		child = p.child
		p.child = nil
	}
	p.mu.Unlock()

	if child != nil {
		child.Close()
	}
}

// Save validates the draft and persists it. Violations are aggregated into
// one notification and returned; nothing touches the network in that case.
// A persist failure keeps the draft intact in the form. Success emits the
// created entity exactly as if it had been picked from the list.
func (p *Picker[E]) Save(ctx context.Context) []string {
	p.mu.Lock()
	if p.phase != FormEntry {
		p.mu.Unlock()
		return nil
	}
	if violations := p.cfg.Validate(p.draft); len(violations) > 0 {
		p.mu.Unlock()
		p.cfg.Notifier.Error(strings.Join(violations, "; "))
		return violations
	}
	p.phase = Saving
	gen := p.gen
	draft := p.draft
	p.mu.Unlock()

	created, err := p.cfg.Create(ctx, draft)
	p.finishSave(gen, created, err)
	return nil
}

func (p *Picker[E]) finishSave(gen int, created *E, err error) {
	p.mu.Lock()
	if gen != p.gen || p.phase == Closed {
		// Modal was closed or reopened while the save was in flight. The
		// record may exist on the server, but this modal must not emit it.
		p.mu.Unlock()
		return
	}
	if err != nil {
		p.phase = FormEntry // draft untouched, user retries
		p.mu.Unlock()
		p.cfg.Notifier.Error(fmt.Sprintf("Failed to save %s: %s", p.cfg.Entity, serverMessage(err)))
		return
	}
	if p.emitted {
		p.mu.Unlock()
		return
	}
	p.emitted = true
	picked := *created
	p.closeLocked()
	p.mu.Unlock()

	p.onPick(picked)
}

// Close dismisses the modal, discarding all transient state. Any in-flight
// fetch or save becomes stale.
func (p *Picker[E]) Close() {
	p.mu.Lock()
	child := p.child
	p.child = nil
	p.closeLocked()
	p.mu.Unlock()

	if child != nil {
		child.Close()
	}
}

func (p *Picker[E]) closeLocked() {
	p.gen++ // invalidate in-flight completions
	p.phase = Closed
	p.loading = false
	p.items = nil
	p.search = ""
	p.selected = nil
	var zero E
	p.draft = zero
}

func (p *Picker[E]) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase != Closed
}

func (p *Picker[E]) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

func (p *Picker[E]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Picker[E]) SearchText() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.search
}

// serverMessage trims the error down to something a toast can show.
func serverMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
