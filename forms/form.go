// Package forms holds the editor state for the entities that own a location
// relation: city (owns a state) and client/supplier/carrier (own a city).
// The selected relation object on the draft is the single source of truth;
// the foreign-key id is derived from it on demand, so the two can never
// drift apart. Deeper relation levels (a client's state and country) are
// rendered read-only off the selected chain and are never fetched
// separately.
package forms

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pizzeria_admin_go/notify"
	"pizzeria_admin_go/picker"
)

// Config parameterizes an editor for entity E whose direct relation is R.
type Config[E, R any] struct {
	// Entity is the display name used in notifications ("client", "city").
	Entity string

	GetByID func(ctx context.Context, id string) (*E, error)
	Create  func(ctx context.Context, draft E) (*E, error)
	Update  func(ctx context.Context, id string, draft E) (*E, error)

	Validate func(draft E) []string
	ID       func(entity E) string

	// NewRelationPicker builds the picker for the form's direct relation;
	// ApplyRelation merges a picked R into the draft.
	NewRelationPicker func(onPick func(R)) *picker.Picker[R]
	ApplyRelation     func(draft E, relation R) E

	Notifier notify.Notifier
}

// Form is one editor instance: a draft under edit plus the picker for its
// direct relation.
type Form[E, R any] struct {
	mu     sync.Mutex
	cfg    Config[E, R]
	draft  E
	picker *picker.Picker[R]
}

func New[E, R any](cfg Config[E, R]) *Form[E, R] {
	f := &Form[E, R]{cfg: cfg}
	f.picker = cfg.NewRelationPicker(f.applyRelation)
	return f
}

// Load populates the draft for an edit from one fetched snapshot; the
// relation chain comes out of that same snapshot. A missing record or a
// fetch failure is returned to the caller, which redirects back to the
// list rather than leaving the user on a broken editor.
func (f *Form[E, R]) Load(ctx context.Context, id string) error {
	entity, err := f.cfg.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load %s %s: %w", f.cfg.Entity, id, err)
	}
	if entity == nil {
		return fmt.Errorf("%s %s not found", f.cfg.Entity, id)
	}
	f.mu.Lock()
	f.draft = *entity
	f.mu.Unlock()
	return nil
}

// Draft returns the current draft value.
func (f *Form[E, R]) Draft() E {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft with edited field values. Callers must carry
// the existing relation over (the HTTP layer does this by re-reading Draft
// first); the picker is the only path that changes the relation.
func (f *Form[E, R]) SetDraft(draft E) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// RelationPicker exposes the form's picker so the HTTP layer can drive and
// render it.
func (f *Form[E, R]) RelationPicker() *picker.Picker[R] {
	return f.picker
}

// OpenRelationPicker opens the picker for the form's direct relation.
func (f *Form[E, R]) OpenRelationPicker(ctx context.Context) {
	f.picker.Open(ctx)
}

func (f *Form[E, R]) applyRelation(relation R) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.cfg.ApplyRelation(f.draft, relation)
}

// Validate returns every violated rule for the current draft.
func (f *Form[E, R]) Validate() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg.Validate(f.draft)
}

// Submit validates and persists the draft: create when it has no id yet,
// update otherwise. Violations short-circuit before any network call. On a
// persist failure the draft is left exactly as entered for retry. On
// success the draft is replaced by the server's snapshot and the saved
// entity is returned.
func (f *Form[E, R]) Submit(ctx context.Context) (*E, []string, error) {
	f.mu.Lock()
	draft := f.draft
	f.mu.Unlock()

	if violations := f.cfg.Validate(draft); len(violations) > 0 {
		f.cfg.Notifier.Error(strings.Join(violations, "; "))
		return nil, violations, nil
	}

	var saved *E
	var err error
	if id := f.cfg.ID(draft); id == "" {
		saved, err = f.cfg.Create(ctx, draft)
	} else {
		saved, err = f.cfg.Update(ctx, id, draft)
	}
	if err != nil {
		f.cfg.Notifier.Error(fmt.Sprintf("Failed to save %s", f.cfg.Entity))
		return nil, nil, err
	}

	f.mu.Lock()
	f.draft = *saved
	f.mu.Unlock()
	f.cfg.Notifier.Success(fmt.Sprintf("%s saved", title(f.cfg.Entity)))
	return saved, nil, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
