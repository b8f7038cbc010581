// Package services exposes list/get/create/update/remove per entity over the
// back-office API, decoding through the adapters so the rest of the program
// only ever sees canonical entities.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pizzeria_admin_go/api"
)

// EntityService is the CRUD surface for one entity type. The six concrete
// services differ only in resource path and adapter functions, so they are
// instances of this one type rather than six hand-copied ones.
type EntityService[E any] struct {
	api  *api.Client
	path string
	// adapter hooks
	fromPayload func(map[string]any) *E
	listDecode  func(any) []E
	toPayload   func(E) map[string]any
}

func (s *EntityService[E]) List(ctx context.Context) ([]E, error) {
	body, err := s.api.Get(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.path, err)
	}
	return s.listDecode(body), nil
}

// GetByID returns (nil, nil) when the record does not exist.
func (s *EntityService[E]) GetByID(ctx context.Context, id string) (*E, error) {
	body, err := s.api.Get(ctx, s.path+"/"+id)
	if err != nil {
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", s.path, id, err)
	}
	return s.fromPayload(asMap(body)), nil
}

func (s *EntityService[E]) Create(ctx context.Context, draft E) (*E, error) {
	body, err := s.api.Post(ctx, s.path, s.toPayload(draft))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	created := s.fromPayload(asMap(body))
	if created == nil {
		return nil, fmt.Errorf("create %s: server returned an unusable record", s.path)
	}
	return created, nil
}

func (s *EntityService[E]) Update(ctx context.Context, id string, draft E) (*E, error) {
	body, err := s.api.Put(ctx, s.path, id, s.toPayload(draft))
	if err != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", s.path, id, err)
	}
	updated := s.fromPayload(asMap(body))
	if updated == nil {
		return nil, fmt.Errorf("update %s/%s: server returned an unusable record", s.path, id)
	}
	return updated, nil
}

func (s *EntityService[E]) Remove(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, s.path, id); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", s.path, id, err)
	}
	return nil
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
