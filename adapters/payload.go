// Package adapters converts the back-office API's wire payloads into the
// canonical nested entities and flattens canonical entities back into the
// scalar shapes the API accepts for writes.
//
// The API is inconsistent about relations: some endpoints nest them as
// objects, others denormalize them into flat scalar fields (cidadeId,
// estadoNome, paisId, ...). Inbound adapters accept either and always
// produce the same nested graph. They never fail; missing data degrades to
// empty fields or a nil relation.
package adapters

import (
	"fmt"
	"strings"
	"time"
)

// asMap returns v as a payload map, or nil when it is anything else.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice unwraps a list body. Accepts a bare JSON array or a paged object
// carrying the rows under "content" or "items".
func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	if m := asMap(v); m != nil {
		if s, ok := m["content"].([]any); ok {
			return s
		}
		if s, ok := m["items"].([]any); ok {
			return s
		}
	}
	return nil
}

// stringField returns the first non-empty string value among keys.
// Numeric ids arrive as json numbers from some endpoints; they are
// rendered back to their literal form.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v == float64(int64(v)) {
				return fmt.Sprintf("%d", int64(v))
			}
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

// boolField returns the value under key, or def when absent or not a bool.
func boolField(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timeField parses the first parseable timestamp among keys; nil when none.
func timeField(m map[string]any, keys ...string) *time.Time {
	for _, key := range keys {
		s, _ := m[key].(string)
		if s == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

// hasAny reports whether any of keys holds a usable (non-empty) value.
func hasAny(m map[string]any, keys ...string) bool {
	return stringField(m, keys...) != ""
}

// complete reports whether a nested relation object is structurally usable:
// it must identify the record (id) or at least name it. Anything less is
// treated as absent and the flat scalar fields get their chance.
func complete(m map[string]any) bool {
	return m != nil && hasAny(m, "id", "nome", "name")
}

// upper2 normalizes a state abbreviation for persistence.
func upper2(uf string) string {
	return strings.ToUpper(strings.TrimSpace(uf))
}
