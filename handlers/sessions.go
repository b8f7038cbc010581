package handlers

import (
	"context"
	"net/url"
	"sync"
	"time"

	"pizzeria_admin_go/notify"

	"github.com/google/uuid"
)

const formSessionTTL = 2 * time.Hour

// formHandle is the non-generic face of an editor. The concrete
// implementations in forms_entities.go wrap the typed forms so the HTTP
// layer can drive any of them through one set of routes.
type formHandle interface {
	Kind() string
	ListPath() string
	Load(ctx context.Context, id string) error
	// ApplyForm merges posted field values into the draft. The relation
	// set through the picker is preserved; only the picker changes it.
	ApplyForm(vals url.Values)
	Submit(ctx context.Context) (violations []string, err error)
	// FieldsHTML renders the editor inputs off the current draft. base is
	// the form session's URL prefix ("/forms/<fid>").
	FieldsHTML(base string) string
	// RelationChainHTML renders the picked-relation block, including the
	// read-only deeper levels of the location chain.
	RelationChainHTML(base string) string
	Picker() pickerHandle
	OpenPicker(ctx context.Context)
}

// formSession is one live editor: its handle plus the notification
// recorder whose drained messages become toasts on the next fragment.
type formSession struct {
	id       string
	handle   formHandle
	rec      *notify.Recorder
	lastSeen time.Time
}

func (s *formSession) base() string {
	return "/forms/" + s.id
}

// formSessions keeps the live editors in memory, keyed by a generated id
// carried in the page's fragment URLs. Sessions idle past the TTL are
// dropped by the cleanup job.
type formSessions struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]*formSession
}

func newFormSessions(ttl time.Duration) *formSessions {
	return &formSessions{ttl: ttl, m: make(map[string]*formSession)}
}

func (s *formSessions) put(handle formHandle, rec *notify.Recorder) *formSession {
	session := &formSession{
		id:       uuid.New().String(),
		handle:   handle,
		rec:      rec,
		lastSeen: time.Now(),
	}
	s.mu.Lock()
	s.m[session.id] = session
	s.mu.Unlock()
	return session
}

func (s *formSessions) get(id string) *formSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.m[id]
	if !ok {
		return nil
	}
	session.lastSeen = time.Now()
	return session
}

func (s *formSessions) drop(id string) {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
}

// CleanupExpired drops editors idle past the TTL; meant for a periodic job.
func (s *formSessions) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, session := range s.m {
		if session.lastSeen.Before(cutoff) {
			delete(s.m, id)
			removed++
		}
	}
	return removed
}
