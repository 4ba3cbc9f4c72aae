package models

import (
	"anubha-web/internal/pkg/constvars"
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is the per-visitor record behind the signed session cookie.
// BackendCookies holds the clinic backend's cookies, relayed on every outbound call.
type Session struct {
	ID             string            `json:"id"`
	BackendCookies map[string]string `json:"backendCookies"`
	CreatedAt      time.Time         `json:"createdAt"`
	ExpiresAt      time.Time         `json:"expiresAt"`

	mu    sync.Mutex
	dirty bool
	isNew bool
}

func NewSession(id string, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:             id,
		BackendCookies: make(map[string]string),
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
		dirty:          true,
		isNew:          true,
	}
}

// Cookies returns the backend cookies to attach to an outbound request.
func (s *Session) Cookies() []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies := make([]*http.Cookie, 0, len(s.BackendCookies))
	for name, value := range s.BackendCookies {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	return cookies
}

// MergeBackendCookies applies Set-Cookie answers from the backend; expired or emptied cookies are dropped.
func (s *Session) MergeBackendCookies(cookies []*http.Cookie, now time.Time) {
	if len(cookies) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.BackendCookies == nil {
		s.BackendCookies = make(map[string]string)
	}
	for _, cookie := range cookies {
		expired := cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(now))
		if expired || cookie.Value == "" {
			if _, ok := s.BackendCookies[cookie.Name]; ok {
				delete(s.BackendCookies, cookie.Name)
				s.dirty = true
			}
			continue
		}
		if s.BackendCookies[cookie.Name] != cookie.Value {
			s.BackendCookies[cookie.Name] = cookie.Value
			s.dirty = true
		}
	}
}

func (s *Session) ClearBackendCookies() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.BackendCookies) > 0 {
		s.BackendCookies = make(map[string]string)
		s.dirty = true
	}
}

func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Session) IsNew() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isNew
}

func (s *Session) MarkSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
	s.isNew = false
}

// Snapshot copies the persisted fields under the lock.
func (s *Session) Snapshot() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies := make(map[string]string, len(s.BackendCookies))
	for name, value := range s.BackendCookies {
		cookies[name] = value
	}
	return &Session{
		ID:             s.ID,
		BackendCookies: cookies,
		CreatedAt:      s.CreatedAt,
		ExpiresAt:      s.ExpiresAt,
	}
}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*Session)
	return session, ok && session != nil
}

// SessionIDFromContext returns "" when no session was loaded for the request.
func SessionIDFromContext(ctx context.Context) string {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return ""
	}
	return session.ID
}
