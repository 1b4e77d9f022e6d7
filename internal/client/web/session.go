package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmitrijs2005/userconsole/internal/client/screens"
)

// SessionCookieName holds the browser's session id.
const SessionCookieName = "console_session"

const (
	// DefaultSessionTTL is how long an idle session is kept.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultMaxSessions caps the store; the least recently used session
	// is dropped to make room.
	DefaultMaxSessions = 1024
)

// session is one browser's pair of screens.
type session struct {
	entry *screens.SessionEntry
	users *screens.CollectionManager
}

// ScreenFactory builds the screens for a new browser session.
type ScreenFactory func() (*screens.SessionEntry, *screens.CollectionManager)

// sessionStore keeps sessions in memory; they are lost on restart. Every
// use of a session restarts its TTL.
type sessionStore struct {
	cache   *expirable.LRU[string, *session]
	factory ScreenFactory
}

func newSessionStore(f ScreenFactory, size int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache:   expirable.NewLRU[string, *session](size, nil, ttl),
		factory: f,
	}
}

// lookup returns the live session named by the request cookie, or nil.
func (s *sessionStore) lookup(r *http.Request) *session {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	sess, ok := s.cache.Get(c.Value)
	if !ok {
		return nil
	}
	s.cache.Add(c.Value, sess)
	return sess
}

// get returns the session named by the request cookie, creating one (and
// setting the cookie) when there is none, or it is unknown or expired.
func (s *sessionStore) get(w http.ResponseWriter, r *http.Request) *session {
	if sess := s.lookup(r); sess != nil {
		return sess
	}

	id := uuid.NewString()
	sess := s.fresh()
	s.cache.Add(id, sess)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// fresh builds a session without storing it.
func (s *sessionStore) fresh() *session {
	entry, users := s.factory()
	return &session{entry: entry, users: users}
}

func (s *sessionStore) len() int {
	return s.cache.Len()
}
