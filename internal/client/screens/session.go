package screens

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/services"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// LoginFailedMessage is the Error State shown for any failed login call.
const LoginFailedMessage = "Something went wrong!"

// DefaultCredentials pre-populate the login form.
var DefaultCredentials = models.Credentials{Username: "utkarsh", Password: "12345"}

// SessionView is a snapshot of the Session Entry screen.
type SessionView struct {
	Username string
	Password string
	Error    string
	Busy     bool
}

// SessionEntry is the login screen.
type SessionEntry struct {
	auth services.AuthService
	log  logging.Logger

	mu       sync.Mutex
	creds    models.Credentials
	errState string
	busy     bool
}

func NewSessionEntry(auth services.AuthService, log logging.Logger) *SessionEntry {
	return &SessionEntry{
		auth:  auth,
		log:   log.With("screen", "session"),
		creds: DefaultCredentials,
	}
}

func (s *SessionEntry) SetUsername(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.Username = v
}

func (s *SessionEntry) SetPassword(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds.Password = v
}

// Submit sends the current credentials once. It reports true when the
// caller should navigate to the Collection Manager. Failures are recorded
// in the Error State and the form keeps its values; the only returned
// error is ErrBusy.
func (s *SessionEntry) Submit(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false, ErrBusy
	}
	creds := s.creds
	if err := creds.Validate(); err != nil {
		s.errState = err.Error()
		s.mu.Unlock()
		return false, nil
	}
	s.busy = true
	s.errState = ""
	s.mu.Unlock()

	_, err := s.auth.Login(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		if errors.Is(err, models.ErrRequired) {
			s.errState = err.Error()
		} else {
			s.errState = LoginFailedMessage
		}
		s.log.Debug(ctx, "login rejected", "error", err)
		return false, nil
	}
	return true, nil
}

func (s *SessionEntry) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		Username: s.creds.Username,
		Password: s.creds.Password,
		Error:    s.errState,
		Busy:     s.busy,
	}
}
