// Package web serves the console screens to a browser as server-rendered
// HTML. Each browser gets its own Session Entry and Collection Manager,
// keyed by a cookie.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/router"
	"github.com/dmitrijs2005/userconsole/internal/client/screens"
	"github.com/dmitrijs2005/userconsole/internal/client/services"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/netx"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	login    *template.Template
	users    *template.Template
	noscreen *template.Template
}

func parsePages() pages {
	parse := func(name string) *template.Template {
		return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return pages{
		login:    parse("login.html"),
		users:    parse("users.html"),
		noscreen: parse("noscreen.html"),
	}
}

// Server is the web console.
type Server struct {
	sessions *sessionStore
	pages    pages
	log      logging.Logger

	maxSessions int
	sessionTTL  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithSessionLimits bounds the session store to size sessions, each dropped
// after ttl without use.
func WithSessionLimits(size int, ttl time.Duration) Option {
	return func(s *Server) {
		s.maxSessions = size
		s.sessionTTL = ttl
	}
}

// NewServer builds a web console whose sessions are created by f.
func NewServer(f ScreenFactory, log logging.Logger, opts ...Option) *Server {
	s := &Server{
		pages:       parsePages(),
		log:         log.With("component", "web"),
		maxSessions: DefaultMaxSessions,
		sessionTTL:  DefaultSessionTTL,
	}
	for _, o := range opts {
		o(s)
	}
	s.sessions = newSessionStore(f, s.maxSessions, s.sessionTTL)
	return s
}

// New wires a web console against the collection at cfg.BaseURL. All
// sessions share one HTTP client.
func New(cfg *config.Config, log logging.Logger, opts ...Option) *Server {
	c := client.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	auth := services.NewAuthService(c, log)
	users := services.NewUserService(c, log)
	return NewServer(func() (*screens.SessionEntry, *screens.CollectionManager) {
		return screens.NewSessionEntry(auth, log), screens.NewCollectionManager(users, log)
	}, log, opts...)
}

// Handler returns the router with its middleware chain mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(netx.RequestLog(s.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "OK")
	})

	r.Get(router.PathRoot, s.showLogin)
	r.Get(router.PathLogin, s.showLogin)
	r.Post(router.PathLogin, s.submitLogin)
	r.Get(router.PathForgotPassword, s.noScreen)
	r.Get(router.PathSignup, s.noScreen)

	r.Route(router.PathUserManagement, func(r chi.Router) {
		r.Get("/", s.showUsers)
		r.Post("/new", s.openCreate)
		r.Post("/save", s.save)
		r.Post("/close", s.closeModal)
		r.Post("/{id}/edit", s.openEdit)
		r.Post("/{id}/delete", s.deleteUser)
	})
	return r
}

type loginPage struct {
	Title   string
	Session screens.SessionView
}

type usersPage struct {
	Title  string
	Users  screens.ManagerView
	Fields []string
}

type noScreenPage struct {
	Title   string
	Message string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		s.log.Error(r.Context(), "render failed", "error", err)
	}
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, status int, sess *session) {
	s.render(w, r, status, s.pages.login, loginPage{Title: "Login", Session: sess.entry.View()})
}

func (s *Server) renderUsers(w http.ResponseWriter, r *http.Request, status int, sess *session) {
	s.render(w, r, status, s.pages.users, usersPage{
		Title:  "User Management",
		Users:  sess.users.View(),
		Fields: models.RequiredUserFields,
	})
}

// showLogin renders the browser's own form if it has a session and the
// defaults otherwise; a session is only created once the form is posted.
func (s *Server) showLogin(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.lookup(r)
	if sess == nil {
		sess = s.sessions.fresh()
	}
	s.renderLogin(w, r, http.StatusOK, sess)
}

func (s *Server) submitLogin(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	if err := r.ParseForm(); err != nil {
		s.renderLogin(w, r, http.StatusBadRequest, sess)
		return
	}
	if _, ok := r.PostForm["username"]; ok {
		sess.entry.SetUsername(r.PostForm.Get("username"))
	}
	if _, ok := r.PostForm["password"]; ok {
		sess.entry.SetPassword(r.PostForm.Get("password"))
	}

	ok, err := sess.entry.Submit(r.Context())
	switch {
	case err != nil:
		s.renderLogin(w, r, statusFor(err), sess)
	case ok:
		http.Redirect(w, r, router.PathUserManagement, http.StatusSeeOther)
	default:
		s.renderLogin(w, r, http.StatusOK, sess)
	}
}

func (s *Server) noScreen(w http.ResponseWriter, r *http.Request) {
	_, err := router.Resolve(r.URL.Path)
	msg := "There is no page here yet."
	if err != nil {
		msg = err.Error()
	}
	s.render(w, r, http.StatusNotFound, s.pages.noscreen, noScreenPage{Title: "Not available", Message: msg})
}

// showUsers is the Collection Manager's mount: every visit loads the list.
func (s *Server) showUsers(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	s.renderUsers(w, r, statusFor(sess.users.List(r.Context())), sess)
}

// done finishes a POST on the manager. Success redirects to the list so a
// reload does not repeat the request; a failure is rendered in place.
func (s *Server) done(w http.ResponseWriter, r *http.Request, sess *session, err error) {
	if err != nil {
		s.renderUsers(w, r, statusFor(err), sess)
		return
	}
	http.Redirect(w, r, router.PathUserManagement, http.StatusSeeOther)
}

func (s *Server) openCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	s.done(w, r, sess, sess.users.OpenCreate())
}

func (s *Server) openEdit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	s.done(w, r, sess, sess.users.OpenEdit(chi.URLParam(r, "id")))
}

// save copies the posted form fields into the draft, then saves it.
func (s *Server) save(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	if err := r.ParseForm(); err != nil {
		s.renderUsers(w, r, http.StatusBadRequest, sess)
		return
	}
	for key := range r.PostForm {
		if err := sess.users.SetField(key, r.PostForm.Get(key)); err != nil {
			s.renderUsers(w, r, statusFor(err), sess)
			return
		}
	}
	s.done(w, r, sess, sess.users.Save(r.Context()))
}

func (s *Server) closeModal(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	sess.users.CloseModal()
	s.done(w, r, sess, nil)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	s.done(w, r, sess, sess.users.Delete(r.Context(), chi.URLParam(r, "id")))
}

// statusFor maps a screen error to the page status. Remote failures are
// shown in the page's Error State and still answer 200.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, screens.ErrBusy), errors.Is(err, screens.ErrModalClosed):
		return http.StatusConflict
	case errors.Is(err, screens.ErrUnknownRecord):
		return http.StatusNotFound
	case errors.Is(err, models.ErrRequired):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}
