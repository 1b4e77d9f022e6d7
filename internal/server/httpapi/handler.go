// Package httpapi exposes the demo users collection over HTTP with the same
// shape as the public JSONPlaceholder /users resource.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/netx"
	"github.com/dmitrijs2005/userconsole/internal/server/users"
)

// maxBodySize caps request bodies.
const maxBodySize = 1 << 20

// Handler holds all API handler state.
type Handler struct {
	users *users.Service
	log   logging.Logger
}

func NewHandler(s *users.Service, log logging.Logger) *Handler {
	return &Handler{users: s, log: log}
}

// Router returns the API with its middleware chain mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(netx.RequestLog(h.log))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "OK")
	})
	h.Routes(r)
	return r
}

// Routes mounts the /users resource.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.ReplaceUser)
		r.Patch("/{id}", h.PatchUser)
		r.Delete("/{id}", h.DeleteUser)
	})
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, list)
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	rec, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, rec)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	rec, err := h.users.Create(r.Context(), body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, rec)
}

// ReplaceUser handles PUT /users/{id}.
func (h *Handler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	rec, err := h.users.Replace(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, rec)
}

// PatchUser handles PATCH /users/{id}.
func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	rec, err := h.users.Patch(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, rec)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, map[string]any{})
}

// decode reads a JSON object body. Numbers stay json.Number so ids and
// phone-like values are echoed back exactly.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (users.Record, bool) {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		Error(w, http.StatusBadRequest, "cannot read body")
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var rec users.Record
	if err := dec.Decode(&rec); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return rec, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, common.ErrorInvalidRecord):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error(r.Context(), "request failed", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
