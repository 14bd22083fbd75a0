package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mytodos/internal/models"
	"mytodos/internal/render"
	"mytodos/internal/services"
	"mytodos/internal/session"
)

// SessionCookie names the cookie carrying the browser session id.
const SessionCookie = "mytodos_session"

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	tasks    *services.TaskService
	sessions *session.Manager
	renderer *render.Renderer
	title    string
}

// New creates a new Handlers instance.
func New(tasks *services.TaskService, sessions *session.Manager, renderer *render.Renderer, title string) *Handlers {
	if title == "" {
		title = "My Todos"
	}
	return &Handlers{
		tasks:    tasks,
		sessions: sessions,
		renderer: renderer,
		title:    title,
	}
}

// session returns the caller's session for a request that changes it,
// issuing a cookie when the session id differs from the one sent.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) *session.Session {
	return h.bindSession(w, r, h.sessions.Get)
}

// viewSession is session for read-only pages. Cookieless visitors are not
// stored until their cookie comes back.
func (h *Handlers) viewSession(w http.ResponseWriter, r *http.Request) *session.Session {
	return h.bindSession(w, r, h.sessions.View)
}

func (h *Handlers) bindSession(w http.ResponseWriter, r *http.Request, get func(string) *session.Session) *session.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	s := get(id)
	if s.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}

// parseID extracts and parses an integer ID from URL parameters.
func parseID(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	return strconv.ParseInt(idStr, 10, 64)
}

// httpStatus maps service errors onto response codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrTaskNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Error().Str("mod", "http").Err(err).Msg("internal server error")
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Str("mod", "http").Err(err).Msg("failed to encode response")
	}
}

func respondJSONError(w http.ResponseWriter, err error) {
	code := httpStatus(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Error().Str("mod", "http").Err(err).Msg("internal server error")
		message = "internal server error"
	}
	respondJSON(w, code, map[string]string{"error": message})
}

// redirectHome finishes a browser form post.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
