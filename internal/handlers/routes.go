package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Router wires every route and middleware.
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Page routes
	r.Get("/", h.Home)
	r.Get("/todos", h.TaskList)
	r.Post("/form", h.SubmitForm)
	r.Post("/filter", h.SelectFilter)
	r.Post("/todos/action", h.Action)

	// API routes
	r.Route("/api/todos", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
		r.Post("/{id}/toggle", h.ToggleTask)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return r
}

// RequestLogger logs one line per request with its status and latency.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("mod", "http").
			Int("code", ww.Status()).
			Str("method", r.Method).
			Str("path", r.URL.RequestURI()).
			Int("bytes", ww.BytesWritten()).
			TimeDiff("latency", time.Now(), start).
			Send()
	})
}
