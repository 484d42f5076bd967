package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cyclecheck/pkg/observability"
)

// NewRouter wires the API endpoints to h.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Get("/version", h.version)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/cycles", h.checkCycles)
	})

	return r
}

// requestLogger logs each request once the response is written and reports
// it to the request hooks.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				took := time.Since(start)
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", ww.BytesWritten(),
					"took", took,
					"request_id", middleware.GetReqID(r.Context()),
				)
				observability.Request().OnRequest(r.Context(), r.Method, r.URL.Path, status, took)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
