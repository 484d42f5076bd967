// Package api serves the cycle detector over HTTP.
package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cyclecheck/pkg/buildinfo"
	"github.com/matzehuels/cyclecheck/pkg/cycle"
	"github.com/matzehuels/cyclecheck/pkg/edgelist"
	"github.com/matzehuels/cyclecheck/pkg/errors"
	"github.com/matzehuels/cyclecheck/pkg/observability"
)

// DefaultMaxBodyBytes caps request bodies on POST /v1/cycles.
const DefaultMaxBodyBytes = 8 << 20

// Handlers wires up all API endpoints.
type Handlers struct {
	logger  *log.Logger
	maxBody int64
}

// NewHandlers returns handlers that log to logger.
func NewHandlers(logger *log.Logger) *Handlers {
	if logger == nil {
		logger = log.Default()
	}
	return &Handlers{logger: logger, maxBody: DefaultMaxBodyBytes}
}

// cycleResult is the response body of POST /v1/cycles.
type cycleResult struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	HasCycle   bool   `json:"has_cycle"`
	Vertices   int    `json:"vertices"`
	Edges      int    `json:"edges"`
	Components int    `json:"components"`
}

// errorBody is the response body of every failed request.
type errorBody struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handlers) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

// checkCycles reads an edge list from the body and reports whether it has a
// cycle. The body format defaults to JSON; ?format= selects another.
func (h *Handlers) checkCycles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := uuid.NewString()
	hooks := observability.Detection()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = edgelist.FormatJSON
	}
	if err := edgelist.ValidateFormat(format); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	hooks.OnLoadStart(ctx, id, format)
	start := time.Now()
	l, err := edgelist.Read(http.MaxBytesReader(w, r.Body, h.maxBody), format)
	if err != nil {
		hooks.OnLoadComplete(ctx, id, format, 0, time.Since(start), err)
		writeErr(w, statusFor(err), err)
		return
	}
	hooks.OnLoadComplete(ctx, id, format, len(l.Edges), time.Since(start), nil)

	start = time.Now()
	hasCycle := cycle.HasCycle(l.Edges)
	hooks.OnDetectComplete(ctx, id, hasCycle, len(l.Edges), time.Since(start))

	s := cycle.Summarize(l.Edges)
	h.logger.Debug("checked edge list", "id", id, "edges", s.Edges, "cycle", hasCycle)
	writeJSON(w, http.StatusOK, cycleResult{
		ID:         id,
		Name:       l.Name,
		HasCycle:   hasCycle,
		Vertices:   s.Vertices,
		Edges:      s.Edges,
		Components: s.Components,
	})
}

// statusFor maps a load error to an HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	c := errors.GetCode(err)
	if c == "" {
		c = errors.ErrCodeInternal
	}
	writeJSON(w, code, errorBody{Code: c, Error: errors.UserMessage(err)})
}
