package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	rosterapp "github.com/preston-bernstein/roster-service/internal/app/roster"
	teamapp "github.com/preston-bernstein/roster-service/internal/app/team"
	visitorsapp "github.com/preston-bernstein/roster-service/internal/app/visitors"
	"github.com/preston-bernstein/roster-service/internal/domain/roster"
	"github.com/preston-bernstein/roster-service/internal/domain/visitors"
	"github.com/preston-bernstein/roster-service/internal/logging"
)

const maxVisitorBody = 1 << 16

// Handler wires HTTP routes to the roster, visitor, and team services.
type Handler struct {
	roster   *rosterapp.Service
	visitors *visitorsapp.Service
	team     *teamapp.Service
	logger   *slog.Logger
}

// NewHandler constructs a Handler. Nil visitor or team services disable those routes' data.
func NewHandler(rosterSvc *rosterapp.Service, visitorSvc *visitorsapp.Service, teamSvc *teamapp.Service, logger *slog.Logger) *Handler {
	return &Handler{
		roster:   rosterSvc,
		visitors: visitorSvc,
		team:     teamSvc,
		logger:   logger,
	}
}

// RosterResponse is the body of GET /roster.
type RosterResponse struct {
	Count    int             `json:"count"`
	Criteria roster.Criteria `json:"criteria"`
	Records  []roster.Record `json:"records"`
}

// RecordResponse is the body of GET /roster/{id}.
type RecordResponse struct {
	Record  roster.Record `json:"record"`
	Summary string        `json:"summary"`
	Details string        `json:"details"`
}

// VisitorResponse is the body of POST /visitors.
type VisitorResponse struct {
	Logged  bool             `json:"logged"`
	Visitor visitors.Visitor `json:"visitor"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the roster loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	st := h.roster.Status()
	if st.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{"status": "ready", "records": st.Records}, h.logger)
		return
	}
	msg := st.LastError
	if msg == "" {
		msg = "roster not loaded"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Team returns the team metadata with the loaded roster size in its stats.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.team == nil {
		writeError(w, r, nethttp.StatusNotFound, "team metadata unavailable", h.logger)
		return
	}
	t := h.team.Team()
	if h.roster != nil {
		t.Stats.TotalPlayers = h.roster.Status().Records
	}
	writeJSON(w, nethttp.StatusOK, t, h.logger)
}

// Roster runs a query built from the search, role, type, and sort parameters.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	criteria := CriteriaFromQuery(r)
	records := h.roster.Query(criteria)

	logger := loggerFromContext(r, h.logger)
	logging.Debug(logger, "served roster", slog.Int(logging.FieldCount, len(records)))

	writeJSON(w, nethttp.StatusOK, RosterResponse{
		Count:    len(records),
		Criteria: criteria,
		Records:  records,
	}, h.logger)
}

// Filters returns the dropdown options for the loaded roster.
func (h *Handler) Filters(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.roster.Options(), h.logger)
}

// RecordByID returns one record with its details block.
func (h *Handler) RecordByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := chi.URLParam(r, "id")
	if n, err := strconv.Atoi(id); err != nil || n < 1 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid record id", h.logger)
		return
	}

	rec, ok := h.roster.RecordByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "record not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, RecordResponse{
		Record:  rec,
		Summary: roster.Summary(rec),
		Details: roster.FormatDetails(rec),
	}, h.logger)
}

// Visitors handles the welcome form.
func (h *Handler) Visitors(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.visitors == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "visitor log unavailable", h.logger)
		return
	}
	var reg visitors.Registration
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxVisitorBody))
	if err := dec.Decode(&reg); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	v, err := h.visitors.Register(r.Context(), reg)
	switch {
	case err == nil:
		writeJSON(w, nethttp.StatusCreated, VisitorResponse{Logged: true, Visitor: v}, h.logger)
	case errors.Is(err, visitorsapp.ErrLogWrite):
		writeJSON(w, nethttp.StatusAccepted, VisitorResponse{Logged: false, Visitor: v}, h.logger)
	default:
		if ve, ok := visitors.AsValidationError(err); ok {
			problems := make([]string, 0, len(ve.Problems))
			for _, p := range ve.Problems {
				problems = append(problems, p.Error())
			}
			writeErrorBody(w, r, nethttp.StatusUnprocessableEntity, errorBody{Error: ve.Error(), Problems: problems}, h.logger)
			return
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
	}
}

// CriteriaFromQuery reads query criteria from the request URL. Missing
// parameters mean no filter and the default sort.
func CriteriaFromQuery(r *nethttp.Request) roster.Criteria {
	q := r.URL.Query()
	return roster.Criteria{
		SearchText: strings.TrimSpace(q.Get("search")),
		RoleFilter: q.Get("role"),
		TypeFilter: q.Get("type"),
		SortKey:    roster.ParseSortKey(q.Get("sort")),
	}
}

// NotFound answers unknown routes with the JSON error body.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
