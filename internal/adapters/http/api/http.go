// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListActivities returns the full catalog keyed by activity name.
	ListActivities(ctx context.Context) (map[string]Activity, error)

	// Signup enrolls email in the named activity.
	Signup(ctx context.Context, activity, email string) error

	// Remove deletes email from the named activity's roster.
	Remove(ctx context.Context, activity, email string) error
}

// Activity mirrors the read shape returned by catalog queries.
type Activity = types.Activity

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	signupHandler     *SignupHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		signupHandler:     NewSignupHandler(deps),
		dashboardHandler:  newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/activities", RequestIDMiddleware(MetricsMiddleware(s.activitiesHandler.HandleListActivities, "activities")))
	mux.HandleFunc("/activities/", RequestIDMiddleware(MetricsMiddleware(s.signupHandler.HandleSignup, "signup")))
}

// messageResponse carries the confirmation text for successful mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse carries the human-readable error text.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func writeDetail(w http.ResponseWriter, status int, err error) {
	detail := http.StatusText(status)
	if err != nil {
		detail = err.Error()
	}
	writeJSON(w, status, detailResponse{Detail: detail})
}

// statusForError translates catalog sentinels to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrAlreadySignedUp),
		errors.Is(err, repository.ErrNotSignedUp):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
