// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ActivityLister defines the interface for catalog reads.
type ActivityLister interface {
	ListActivities(ctx context.Context) (map[string]Activity, error)
}

// ActivitiesHandler handles catalog list requests.
type ActivitiesHandler struct {
	deps ActivityLister
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivityLister) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleListActivities handles GET /activities requests.
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	list, err := h.deps.ListActivities(r.Context())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
