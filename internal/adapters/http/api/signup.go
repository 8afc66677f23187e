// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// SignupDependencies defines the interface for roster mutations.
type SignupDependencies interface {
	Signup(ctx context.Context, activity, email string) error
	Remove(ctx context.Context, activity, email string) error
}

// SignupHandler handles signup and removal requests.
type SignupHandler struct {
	deps SignupDependencies
}

// NewSignupHandler creates a new signup handler.
func NewSignupHandler(deps SignupDependencies) *SignupHandler {
	return &SignupHandler{deps: deps}
}

// HandleSignup handles POST and DELETE /activities/{name}/signup requests.
// The activity name arrives URL-decoded from the mux and is matched
// exactly against the catalog, including case and spaces.
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	name, ok := activityFromPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, ErrMissingEmail)
		return
	}

	switch r.Method {
	case http.MethodPost:
		if err := h.deps.Signup(r.Context(), name, email); err != nil {
			writeDetail(w, statusForError(err), err)
			return
		}
		writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
	case http.MethodDelete:
		if err := h.deps.Remove(r.Context(), name, email); err != nil {
			writeDetail(w, statusForError(err), err)
			return
		}
		writeMessage(w, fmt.Sprintf("Removed %s from %s", email, name))
	default:
		http.NotFound(w, r)
	}
}

// activityFromPath extracts the activity name from
// /activities/{name}/signup. Returns false for any other shape.
func activityFromPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/activities/")
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, "/signup")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}
