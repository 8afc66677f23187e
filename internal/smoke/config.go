// Package smoke drives a running activity directory instance through the
// full signup/removal flow and verifies each response.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Activity string        // Activity to exercise; empty picks one from the catalog
	Email    string        // Email to enroll; empty generates one
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Enable verbose logging
}

// activity mirrors the catalog entry shape on the wire.
type activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// messageResponse mirrors a successful mutation response.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse mirrors an error response.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Stats holds the outcome of a smoke run.
type Stats struct {
	StepsRun  int
	Catalog   int
	StartTime time.Time
	Duration  time.Duration
}
