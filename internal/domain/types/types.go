// Package types contains common types shared across the application.
package types

// Activity is the public shape of a catalog entry as served by the API.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
