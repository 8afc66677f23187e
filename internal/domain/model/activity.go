// Package model contains domain models passed between layers.
package model

import (
	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/internal/domain/types"
)

// Activity represents a catalog entry: an extracurricular offering with a
// roster of enrolled participant emails. Name and metadata are immutable for
// the lifetime of the process; only the roster changes.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int // advisory capacity; never enforced on signup
	Roster          *roster.Roster
}

// NewActivity builds an activity with its initial participants.
func NewActivity(name, description, schedule string, maxParticipants int, participants ...string) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Roster:          roster.New(participants...),
	}
}

// View returns the public API shape of the activity.
func (a *Activity) View() types.Activity {
	return types.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    a.Roster.Emails(),
	}
}
