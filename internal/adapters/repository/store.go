// Package repository defines the activity catalog store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/types"
)

// Catalog provides read/write access to the activity catalog.
type Catalog interface {
	// List returns the full catalog keyed by activity name.
	List(ctx context.Context) map[string]types.Activity

	// Signup appends email to the named activity's roster.
	// Returns ErrActivityNotFound if the activity is unknown and
	// ErrAlreadySignedUp if the email is already enrolled.
	Signup(ctx context.Context, name, email string) error

	// Remove deletes email from the named activity's roster.
	// Returns ErrActivityNotFound if the activity is unknown and
	// ErrNotSignedUp if the email is not enrolled.
	Remove(ctx context.Context, name, email string) error

	// Count returns the number of activities in the catalog.
	Count(ctx context.Context) int

	// ParticipantCount returns the number of enrollments across all activities.
	ParticipantCount(ctx context.Context) int
}
