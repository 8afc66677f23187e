package repository

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/domain/types"
	"github.com/mergington/activities/pkg/metrics"
)

// MemoryCatalog is the in-memory Catalog implementation.
//
// The catalog map is fixed after construction; only rosters mutate. A single
// RWMutex serializes access, so each signup/removal is one atomic update and
// concurrent requests cannot observe a torn roster.
type MemoryCatalog struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewMemoryCatalog creates a catalog seeded with the given activities.
// With no options it starts from the built-in Mergington High seed.
func NewMemoryCatalog(ctx context.Context, opts ...Option) *MemoryCatalog {
	c := &MemoryCatalog{}

	for _, opt := range opts {
		opt(c)
	}

	if c.activities == nil {
		c.seed(DefaultSeed())
	}

	metrics.UpdateCatalogActivities(c.Count(ctx))
	metrics.UpdateCatalogParticipants(c.ParticipantCount(ctx))
	return c
}

func (c *MemoryCatalog) seed(seed []*model.Activity) {
	c.activities = make(map[string]*model.Activity, len(seed))
	for _, a := range seed {
		c.activities[a.Name] = a
	}
}

// List returns the full catalog keyed by activity name.
func (c *MemoryCatalog) List(_ context.Context) map[string]types.Activity {
	c.mu.RLock()
	defer c.mu.RUnlock()

	metrics.RecordCatalogLookup()
	out := make(map[string]types.Activity, len(c.activities))
	for name, a := range c.activities {
		out[name] = a.View()
	}
	return out
}

// Signup appends email to the named activity's roster.
// Capacity is advisory and deliberately not checked here.
func (c *MemoryCatalog) Signup(_ context.Context, name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !a.Roster.Add(email) {
		metrics.RecordSignupConflict()
		return ErrAlreadySignedUp
	}
	metrics.RecordSignup()
	return nil
}

// Remove deletes email from the named activity's roster.
func (c *MemoryCatalog) Remove(_ context.Context, name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !a.Roster.Remove(email) {
		metrics.RecordRemovalRejected()
		return ErrNotSignedUp
	}
	metrics.RecordRemoval()
	return nil
}

// Count returns the number of activities in the catalog.
func (c *MemoryCatalog) Count(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.activities)
}

// ParticipantCount returns the number of enrollments across all activities.
func (c *MemoryCatalog) ParticipantCount(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, a := range c.activities {
		total += a.Roster.Len()
	}
	return total
}
