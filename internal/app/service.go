// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/domain/types"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service owns the activity catalog and exposes the operations the HTTP
// API depends on: listing the catalog, signing up, and removing
// participants.
type Service struct {
	mu sync.RWMutex

	catalog repository.Catalog

	// Configuration
	seed     []*model.Activity
	seedFile string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed replaces the built-in catalog seed.
func WithSeed(seed []*model.Activity) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithSeedFile loads the catalog seed from a YAML file at Start.
// Takes precedence over WithSeed.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}

// WithCatalog injects a pre-built catalog, bypassing seeding.
func WithCatalog(c repository.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start seeds the catalog. It is a no-op when already started.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activity directory service...")

	if s.catalog == nil {
		seed := s.seed
		if s.seedFile != "" {
			loaded, err := repository.LoadSeedFile(ctx, s.seedFile)
			if err != nil {
				return err
			}
			seed = loaded
			s.logger.Info(ctx, "loaded catalog seed from file",
				logger.String("path", s.seedFile),
				logger.Int("activities", len(loaded)),
			)
		}
		if seed != nil {
			s.catalog = repository.NewMemoryCatalog(ctx, repository.WithSeed(seed))
		} else {
			s.catalog = repository.NewMemoryCatalog(ctx)
		}
	}

	s.started = true
	s.logger.Info(ctx, "activity directory service started",
		logger.Int("activities", s.catalog.Count(ctx)),
		logger.Int("participants", s.catalog.ParticipantCount(ctx)),
	)

	return nil
}

// Stop shuts down the service. The catalog is memory-only, so state is
// discarded with the process.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping activity directory service...")
	s.started = false
	s.logger.Info(context.Background(), "activity directory service stopped")
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]types.Activity, error) {
	return s.catalog.List(ctx), nil
}

// Signup enrolls email in the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if err := s.catalog.Signup(ctx, activity, email); err != nil {
		return err
	}
	s.logger.Debug(ctx, "participant signed up",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	s.refreshCatalogGauges(ctx)
	return nil
}

// Remove deletes email from the named activity's roster.
func (s *Service) Remove(ctx context.Context, activity, email string) error {
	if err := s.catalog.Remove(ctx, activity, email); err != nil {
		return err
	}
	s.logger.Debug(ctx, "participant removed",
		logger.String("activity", activity),
		logger.String("email", email),
	)
	s.refreshCatalogGauges(ctx)
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		activities := s.catalog.Count(ctx)
		participants := s.catalog.ParticipantCount(ctx)

		stats["activities"] = activities
		stats["participants"] = participants

		metrics.UpdateCatalogActivities(activities)
		metrics.UpdateCatalogParticipants(participants)
	}

	return stats
}

func (s *Service) refreshCatalogGauges(ctx context.Context) {
	metrics.UpdateCatalogActivities(s.catalog.Count(ctx))
	metrics.UpdateCatalogParticipants(s.catalog.ParticipantCount(ctx))
}
