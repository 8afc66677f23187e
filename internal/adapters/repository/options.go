package repository

import "github.com/mergington/activities/internal/domain/model"

// Option applies a configuration option to the MemoryCatalog.
type Option func(*MemoryCatalog)

// WithSeed replaces the built-in seed with the given activities.
// Later entries win on duplicate names.
func WithSeed(seed []*model.Activity) Option {
	return func(c *MemoryCatalog) {
		if len(seed) > 0 {
			c.seed(seed)
		}
	}
}
