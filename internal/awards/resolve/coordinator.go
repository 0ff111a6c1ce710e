package resolve

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"nextrailer/internal/awards"
	"nextrailer/internal/logging"
	"nextrailer/internal/tmdb"
)

// Coordinator resolves every unique nominee reference of a ceremony exactly
// once and scatters the results back into per-category ordered lists.
type Coordinator struct {
	resolver    *Resolver
	logger      *slog.Logger
	concurrency int
}

// NewCoordinator creates a Coordinator. Concurrency caps the number of
// in-flight lookups; values below one fall back to a single worker.
func NewCoordinator(resolver *Resolver, logger *slog.Logger, concurrency int) *Coordinator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Coordinator{
		resolver:    resolver,
		logger:      logging.NewComponentLogger(logger, "coordinator"),
		concurrency: concurrency,
	}
}

// ResolveAll resolves the categories' nominees and returns, per category
// name, the resolved media in stored nominee order. A reference appearing in
// several categories costs one lookup. Unresolved references are dropped
// from the output lists; an individual lookup failure never aborts or delays
// the rest of the batch. Results are assembled only after every reference
// has settled, so the returned mapping is always a complete snapshot.
func (c *Coordinator) ResolveAll(ctx context.Context, categories []awards.Category) (map[string][]tmdb.MediaItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type unit struct {
		key string
		ref awards.MovieRef
	}
	seen := make(map[string]struct{})
	var units []unit
	for _, category := range categories {
		for _, ref := range category.Nominees {
			key := ref.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			units = append(units, unit{key: key, ref: ref})
		}
	}

	resolved := make(map[string]*tmdb.MediaItem, len(units))
	var mu sync.Mutex

	start := time.Now()
	group := &errgroup.Group{}
	group.SetLimit(c.concurrency)
	for _, u := range units {
		u := u
		group.Go(func() error {
			item, err := c.resolver.Resolve(ctx, u.ref)
			if err != nil {
				// Isolated per-reference failure: drop the item, keep the batch.
				c.logger.Warn("nominee lookup failed",
					logging.String(logging.FieldRefKey, u.key),
					logging.String(logging.FieldTitle, u.ref.Title),
					logging.Error(err))
				return nil
			}
			if item == nil {
				c.logger.Debug("nominee unresolved",
					logging.String(logging.FieldRefKey, u.key),
					logging.String(logging.FieldTitle, u.ref.Title))
				return nil
			}
			mu.Lock()
			resolved[u.key] = item
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only gates the aggregation step.
	_ = group.Wait()

	items := make(map[string][]tmdb.MediaItem, len(categories))
	for _, category := range categories {
		list := make([]tmdb.MediaItem, 0, len(category.Nominees))
		for _, ref := range category.Nominees {
			if item := resolved[ref.Key()]; item != nil {
				list = append(list, *item)
			}
		}
		items[category.Name] = list
	}

	c.logger.Debug("batch resolved",
		logging.Int("unique_refs", len(units)),
		logging.Int("resolved", len(resolved)),
		logging.Duration("elapsed", time.Since(start)))
	return items, nil
}
