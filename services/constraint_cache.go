package services

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"clinic_availability_go/services/availability"
)

type constraintKey struct {
	practitionerID string
	date           string
}

// CachedConstraintFetcher keeps whole constraint snapshots in an LRU cache.
// Entries are only ever replaced as a unit, so a cached snapshot is as
// consistent as the fetch that produced it. Writes must call Invalidate.
type CachedConstraintFetcher struct {
	next       availability.ConstraintFetcher
	cache      *lru.Cache[constraintKey, availability.Constraints]
	mu         sync.RWMutex
	generation uint64
	logger     zerolog.Logger
}

// NewCachedConstraintFetcher wraps next with a cache of the given size
func NewCachedConstraintFetcher(next availability.ConstraintFetcher, size int, logger zerolog.Logger) (*CachedConstraintFetcher, error) {
	cache, err := lru.New[constraintKey, availability.Constraints](size)
	if err != nil {
		return nil, err
	}
	return &CachedConstraintFetcher{
		next:   next,
		cache:  cache,
		logger: logger.With().Str("component", "constraint_cache").Logger(),
	}, nil
}

// FetchConstraints implements availability.ConstraintFetcher
func (c *CachedConstraintFetcher) FetchConstraints(ctx context.Context, practitionerID, date string) (*availability.Constraints, error) {
	key := constraintKey{practitionerID: practitionerID, date: date}
	if snap, ok := c.cache.Get(key); ok {
		c.logger.Debug().Str("practitioner_id", practitionerID).Str("date", date).Msg("cache.hit")
		return &snap, nil
	}

	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	snap, err := c.next.FetchConstraints(ctx, practitionerID, date)
	if err != nil {
		return nil, err
	}

	// A write that landed while we were fetching bumps the generation;
	// the snapshot may predate it, so it is returned but not kept.
	c.mu.RLock()
	if c.generation == generation {
		c.cache.Add(key, *snap)
	}
	c.mu.RUnlock()

	c.logger.Debug().Str("practitioner_id", practitionerID).Str("date", date).Msg("cache.miss")
	return snap, nil
}

// Invalidate drops every cached date of one practitioner
func (c *CachedConstraintFetcher) Invalidate(practitionerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	for _, key := range c.cache.Keys() {
		if key.practitionerID == practitionerID {
			c.cache.Remove(key)
		}
	}
}

// Purge drops every cached snapshot
func (c *CachedConstraintFetcher) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Purge()
}

// Len returns the number of cached snapshots
func (c *CachedConstraintFetcher) Len() int {
	return c.cache.Len()
}
